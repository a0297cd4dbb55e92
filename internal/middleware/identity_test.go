package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/cbtengine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Auth: config.Auth{JWTSecret: "test-secret", JWTIssuer: "school-idp"}}
}

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Identity(cfg), RequireRole(RoleStudent), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "%s:%s", UserID(ctx), CurrentRole(ctx))
	})
	return r
}

func call(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity_AcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	token, err := IssueToken(cfg, "stu-1", RoleStudent, time.Hour)
	require.NoError(t, err)

	w := call(newRouter(cfg), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stu-1:student", w.Body.String())
}

func TestIdentity_Rejections(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg)

	expired, err := IssueToken(cfg, "stu-1", RoleStudent, -time.Minute)
	require.NoError(t, err)
	other := testConfig()
	other.Auth.JWTSecret = "someone-else"
	forged, err := IssueToken(other, "stu-1", RoleStudent, time.Hour)
	require.NoError(t, err)
	foreignIssuer := testConfig()
	foreignIssuer.Auth.JWTIssuer = "elsewhere"
	wrongIssuer, err := IssueToken(foreignIssuer, "stu-1", RoleStudent, time.Hour)
	require.NoError(t, err)
	teacher, err := IssueToken(cfg, "tch-1", RoleTeacher, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
		code   string
	}{
		{"missing", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"expired", expired, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"bad signature", forged, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"wrong issuer", wrongIssuer, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"wrong role", teacher, http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(router, tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestIdentity_EmptySecretRejectsEverything(t *testing.T) {
	cfg := &config.Config{}

	_, err := IssueToken(cfg, "attacker", RoleAdmin, time.Hour)
	require.ErrorIs(t, err, config.ErrMissingJWTSecret)

	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "attacker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Identity(cfg), RequireRole(RoleAdmin), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "%s", UserID(ctx))
	})

	w := call(r, unsigned)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
	assert.NotContains(t, w.Body.String(), "attacker")
}
