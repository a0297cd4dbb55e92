package staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/service"
	"github.com/stretchr/testify/assert"
)

type stubRoster struct {
	service.RosterService
	links     [][2]string
	clearance map[string]bool
}

func (s *stubRoster) LinkGuardian(ctx context.Context, guardianID, studentID string) error {
	s.links = append(s.links, [2]string{guardianID, studentID})
	return nil
}

func (s *stubRoster) SetClearance(ctx context.Context, studentID string, cleared bool) error {
	s.clearance[studentID] = cleared
	return nil
}

func serveRoster(roster *stubRoster, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewRosterController(roster).RegisterRoutes(r.Group("/api/v1/staff"))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLinkGuardian(t *testing.T) {
	roster := &stubRoster{}
	w := serveRoster(roster, http.MethodPost, "/api/v1/staff/guardians", `{"guardian_id":"par-1","student_id":"stu-1"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, [][2]string{{"par-1", "stu-1"}}, roster.links)

	w = serveRoster(roster, http.MethodPost, "/api/v1/staff/guardians", `{"guardian_id":"par-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestSetClearance_ExplicitFalse(t *testing.T) {
	roster := &stubRoster{clearance: map[string]bool{"stu-1": true}}
	w := serveRoster(roster, http.MethodPut, "/api/v1/staff/clearances/stu-1", `{"cleared":false}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, roster.clearance["stu-1"])

	w = serveRoster(roster, http.MethodPut, "/api/v1/staff/clearances/stu-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
