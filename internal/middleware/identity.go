// Package middleware resolves who is calling. Tokens are issued by the school's
// identity service; this package only verifies them.
package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/rs/zerolog/log"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleTeacher  Role = "teacher"
	RoleAdmin    Role = "admin"
	RoleGuardian Role = "guardian"
)

const (
	contextUserID = "userID"
	contextRole   = "role"
)

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity verifies the bearer token and stores the subject and role on the context.
// Without a signing key every request is rejected.
func Identity(cfg *config.Config) gin.HandlerFunc {
	if err := cfg.Auth.Validate(); err != nil {
		log.Error().Err(err).Msg("Identity middleware has no signing key, rejecting all requests")
		return func(ctx *gin.Context) {
			abort(ctx, apperr.Unauthenticated, "authentication is not configured")
		}
	}
	secret := []byte(cfg.Auth.JWTSecret)
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Auth.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.JWTIssuer))
	}
	parser := jwt.NewParser(opts...)

	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			abort(ctx, apperr.Unauthenticated, "missing bearer token")
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected bearer token")
			abort(ctx, apperr.Unauthenticated, msg)
			return
		}
		if claims.Subject == "" || claims.Role == "" {
			abort(ctx, apperr.Unauthenticated, "token has no subject or role")
			return
		}

		ctx.Set(contextUserID, claims.Subject)
		ctx.Set(contextRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := CurrentRole(ctx)
		for _, r := range roles {
			if role == r {
				ctx.Next()
				return
			}
		}
		abort(ctx, apperr.Forbidden, "role not permitted for this route")
	}
}

func UserID(ctx *gin.Context) string {
	return ctx.GetString(contextUserID)
}

func CurrentRole(ctx *gin.Context) Role {
	role, _ := ctx.Get(contextRole)
	r, _ := role.(Role)
	return r
}

// IssueToken signs a token in the format Identity accepts.
func IssueToken(cfg *config.Config, subject string, role Role, ttl time.Duration) (string, error) {
	if err := cfg.Auth.Validate(); err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Auth.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.JWTSecret))
}

func abort(ctx *gin.Context, reason apperr.Reason, msg string) {
	ctx.AbortWithStatusJSON(apperr.Status(reason), dto.ErrorResponse{Error: dto.ErrorBody{Code: string(reason), Message: msg}})
}
