// Package controller holds the HTTP helpers shared by the student and staff handlers.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes err in the error envelope. Named failures keep their reason
// and status; anything else is logged and reported as INTERNAL without its cause.
func RespondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    string(apperr.Internal),
			Message: "internal server error",
		}})
		return
	}

	body := dto.ErrorBody{Code: string(appErr.Reason), Message: appErr.Detail}
	if body.Message == "" {
		body.Message = strings.ToLower(strings.ReplaceAll(string(appErr.Reason), "_", " "))
	}
	if appErr.Invalid > 0 {
		body.Details = dto.InvalidEntriesDetail{InvalidCount: appErr.Invalid}
	}
	ctx.JSON(apperr.Status(appErr.Reason), dto.ErrorResponse{Error: body})
}

// RespondBindError reports a request body or query that failed validation.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
		Code:    string(apperr.InvalidInput),
		Message: "Invalid request body",
		Details: []string{err.Error()},
	}})
}
