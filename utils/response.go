package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/apperr"
)

// RespondWithError aborts the request with {"error": message}.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithAppError maps err to its status and public message. Server side
// failures are logged with their cause, which never reaches the client.
func RespondWithAppError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperr.StatusCode(err)

	if status >= http.StatusInternalServerError {
		event := log.Error().
			Err(err).
			Str("request_id", c.GetString("requestID")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path)
		var serr *apperr.StoreError
		if errors.As(err, &serr) {
			event = event.Str("op", serr.Op)
		}
		event.Msg("request failed")
	}

	RespondWithError(c, status, apperr.PublicMessage(err))
}
