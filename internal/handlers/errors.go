package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"go.uber.org/zap"
)

// respondError renders err as {error, details?} with the status its type maps
// to. Server-side failures are logged with their stack.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	de := apperr.As(err)
	status := de.HTTPStatus()

	fields := []zap.Field{
		zap.String("type", string(de.Type)),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(de.Message, append(fields, zap.ByteString("stack", de.StackTrace()))...)
	} else {
		logger.Info(de.Message, fields...)
	}

	body := gin.H{"error": de.Message}
	switch {
	case de.Details != nil:
		body["details"] = de.Details
	case de.Type == apperr.ErrTypePersistence && de.Err != nil:
		body["details"] = de.Err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, logger *zap.Logger, message string, err error) {
	respondError(c, logger, apperr.InvalidInput(message, err).WithDetails(err.Error()))
}
