package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"melodex/internal/apperr"
)

// respondError maps a service error onto the wire contract. Every error
// body carries the human-readable message under "error" and the taxonomy
// code under "code"; validation failures add the accumulated rule
// violations under "details". Internal failures expose their cause only
// when debug is on.
func respondError(c *gin.Context, err error, debug bool) {
	appErr := apperr.From(err)

	body := gin.H{
		"error": appErr.Message,
		"code":  string(appErr.Code),
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	if appErr.Code == apperr.CodeInternal {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", appErr.Err,
		)
		if debug && appErr.Err != nil {
			body["detail"] = appErr.Err.Error()
		}
	}

	c.JSON(appErr.HTTPStatus(), body)
}

// bindError wraps a JSON binding failure as a validation error so clients
// get the same shape for malformed bodies and broken field rules
func bindError(err error) error {
	return apperr.Validation([]string{"invalid request body: " + err.Error()})
}
