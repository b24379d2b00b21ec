package middleware

import (
	apperrors "character-chat-demo/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// RequireStore guards data routes when the service started without a store
// connection. Every guarded endpoint then fails with the same 503; liveness
// and diagnostics stay up and report the condition as data instead.
func RequireStore(available func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !available() {
			c.Error(apperrors.NewServiceUnavailableError("STORE_UNAVAILABLE", "Database not available"))
			c.Abort()
			return
		}
		c.Next()
	}
}
