package ginmw

import (
	"github.com/gin-gonic/gin"

	checkfields "github.com/iofields/checkfields"
	"github.com/iofields/checkfields/middleware"
)

// ValidateJSON validates the request body against s, stores the decoded body
// in the request context, and aborts with 400 on failure.
func ValidateJSON(s checkfields.Schema, opts ...checkfields.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := middleware.Decode(c.Request, s, opts...)
		if err != nil {
			middleware.WriteError(c.Writer, err)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithBody(c.Request.Context(), body))
		c.Next()
	}
}

// GetBody fetches the validated body from gin.Context.
func GetBody(c *gin.Context) (any, bool) {
	return middleware.BodyFromContext(c.Request.Context())
}
