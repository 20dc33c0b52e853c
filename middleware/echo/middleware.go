package echomw

import (
	"github.com/labstack/echo/v4"

	checkfields "github.com/iofields/checkfields"
	"github.com/iofields/checkfields/middleware"
)

// ValidateJSON validates the request body against s, stores the decoded body
// in the request context on success, or returns 400 with an error payload.
func ValidateJSON(s checkfields.Schema, opts ...checkfields.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := middleware.Decode(c.Request(), s, opts...)
			if err != nil {
				middleware.WriteError(c.Response(), err)
				return nil
			}
			ctx := middleware.ContextWithBody(c.Request().Context(), body)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetBody fetches the validated body from echo.Context.
func GetBody(c echo.Context) (any, bool) {
	return middleware.BodyFromContext(c.Request().Context())
}
