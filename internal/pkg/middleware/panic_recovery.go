package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers and converts
// them into 500 responses instead of crashing the process
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("Panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())))

					err = utils.InternalServerErrorResponse(c, fmt.Sprintf("internal error: %v", r))
				}
			}()

			return next(c)
		}
	}
}
