package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and answers with a 500 instead of tearing down the connection.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("Recovered from panic",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("stacktrace", string(debug.Stack())),
					)
					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
