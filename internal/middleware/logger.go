package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger writes one access log line per request.  Server errors
// log at error level, client errors at warn.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler render so the logged status is the one sent
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			level := zapcore.InfoLevel
			switch {
			case res.Status >= 500:
				level = zapcore.ErrorLevel
			case res.Status >= 400:
				level = zapcore.WarnLevel
			}
			if ce := log.Check(level, "request"); ce != nil {
				ce.Write(
					zap.String("method", req.Method),
					zap.String("path", req.URL.Path),
					zap.String("route", c.Path()),
					zap.Int("status", res.Status),
					zap.Int64("bytes", res.Size),
					zap.Duration("latency", time.Since(start)),
					zap.String("remote_ip", c.RealIP()),
					zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				)
			}
			return nil
		}
	}
}
