package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger writes one zap line per request.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			}
			if s := AdminSubject(c); s != "" {
				fields = append(fields, zap.String("admin", s))
			}
			switch {
			case v.Error != nil:
				log.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				log.Error("request", fields...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}
