package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"fixtureplanner/internal/log"
)

// Logger is a middleware that logs each HTTP request as one structured line.
// Fields: request_id (from RequestID middleware), method, path, status, latency (ms).
// 5xx responses log at error level, 4xx at warn, everything else at info.
func Logger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := responseStatus(c, err)

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error()
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("http_request")

		return err
	}
}

// LoggerWithWriter logs JSON lines to w instead of the global logger.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	return Logger(log.New(w, false, "debug"))
}
