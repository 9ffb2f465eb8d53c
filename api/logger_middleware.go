package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// loggerMiddleware writes one log entry per request.
func loggerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(ctx.Errors) > 0 {
			event = event.Str("errors", ctx.Errors.String())
		}

		event.
			Str("request_id", extractRequestIDFromCtx(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status_code", status).
			Int("body_size", ctx.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("received an HTTP request")
	}
}
