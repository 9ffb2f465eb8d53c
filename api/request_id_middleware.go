package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMiddleware keeps the request id sent by the client if it's a valid UUID,
// and generates a new one otherwise. The id is echoed in the response header.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := uuid.Parse(ctx.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}

		requestID := id.String()
		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

// Helper function to get the request ID after middleware check.
func extractRequestIDFromCtx(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
