package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bodyLimitMiddleware rejects the requests with a declared body larger than the limit,
// and caps the reader for the ones which don't declare the length.
func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > limit {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLarge))
			return
		}

		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}

// isBodyTooLarge reports if the error comes from reading past the body limit.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
