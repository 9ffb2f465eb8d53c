package api

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const digestKey = "provided_digest"

// digestMiddleware checks the mandatory digest parameter in the URL,
// which must be a hex-encoded SHA-256 sum.
func digestMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		digest := ctx.Param("digest")

		if !isDigest(digest) {
			field := ErrorField{"digest", fmt.Sprintf("digest [%s] is invalid", digest)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidDigest, field),
			)
			return
		}

		ctx.Set(digestKey, strings.ToLower(digest))
		ctx.Next()
	}
}

func isDigest(s string) bool {
	if len(s) != hex.EncodedLen(digestSize) {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Helper function to get the digest after middleware check.
func extractDigestFromCtx(ctx *gin.Context) string {
	return ctx.MustGet(digestKey).(string)
}
