package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/wikitext/tmpstore"
	"github.com/Drolfothesgnir/wikitext/wikitext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const digestSize = sha256.Size

// MarkupRequest carries the raw markup. The text may be empty, but must be present.
type MarkupRequest struct {
	Text *string `json:"text" binding:"required"`
}

type ParseResponse struct {
	ID     string                    `json:"id"`
	Digest string                    `json:"digest"`
	Cached bool                      `json:"cached"`
	Stats  wikitext.Stats            `json:"stats"`
	Tree   wikitext.SerializableNode `json:"tree"`
}

func newParseResponse(result tmpstore.ParseResult, cached bool) ParseResponse {
	return ParseResponse{
		ID:     result.ID,
		Digest: result.Digest,
		Cached: cached,
		Stats:  result.Stats,
		Tree:   result.Tree,
	}
}

// digestOf returns the hex-encoded SHA-256 sum of the markup, used as the cache key.
func digestOf(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// bindMarkup reads the request and writes the error response if it's invalid.
func (service *Service) bindMarkup(ctx *gin.Context) (string, bool) {
	var req MarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if isBodyTooLarge(err) {
			ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLarge))
			return "", false
		}

		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return "", false
	}

	if int64(len(*req.Text)) > service.config.MaxInputBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLarge))
		return "", false
	}

	return *req.Text, true
}

func (service *Service) parse(ctx *gin.Context) {
	text, ok := service.bindMarkup(ctx)
	if !ok {
		return
	}

	digest := digestOf(text)

	if service.store != nil {
		cached, err := service.store.GetParseResult(ctx, digest)
		if err == nil {
			ctx.JSON(http.StatusOK, newParseResponse(*cached, true))
			return
		}

		// the cache is optional, a broken one must not fail the request
		if !errors.Is(err, tmpstore.ErrCacheMiss) {
			log.Warn().Err(err).Str("digest", digest).Msg("cannot read parse result from cache")
		}
	}

	root := wikitext.Parse(text)

	result := tmpstore.ParseResult{
		ID:        uuid.NewString(),
		Digest:    digest,
		Stats:     wikitext.Measure(root),
		Tree:      wikitext.Serialize(root),
		CreatedAt: time.Now().UTC(),
	}

	if service.store != nil {
		err := service.store.SaveParseResult(ctx, digest, result, service.config.ParseCacheTTL)
		if err != nil {
			log.Warn().Err(err).Str("digest", digest).Msg("cannot save parse result to cache")
		}
	}

	ctx.JSON(http.StatusOK, newParseResponse(result, false))
}
