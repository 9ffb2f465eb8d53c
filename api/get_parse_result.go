package api

import (
	"errors"
	"net/http"

	"github.com/Drolfothesgnir/wikitext/tmpstore"
	"github.com/gin-gonic/gin"
)

func (service *Service) getParseResult(ctx *gin.Context) {
	digest := extractDigestFromCtx(ctx)

	if service.store == nil {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrParseResultNotFound))
		return
	}

	result, err := service.store.GetParseResult(ctx, digest)
	if err != nil {
		if errors.Is(err, tmpstore.ErrCacheMiss) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrParseResultNotFound))
			return
		}

		ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrParseResultUnavailable))
		return
	}

	ctx.JSON(http.StatusOK, newParseResponse(*result, true))
}

func (service *Service) deleteParseResult(ctx *gin.Context) {
	digest := extractDigestFromCtx(ctx)

	if service.store != nil {
		if err := service.store.DeleteParseResult(ctx, digest); err != nil {
			ctx.Error(err)
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrParseResultUnavailable))
			return
		}
	}

	ctx.Status(http.StatusNoContent)
}
