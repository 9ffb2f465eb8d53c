package api

import (
	"net/http"

	"github.com/Drolfothesgnir/wikitext/wikitext"
	"github.com/gin-gonic/gin"
)

type TokenResponse struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type TokenizeResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// tokenize splits the text into whitespace and glyph tokens without looking for markup.
func (service *Service) tokenize(ctx *gin.Context) {
	text, ok := service.bindMarkup(ctx)
	if !ok {
		return
	}

	nodes := wikitext.Tokenize(text)

	resp := TokenizeResponse{Tokens: make([]TokenResponse, len(nodes))}
	for i, n := range nodes {
		resp.Tokens[i] = TokenResponse{Type: n.Type().String(), Content: n.String()}
	}

	ctx.JSON(http.StatusOK, resp)
}
