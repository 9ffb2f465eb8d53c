package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		loggerMiddleware(),
		service.corsMiddleware(),
	)

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// both entry points read the raw markup from the body
	inputGroup := router.Group("/").Use(bodyLimitMiddleware(service.bodyLimit()))
	inputGroup.POST(ParseURL, service.parse)
	inputGroup.POST(TokenizeURL, service.tokenize)

	// cached results are addressed by the digest of their input
	resultGroup := router.Group(ParseURL).Use(digestMiddleware())
	resultGroup.GET("/:digest", service.getParseResult)
	resultGroup.DELETE("/:digest", service.deleteParseResult)

	server.Handler = router
	service.router = router
}

// bodyLimit leaves room for the JSON envelope and the escaping of the markup.
func (service *Service) bodyLimit() int64 {
	return 2*service.config.MaxInputBytes + 1024
}
