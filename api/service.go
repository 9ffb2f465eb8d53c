package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/wikitext/tmpstore"
	"github.com/Drolfothesgnir/wikitext/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	RequestIDHeader = "X-Request-ID"
	PingURL         = "/ping"
	ParseURL        = "/parse"
	TokenizeURL     = "/tokenize"
)

var (
	// api errors
	ErrInvalidParams          = errors.New("invalid params")
	ErrInputTooLarge          = errors.New("input is too large")
	ErrInvalidDigest          = errors.New("invalid digest")
	ErrParseResultNotFound    = errors.New("parse result not found or expired")
	ErrParseResultUnavailable = errors.New("cannot read parse result")
)

type Service struct {
	config util.Config

	// store caches parse results. It's nil when caching is disabled.
	store tmpstore.Store

	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config and store.
func NewService(config util.Config, store tmpstore.Store) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	service := &Service{
		config: config,
		store:  store,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
