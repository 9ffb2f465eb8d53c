package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/wikitext/api"
	"github.com/Drolfothesgnir/wikitext/tmpstore"
	"github.com/Drolfothesgnir/wikitext/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, newCache(ctx, config))

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newCache connects to redis, or returns nil if caching is not configured.
// An unreachable server is not fatal, the service works without the cache.
func newCache(ctx context.Context, config util.Config) *tmpstore.RedisStore {
	if config.RedisAddress == "" {
		log.Info().Msg("REDIS_ADDRESS is not set, parse results won't be cached")
		return nil
	}

	store := tmpstore.NewStore(&config)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("address", config.RedisAddress).Msg("redis is not reachable yet")
	}

	return store
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	cache *tmpstore.RedisStore,
) {
	// a nil *RedisStore must become a nil interface
	var store tmpstore.Store
	if cache != nil {
		store = cache
	}

	service, err := api.NewService(config, store)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the redis connection pool
		if store != nil {
			if closeErr := store.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("cannot close redis connection")
			}
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
