package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fundgraph/internal/config"
	"fundgraph/internal/domain"
	"fundgraph/internal/handler"
	"fundgraph/internal/hub"
	"fundgraph/internal/linkcache"
	"fundgraph/internal/loader"
	"fundgraph/internal/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// app is the wired fundgraph server
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	bus     *service.EventBus
	hub     *hub.Hub
	session *service.Session
	handler http.Handler
}

func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	ids, err := domain.NewIDGenerator(cfg.Graph.IDSource)
	if err != nil {
		return nil, err
	}

	eventBus := service.NewEventBus()
	sseHub := hub.New(logger.Named("hub"))

	// The form lives in the browser; clearing it is a pushed event on the
	// same bus as fund_added so clients see them in order.
	reset := func() {
		eventBus.Publish(service.Event{Type: service.EventFormReset})
	}

	render := cfg.Graph.Render
	gen := service.Generators{
		IDs:       ids,
		Positions: domain.NewJitterPositions(float64(render.Width), float64(render.Height), cfg.Graph.Jitter, cfg.EffectiveSeed()),
	}

	cache := linkcache.New()
	builder := service.NewGraphBuilder(cache, domain.NewSchemaValidator(), gen, reset, eventBus, logger.Named("graph"))
	selector := service.NewViewSelector(cache, reset, eventBus)
	session := service.NewSession(builder, selector, render)

	mux := http.NewServeMux()
	handler.NewFundHandler(session, logger.Named("api")).Register(mux)
	mux.Handle("GET /events", sseHub)

	return &app{
		cfg:     cfg,
		logger:  logger,
		bus:     eventBus,
		hub:     sseHub,
		session: session,
		handler: handler.Chain(mux,
			handler.Recover(logger),
			handler.CORS(cfg.Server.CORSOrigin),
			handler.Logger(logger.Named("http")),
		),
	}, nil
}

// seed submits every fund in a seed file, logging the ones the form would reject
func (a *app) seed(path string) error {
	candidates, err := loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load seed file: %w", err)
	}

	result := loader.Seed(a.session, candidates)
	for _, err := range result.Rejected {
		a.logger.Warn("seed fund rejected", zap.Error(err))
	}
	a.logger.Info("seed file applied",
		zap.String("path", path),
		zap.Int("accepted", len(result.Accepted)),
		zap.Int("rejected", len(result.Rejected)),
	)
	return nil
}

// serve runs the HTTP server and the SSE hub until ctx is cancelled
func (a *app) serve(ctx context.Context, ln net.Listener) error {
	events := make(chan service.Event, 100)
	a.bus.Subscribe(events)

	server := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: a.cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  a.cfg.Server.IdleTimeout.Duration(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.hub.Run(gctx)
	})

	// Connect event bus to SSE hub
	g.Go(func() error {
		for {
			select {
			case event := <-events:
				a.hub.Broadcast(event)
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		a.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
