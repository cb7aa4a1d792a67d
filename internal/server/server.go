package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/handler"
	"github.com/MKhiriev/go-medlux/internal/logger"
)

type server struct {
	transports []transport
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer opens the listeners of every transport that has a handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers.HTTP != nil {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error listening on HTTP address %q: %w", cfg.HTTPAddress, err)
		}
		s.transports = append(s.transports, h)
	}
	if handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			s.Shutdown()
			return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
		}
		s.transports = append(s.transports, g)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersAreCreated
	}

	failed := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func() {
			if err := t.serve(); err != nil {
				failed <- fmt.Errorf("%w: %s: %w", ErrTransportFailed, t.name(), err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-failed:
		s.logger.Err(err).Msg("transport failed, shutting down")
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports {
			t.shutdown()
		}
	})
}
