package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/store"
)

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

// Check pings the store.
func (s *healthService) Check(ctx context.Context) error {
	if s.db == nil {
		return store.ErrNilDB
	}
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}
