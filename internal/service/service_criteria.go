package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/models"
)

//go:embed criteria_defaults.yaml
var defaultCriteriaYAML []byte

// DefaultCriteria returns the criteria seeded into an empty store.
func DefaultCriteria() ([]models.Criterion, error) {
	var items []models.Criterion
	if err := yaml.Unmarshal(defaultCriteriaYAML, &items); err != nil {
		return nil, fmt.Errorf("error parsing default criteria: %w", err)
	}
	return items, nil
}

type criteriaService struct {
	gw *store.Gateway

	logger *logger.Logger
}

func NewCriteriaService(gw *store.Gateway, logger *logger.Logger) CriteriaService {
	return &criteriaService{
		gw:     gw,
		logger: logger,
	}
}

// Load returns the stored criteria ordered by id. An empty store is
// seeded with the defaults first; seeding a store that another caller
// seeded concurrently leaves it unchanged.
func (s *criteriaService) Load(ctx context.Context) ([]models.Criterion, error) {
	log := logger.FromContext(ctx)

	var items []models.Criterion
	err := s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		n, err := tx.Criteria.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			defaults, err := DefaultCriteria()
			if err != nil {
				return err
			}
			for _, c := range defaults {
				if err := tx.Criteria.Insert(ctx, c); err != nil && !errors.Is(err, store.ErrDuplicateKey) {
					return err
				}
			}
			log.Info().Str("func", "criteriaService.Load").Int("count", len(defaults)).Msg("seeded default criteria")
		}

		items, err = tx.Criteria.ReadAll(ctx)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "criteriaService.Load").Msg("error loading criteria")
		return nil, fmt.Errorf("error loading criteria: %w", err)
	}

	return NormalizeCriteria(items), nil
}

// ByNorm returns the stored criteria of one norm.
func (s *criteriaService) ByNorm(ctx context.Context, norm string) ([]models.Criterion, error) {
	items, err := s.gw.Criteria.QueryByIndex(ctx, store.IndexByNorm, strings.TrimSpace(norm))
	if err != nil {
		return nil, fmt.Errorf("error reading criteria: %w", err)
	}
	return NormalizeCriteria(items), nil
}

// Save normalises items and upserts all of them in one transaction.
// Criteria not named in items are kept.
func (s *criteriaService) Save(ctx context.Context, items []models.Criterion) ([]models.Criterion, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return nil, err
	}

	items = NormalizeCriteria(items)
	err := s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		for _, c := range items {
			if err := tx.Criteria.Put(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "criteriaService.Save").Msg("error saving criteria")
		return nil, fmt.Errorf("error saving criteria: %w", err)
	}

	return items, nil
}

// NormalizeCriteria trims every text field, names criteria without an id
// after their type, color and position, and zeroes non-finite minimums.
func NormalizeCriteria(items []models.Criterion) []models.Criterion {
	out := make([]models.Criterion, len(items))
	for i, c := range items {
		c.Norm = strings.TrimSpace(c.Norm)
		c.Type = strings.TrimSpace(c.Type)
		c.Color = strings.TrimSpace(c.Color)
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			c.ID = models.DefaultCriterionID(c.Type, c.Color, i)
		}
		if math.IsNaN(c.Min) || math.IsInf(c.Min, 0) {
			c.Min = 0
		}
		out[i] = c
	}
	return out
}
