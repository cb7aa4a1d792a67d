package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/report"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/models"
)

type reportService struct {
	gw       *store.Gateway
	criteria CriteriaService

	logger *logger.Logger
}

func NewReportService(gw *store.Gateway, criteria CriteriaService, logger *logger.Logger) ReportService {
	return &reportService{
		gw:       gw,
		criteria: criteria,
		logger:   logger,
	}
}

// Build gathers the equipment, its measurements in chronological order and
// the criteria. Operators may only report on equipment visible to them.
func (s *reportService) Build(ctx context.Context, equipID string) (report.Report, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return report.Report{}, err
	}
	equipID = models.NormalizeID(equipID)

	e, err := s.gw.Equipment.Get(ctx, equipID)
	if errors.Is(err, store.ErrNotFound) {
		return report.Report{}, ErrEquipmentNotFound
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("error reading equipment: %w", err)
	}

	if !identity.IsAdmin() {
		visible, err := visibleEquipment(ctx, s.gw, identity)
		if err != nil {
			return report.Report{}, err
		}
		if !isVisible(visible, equipID) {
			return report.Report{}, ErrEquipmentNotVisible
		}
	}

	measurements, err := s.gw.Measurements.ForEquipment(ctx, equipID)
	if err != nil {
		return report.Report{}, fmt.Errorf("error listing measurements: %w", err)
	}
	criteria, err := s.criteria.Load(ctx)
	if err != nil {
		return report.Report{}, err
	}

	return report.Report{
		GeneratedAt:  time.Now().UTC(),
		GeneratedBy:  identity.UserID,
		Equipment:    e,
		Criteria:     criteria,
		Measurements: measurements,
	}, nil
}

func (s *reportService) Render(ctx context.Context, w io.Writer, equipID string) error {
	r, err := s.Build(ctx, equipID)
	if err != nil {
		return err
	}
	if err = report.RenderHTML(w, r); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.Render").Str("equip_id", equipID).Msg("error rendering report")
		return err
	}
	return nil
}
