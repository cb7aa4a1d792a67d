package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

type measurementService struct {
	gw        *store.Gateway
	validator validators.Validator
	recent    int

	logger *logger.Logger
}

func NewMeasurementService(gw *store.Gateway, validator validators.Validator, cfg config.App, logger *logger.Logger) MeasurementService {
	recent := cfg.RecentMeasurements
	if recent <= 0 {
		recent = config.DefaultRecentMeasurements
	}
	return &measurementService{
		gw:        gw,
		validator: validator,
		recent:    recent,
		logger:    logger,
	}
}

// VisibleEquipment returns the equipment the caller may record
// measurements for, ordered by id: everything for an admin, and for an
// operator the equipment of its active assignments that still exists.
func (s *measurementService) VisibleEquipment(ctx context.Context) ([]models.Equipment, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return visibleEquipment(ctx, s.gw, identity)
}

func visibleEquipment(ctx context.Context, gw *store.Gateway, identity models.Identity) ([]models.Equipment, error) {
	if identity.IsAdmin() {
		list, err := gw.Equipment.ReadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing equipment: %w", err)
		}
		return list, nil
	}

	active, err := gw.Assignments.ActiveFor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}

	visible := make([]models.Equipment, 0, len(active))
	for _, a := range active {
		e, err := gw.Equipment.Get(ctx, a.EquipID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading equipment: %w", err)
		}
		visible = append(visible, e)
	}

	sort.Slice(visible, func(i, j int) bool { return visible[i].ID < visible[j].ID })
	return visible, nil
}

func isVisible(list []models.Equipment, id string) bool {
	for _, e := range list {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Save records a measurement taken by the caller now. The equipment must
// be visible to the caller.
func (s *measurementService) Save(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	identity, err := currentIdentity(ctx)
	if err != nil {
		return models.Measurement{}, err
	}

	visible, err := visibleEquipment(ctx, s.gw, identity)
	if err != nil {
		return models.Measurement{}, err
	}
	if len(visible) == 0 {
		return models.Measurement{}, ErrNoVisibleEquipment
	}

	req.EquipID = models.NormalizeID(req.EquipID)
	req.Local = strings.TrimSpace(req.Local)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrMeasurementFieldsRequired, err)
	}
	if !isVisible(visible, req.EquipID) {
		log.Warn().
			Str("func", "measurementService.Save").
			Str("user_id", identity.UserID).
			Str("equip_id", req.EquipID).
			Msg("equipment not visible")
		return models.Measurement{}, ErrEquipmentNotVisible
	}

	tipo := strings.TrimSpace(req.TipoMedicao)
	if tipo == "" {
		tipo = models.DefaultMeasurementType
	}

	now := time.Now().UTC()
	m := models.Measurement{
		UserID:      identity.UserID,
		EquipID:     req.EquipID,
		DataHora:    now,
		TipoMedicao: tipo,
		Payload: models.MeasurementPayload{
			Local:      req.Local,
			Observacao: strings.TrimSpace(req.Observacao),
			RL:         strings.TrimSpace(req.RL),
		},
		CreatedAt: now,
	}

	m.ID, err = s.gw.Measurements.Append(ctx, m)
	if err != nil {
		log.Err(err).Str("func", "measurementService.Save").Str("equip_id", m.EquipID).Msg("error storing measurement")
		return models.Measurement{}, fmt.Errorf("error storing measurement: %w", err)
	}

	log.Info().Str("func", "measurementService.Save").Int64("id", m.ID).Str("equip_id", m.EquipID).Msg("measurement saved")
	return m, nil
}

// Recent returns the newest measurements: every user's for an admin, the
// caller's own for an operator.
func (s *measurementService) Recent(ctx context.Context, limit int) ([]models.Measurement, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.recent
	}

	userID := identity.UserID
	if identity.IsAdmin() {
		userID = ""
	}

	list, err := s.gw.Measurements.Recent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}
	return list, nil
}
