package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

type equipmentService struct {
	gw        *store.Gateway
	validator validators.Validator

	logger *logger.Logger
}

func NewEquipmentService(gw *store.Gateway, validator validators.Validator, logger *logger.Logger) EquipmentService {
	return &equipmentService{
		gw:        gw,
		validator: validator,
		logger:    logger,
	}
}

// List returns every piece of equipment ordered by id.
func (s *equipmentService) List(ctx context.Context) ([]models.Equipment, error) {
	list, err := s.gw.Equipment.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing equipment: %w", err)
	}
	return list, nil
}

func (s *equipmentService) Get(ctx context.Context, id string) (models.Equipment, error) {
	e, err := s.gw.Equipment.Get(ctx, models.NormalizeID(id))
	if errors.Is(err, store.ErrNotFound) {
		return models.Equipment{}, ErrEquipmentNotFound
	}
	if err != nil {
		return models.Equipment{}, fmt.Errorf("error reading equipment: %w", err)
	}
	return e, nil
}

// Create stores a new piece of equipment. A taken id yields
// ErrEquipmentExists.
func (s *equipmentService) Create(ctx context.Context, req models.SaveEquipmentRequest) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return models.Equipment{}, err
	}

	e, err := s.prepare(ctx, req)
	if err != nil {
		return models.Equipment{}, err
	}

	err = s.gw.Equipment.Insert(ctx, e)
	if errors.Is(err, store.ErrDuplicateKey) {
		return models.Equipment{}, ErrEquipmentExists
	}
	if err != nil {
		log.Err(err).Str("func", "equipmentService.Create").Str("id", e.ID).Msg("error storing equipment")
		return models.Equipment{}, fmt.Errorf("error storing equipment: %w", err)
	}

	log.Info().Str("func", "equipmentService.Create").Str("id", e.ID).Msg("equipment created")
	return e, nil
}

// Update overwrites the record stored under originalID.
//
// When req.ID differs from originalID the record is renamed: a taken
// target id yields ErrEquipmentIDInUse, and without req.ConfirmRename the
// rename is refused with ErrRenameNotConfirmed. The old record is removed
// and the new one written in one transaction.
func (s *equipmentService) Update(ctx context.Context, originalID string, req models.SaveEquipmentRequest) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return models.Equipment{}, err
	}

	e, err := s.prepare(ctx, req)
	if err != nil {
		return models.Equipment{}, err
	}
	originalID = models.NormalizeID(originalID)

	if e.ID == originalID {
		err = s.gw.WithTx(ctx, func(tx *store.Gateway) error {
			if _, err := tx.Equipment.Get(ctx, originalID); err != nil {
				return err
			}
			return tx.Equipment.Put(ctx, e)
		})
	} else {
		err = s.rename(ctx, originalID, e, req.ConfirmRename)
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Equipment{}, ErrEquipmentNotFound
	case errors.Is(err, ErrEquipmentIDInUse), errors.Is(err, ErrRenameNotConfirmed):
		return models.Equipment{}, err
	case err != nil:
		log.Err(err).Str("func", "equipmentService.Update").Str("id", originalID).Msg("error updating equipment")
		return models.Equipment{}, fmt.Errorf("error updating equipment: %w", err)
	}

	log.Info().Str("func", "equipmentService.Update").Str("original_id", originalID).Str("id", e.ID).Msg("equipment saved")
	return e, nil
}

func (s *equipmentService) rename(ctx context.Context, originalID string, e models.Equipment, confirmed bool) error {
	_, err := s.gw.Equipment.Get(ctx, e.ID)
	if err == nil {
		return ErrEquipmentIDInUse
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if !confirmed {
		return ErrRenameNotConfirmed
	}

	return s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		if err := tx.Equipment.Delete(ctx, originalID); err != nil {
			return err
		}
		err := tx.Equipment.Insert(ctx, e)
		if errors.Is(err, store.ErrDuplicateKey) {
			return ErrEquipmentIDInUse
		}
		return err
	})
}

// Delete removes the equipment. Assignments and measurements pointing at
// it are kept and render a placeholder.
func (s *equipmentService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return err
	}

	id = models.NormalizeID(id)
	err := s.gw.Equipment.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEquipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "equipmentService.Delete").Str("id", id).Msg("error deleting equipment")
		return fmt.Errorf("error deleting equipment: %w", err)
	}

	log.Info().Str("func", "equipmentService.Delete").Str("id", id).Msg("equipment deleted")
	return nil
}

// prepare normalises the request into the record to store.
func (s *equipmentService) prepare(ctx context.Context, req models.SaveEquipmentRequest) (models.Equipment, error) {
	e := req.Equipment
	e.ID = models.NormalizeID(e.ID)
	e.Tipo = strings.TrimSpace(e.Tipo)
	e.Modelo = strings.TrimSpace(e.Modelo)
	e.NumeroSerie = strings.TrimSpace(e.NumeroSerie)
	e.Fabricante = strings.TrimSpace(e.Fabricante)
	e.ResponsavelAtual = strings.TrimSpace(e.ResponsavelAtual)
	e.Observacoes = strings.TrimSpace(e.Observacoes)
	e.UpdatedAt = time.Now().UTC()

	req.Equipment = e
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Equipment{}, fmt.Errorf("%w: %w", ErrEquipmentIDRequired, err)
	}
	return e, nil
}
