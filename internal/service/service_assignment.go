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

type assignmentService struct {
	gw        *store.Gateway
	users     UserService
	validator validators.Validator

	logger *logger.Logger
}

func NewAssignmentService(gw *store.Gateway, users UserService, validator validators.Validator, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		gw:        gw,
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

// List returns every assignment ordered by id with the names of the user
// and equipment it links. Missing targets are rendered as placeholders.
func (s *assignmentService) List(ctx context.Context) ([]models.AssignmentView, error) {
	assignments, err := s.gw.Assignments.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	users, err := s.gw.Users.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	equipment, err := s.gw.Equipment.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing equipment: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.Nome
	}
	modelos := make(map[string]string, len(equipment))
	for _, e := range equipment {
		modelos[e.ID] = e.Modelo
	}

	views := make([]models.AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		v := models.AssignmentView{Assignment: a}

		nome, ok := names[a.UserID]
		v.UserMissing = !ok
		if nome == "" {
			nome = models.PlaceholderUser
		}
		v.UserNome = nome

		modelo, ok := modelos[a.EquipID]
		v.EquipMissing = !ok
		if modelo == "" {
			modelo = models.PlaceholderEquipment
		}
		v.EquipModelo = modelo

		views = append(views, v)
	}
	return views, nil
}

// Create activates the assignment of the (user, equipment) pair.
//
// A pair that was never linked gets a new record. An ended record is
// reactivated in place after its period is archived into the history, in
// the same transaction. An active record yields ErrAssignmentActive.
func (s *assignmentService) Create(ctx context.Context, req models.CreateAssignmentRequest) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnlyAssignments); err != nil {
		return models.Assignment{}, err
	}

	req.UserID = models.NormalizeID(req.UserID)
	req.EquipID = models.NormalizeID(req.EquipID)
	req.Observacao = strings.TrimSpace(req.Observacao)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrAssignmentFieldsRequired, err)
	}

	now := time.Now().UTC()
	a := models.Assignment{
		ID:         models.AssignmentKey(req.UserID, req.EquipID),
		UserID:     req.UserID,
		EquipID:    req.EquipID,
		Ativo:      true,
		DataInicio: now,
		Observacao: req.Observacao,
	}

	err := s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		previous, err := tx.Assignments.Get(ctx, a.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return err
		case previous.Ativo:
			return store.ErrAssignmentActive
		default:
			if err := archive(ctx, tx, previous, now); err != nil {
				return err
			}
		}
		return tx.Assignments.Activate(ctx, a)
	})
	if errors.Is(err, store.ErrAssignmentActive) {
		return models.Assignment{}, ErrAssignmentActive
	}
	if err != nil {
		log.Err(err).Str("func", "assignmentService.Create").Str("id", a.ID).Msg("error activating assignment")
		return models.Assignment{}, fmt.Errorf("error activating assignment: %w", err)
	}

	log.Info().Str("func", "assignmentService.Create").Str("id", a.ID).Msg("assignment activated")
	return a, nil
}

func archive(ctx context.Context, tx *store.Gateway, ended models.Assignment, at time.Time) error {
	fim := at
	if ended.DataFim != nil {
		fim = *ended.DataFim
	}
	_, err := tx.Periods.Append(ctx, models.AssignmentPeriod{
		VinculoID:  ended.ID,
		UserID:     ended.UserID,
		EquipID:    ended.EquipID,
		DataInicio: ended.DataInicio,
		DataFim:    fim,
		Observacao: ended.Observacao,
		ArchivedAt: at,
	})
	return err
}

// End marks the assignment inactive and stamps its end time.
func (s *assignmentService) End(ctx context.Context, id string) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return models.Assignment{}, err
	}

	var ended models.Assignment
	err := s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		if err := tx.Assignments.End(ctx, id, time.Now().UTC()); err != nil {
			return err
		}
		var err error
		ended, err = tx.Assignments.Get(ctx, id)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Assignment{}, ErrAssignmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "assignmentService.End").Str("id", id).Msg("error ending assignment")
		return models.Assignment{}, fmt.Errorf("error ending assignment: %w", err)
	}

	log.Info().Str("func", "assignmentService.End").Str("id", id).Msg("assignment ended")
	return ended, nil
}

// Options returns the selection lists for a new assignment: the operators
// and every piece of equipment.
func (s *assignmentService) Options(ctx context.Context) (models.AssignmentOptions, error) {
	if _, err := requireAdmin(ctx, app.MsgAdminOnlyAssignments); err != nil {
		return models.AssignmentOptions{}, err
	}

	operators, err := s.users.Operators(ctx)
	if err != nil {
		return models.AssignmentOptions{}, err
	}
	equipment, err := s.gw.Equipment.ReadAll(ctx)
	if err != nil {
		return models.AssignmentOptions{}, fmt.Errorf("error listing equipment: %w", err)
	}

	return models.AssignmentOptions{Operators: operators, Equipment: equipment}, nil
}

// History returns the archived periods of the assignment, oldest first.
func (s *assignmentService) History(ctx context.Context, id string) ([]models.AssignmentPeriod, error) {
	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return nil, err
	}

	if _, err := s.gw.Assignments.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error reading assignment: %w", err)
	}

	periods, err := s.gw.Periods.QueryByIndex(ctx, store.IndexVinculo, id)
	if err != nil {
		return nil, fmt.Errorf("error reading assignment history: %w", err)
	}
	return periods, nil
}
