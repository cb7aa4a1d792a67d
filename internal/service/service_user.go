package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

type userService struct {
	gw        *store.Gateway
	hasher    crypto.CredentialHasher
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(gw *store.Gateway, hasher crypto.CredentialHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		gw:        gw,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

// List returns every user ordered by id.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.gw.Users.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Operators returns the users with the operator role ordered by id.
func (s *userService) Operators(ctx context.Context) ([]models.User, error) {
	users, err := s.gw.Users.QueryByIndex(ctx, store.IndexRole, models.RoleOperator)
	if err != nil {
		return nil, fmt.Errorf("error listing operators: %w", err)
	}
	return users, nil
}

// Create stores a new user with a freshly salted PIN credential. An empty
// role creates an operator. A taken id yields ErrUserExists.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnlyUsers); err != nil {
		return models.User{}, err
	}

	req.UserID = models.NormalizeID(req.UserID)
	req.Nome = strings.TrimSpace(req.Nome)
	req.PIN = strings.TrimSpace(req.PIN)
	if req.Role == "" {
		req.Role = models.RoleOperator
	}

	err := s.validator.Validate(ctx, req, validators.FieldUserID, validators.FieldNome, validators.FieldRole, validators.FieldPIN)
	switch {
	case errors.Is(err, validators.ErrInvalidPIN):
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	case errors.Is(err, validators.ErrInvalidRole):
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case validators.IsMissingField(err):
		return models.User{}, fmt.Errorf("%w: %w", ErrUserFieldsRequired, err)
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	cred, err := s.hasher.DeriveCredential(req.PIN, nil)
	if err != nil {
		log.Err(err).Str("func", "userService.Create").Msg("error deriving credential")
		return models.User{}, fmt.Errorf("error deriving credential: %w", err)
	}

	user := models.User{
		UserID:    req.UserID,
		Nome:      req.Nome,
		Role:      req.Role,
		PinSalt:   cred.SaltB64(),
		PinHash:   cred.HashB64(),
		CreatedAt: time.Now().UTC(),
	}

	err = s.gw.Users.Insert(ctx, user)
	if errors.Is(err, store.ErrDuplicateKey) {
		return models.User{}, ErrUserExists
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Create").Str("user_id", user.UserID).Msg("error storing user")
		return models.User{}, fmt.Errorf("error storing user: %w", err)
	}

	log.Info().Str("func", "userService.Create").Str("user_id", user.UserID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// ResetPIN replaces the credential of userID with one derived from the new
// PIN under a fresh salt.
func (s *userService) ResetPIN(ctx context.Context, userID string, req models.ResetPINRequest) error {
	log := logger.FromContext(ctx)

	if _, err := requireAdmin(ctx, app.MsgAdminOnly); err != nil {
		return err
	}

	req.PIN = strings.TrimSpace(req.PIN)
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	}

	cred, err := s.hasher.DeriveCredential(req.PIN, nil)
	if err != nil {
		log.Err(err).Str("func", "userService.ResetPIN").Msg("error deriving credential")
		return fmt.Errorf("error deriving credential: %w", err)
	}

	userID = models.NormalizeID(userID)
	err = s.gw.WithTx(ctx, func(tx *store.Gateway) error {
		user, err := tx.Users.Get(ctx, userID)
		if err != nil {
			return err
		}
		user.PinSalt = cred.SaltB64()
		user.PinHash = cred.HashB64()
		return tx.Users.Put(ctx, user)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "userService.ResetPIN").Str("user_id", userID).Msg("error resetting pin")
		return fmt.Errorf("error resetting pin: %w", err)
	}

	log.Info().Str("func", "userService.ResetPIN").Str("user_id", userID).Msg("pin reset")
	return nil
}
