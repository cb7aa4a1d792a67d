package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

// LoginPath is where anonymous callers are sent to sign in.
const LoginPath = "/"

// authService is the concrete implementation of AuthService.
// It verifies PIN credentials against the users collection and opens
// sessions in the session manager.
type authService struct {
	gw        *store.Gateway
	sessions  *session.Manager
	hasher    crypto.CredentialHasher
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthService(
	gw *store.Gateway,
	sessions *session.Manager,
	hasher crypto.CredentialHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		gw:        gw,
		sessions:  sessions,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

// Login authenticates req and opens a session.
//
// The user id is normalised and the PIN trimmed first. Returns:
//   - ErrInvalidPIN if the PIN is not exactly four digits.
//   - ErrUserNotFound if no user has the id.
//   - ErrWrongPIN if the PIN does not match the stored credential.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	req.UserID = models.NormalizeID(req.UserID)
	req.PIN = strings.TrimSpace(req.PIN)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidPIN, err)
	}

	user, err := a.gw.Users.Get(ctx, req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("func", "authService.Login").Str("user_id", req.UserID).Msg("unknown user")
		return models.Session{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", req.UserID).Msg("user lookup failed")
		return models.Session{}, fmt.Errorf("user lookup failed: %w", err)
	}

	ok, err := a.hasher.VerifyCredential(req.PIN, user.PinSalt, user.PinHash)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.UserID).Msg("stored credential unreadable")
		return models.Session{}, fmt.Errorf("error verifying credential: %w", err)
	}
	if !ok {
		log.Info().Str("func", "authService.Login").Str("user_id", user.UserID).Msg("wrong pin")
		return models.Session{}, ErrWrongPIN
	}

	sess, err := a.sessions.Set(user.Identity())
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.UserID).Msg("error opening session")
		return models.Session{}, fmt.Errorf("error opening session: %w", err)
	}

	log.Info().Str("func", "authService.Login").Str("user_id", user.UserID).Msg("signed in")
	return sess, nil
}

// Logout clears the session of token. Unknown tokens are ignored.
func (a *authService) Logout(ctx context.Context, token string) error {
	a.sessions.Clear(token)
	return nil
}

func (a *authService) Session(ctx context.Context, token string) (models.Identity, error) {
	return a.sessions.RequireAuth(token, LoginPath)
}
