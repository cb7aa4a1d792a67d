package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/mock"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

func newTestAuthService(t *testing.T, hasher crypto.CredentialHasher) (AuthService, *session.Manager) {
	t.Helper()
	sessions := session.NewManager("test-key", "medlux-test")
	return NewAuthService(newTestGateway(t), sessions, hasher, validators.NewRequestValidator(), logger.Nop()), sessions
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_SeedAdmin(t *testing.T) {
	svc, sessions := newTestAuthService(t, crypto.NewCredentialHasher())
	ctx := context.Background()

	sess, err := svc.Login(ctx, models.LoginRequest{UserID: "  ranieri ", PIN: models.SeedAdminPIN})
	require.NoError(t, err)
	assert.Equal(t, adminIdentity, sess.Identity)
	assert.NotEmpty(t, sess.Token)

	identity, ok := sessions.Get(sess.Token)
	require.True(t, ok)
	assert.True(t, identity.IsAdmin())

	got, err := svc.Session(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, adminIdentity, got)
}

func TestAuthService_Login_TrimsPIN(t *testing.T) {
	svc, _ := newTestAuthService(t, crypto.NewCredentialHasher())

	sess, err := svc.Login(context.Background(), models.LoginRequest{UserID: "ranieri", PIN: " " + models.SeedAdminPIN + " "})
	require.NoError(t, err)
	assert.Equal(t, adminIdentity, sess.Identity)
}

func TestAuthService_Login_Errors(t *testing.T) {
	svc, _ := newTestAuthService(t, crypto.NewCredentialHasher())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{"short pin", models.LoginRequest{UserID: "RANIERI", PIN: "230"}, ErrInvalidPIN},
		{"letters in pin", models.LoginRequest{UserID: "RANIERI", PIN: "23a8"}, ErrInvalidPIN},
		{"blank pin", models.LoginRequest{UserID: "RANIERI", PIN: "    "}, ErrInvalidPIN},
		{"unknown user", models.LoginRequest{UserID: "NOBODY", PIN: "2308"}, ErrUserNotFound},
		{"empty user", models.LoginRequest{UserID: "", PIN: "2308"}, ErrUserNotFound},
		{"wrong pin", models.LoginRequest{UserID: "RANIERI", PIN: "0000"}, ErrWrongPIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_MalformedStoredCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := mock.NewMockCredentialHasher(ctrl)
	hasher.EXPECT().
		VerifyCredential("2308", gomock.Any(), gomock.Any()).
		Return(false, crypto.ErrMalformedEncoding)

	svc, sessions := newTestAuthService(t, hasher)

	_, err := svc.Login(context.Background(), models.LoginRequest{UserID: "RANIERI", PIN: "2308"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrMalformedEncoding))
	assert.Zero(t, sessions.Len())
}

// ── Logout / Session ─────────────────────────────────────────────────────────

func TestAuthService_LogoutClearsSession(t *testing.T) {
	svc, sessions := newTestAuthService(t, crypto.NewCredentialHasher())
	ctx := context.Background()

	sess, err := svc.Login(ctx, models.LoginRequest{UserID: "RANIERI", PIN: "2308"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	assert.Zero(t, sessions.Len())

	_, err = svc.Session(ctx, sess.Token)
	var redirect *session.RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, LoginPath, redirect.Target)

	// logging out twice is harmless
	assert.NoError(t, svc.Logout(ctx, sess.Token))
}
