package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

// newTestGateway opens a migrated SQLite database in a temp dir with the
// admin seed in place.
func newTestGateway(t *testing.T) *store.Gateway {
	t.Helper()
	ctx := context.Background()

	dsn := filepath.Join(t.TempDir(), "suite.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := store.Open(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	gw, err := store.NewGateway(db)
	require.NoError(t, err)
	require.NoError(t, gw.EnsureAdminUser(ctx, crypto.Seeder(crypto.NewCredentialHasher())))
	return gw
}

var (
	adminIdentity = models.Identity{UserID: models.SeedAdminID, Nome: models.SeedAdminNome, Role: models.RoleAdmin}
	anaIdentity   = models.Identity{UserID: "ANA", Nome: "Ana", Role: models.RoleOperator}
)

func asAdmin() context.Context {
	return session.WithIdentity(context.Background(), adminIdentity)
}

func as(identity models.Identity) context.Context {
	return session.WithIdentity(context.Background(), identity)
}

func newTestUserService(gw *store.Gateway) UserService {
	return NewUserService(gw, crypto.NewCredentialHasher(), validators.NewRequestValidator(), logger.Nop())
}

func newTestEquipmentService(gw *store.Gateway) EquipmentService {
	return NewEquipmentService(gw, validators.NewRequestValidator(), logger.Nop())
}

func newTestAssignmentService(gw *store.Gateway) AssignmentService {
	return NewAssignmentService(gw, newTestUserService(gw), validators.NewRequestValidator(), logger.Nop())
}

func newTestMeasurementService(gw *store.Gateway) MeasurementService {
	return NewMeasurementService(gw, validators.NewRequestValidator(), config.App{}, logger.Nop())
}

// seedEquipment stores equipment records directly.
func seedEquipment(t *testing.T, gw *store.Gateway, items ...models.Equipment) {
	t.Helper()
	for _, e := range items {
		require.NoError(t, gw.Equipment.Put(context.Background(), e))
	}
}
