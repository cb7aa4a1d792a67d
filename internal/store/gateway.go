package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/models"
)

// maxTxAttempts bounds how many times WithTx runs a transaction that keeps
// failing with a retryable error.
const maxTxAttempts = 3

// Gateway groups the suite collections. A gateway returned by [NewGateway]
// is bound to the connection pool; the one handed to a [Gateway.WithTx]
// callback is bound to that transaction.
type Gateway struct {
	Users        *Collection[models.User]
	Equipment    *Collection[models.Equipment]
	Assignments  *AssignmentCollection
	Measurements *MeasurementCollection
	Criteria     *Collection[models.Criterion]
	Periods      *Collection[models.AssignmentPeriod]

	db   *DB
	inTx bool
}

// NewGateway binds every collection to db.
func NewGateway(db *DB) (*Gateway, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	return bind(db, db.DB, false), nil
}

func bind(db *DB, q queryer, inTx bool) *Gateway {
	sb := db.builder()
	return &Gateway{
		Users:     newCollection(usersSpec, q, sb),
		Equipment: newCollection(equipmentSpec, q, sb),
		Assignments: &AssignmentCollection{
			Collection: newCollection(assignmentsSpec, q, sb),
		},
		Measurements: &MeasurementCollection{
			Collection: newCollection(measurementsSpec, q, sb),
		},
		Criteria: newCollection(criteriaSpec, q, sb),
		Periods:  newCollection(periodsSpec, q, sb),
		db:       db,
		inTx:     inTx,
	}
}

// DB returns the underlying database.
func (g *Gateway) DB() *DB {
	return g.db
}

// WithTx runs fn inside one transaction spanning every collection. The
// transaction commits when fn returns nil and rolls back otherwise.
// Transactions failing with a retryable error are run again, up to
// three attempts in total.
//
// fn must only use the gateway it receives. Calling WithTx on a gateway
// that is already bound to a transaction runs fn in that transaction.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx *Gateway) error) error {
	if g.inTx {
		return fn(g)
	}

	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = g.runTx(ctx, fn)
		if err == nil || g.db.errorClassificator == nil ||
			g.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().
			Err(err).
			Str("func", "Gateway.WithTx").
			Int("attempt", attempt).
			Msg("retryable transaction failure")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return err
}

func (g *Gateway) runTx(ctx context.Context, fn func(tx *Gateway) error) error {
	log := logger.FromContext(ctx)

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Gateway.WithTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(bind(g.db, tx, true)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "Gateway.WithTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// AssignmentCollection adds the conditional activation writes to the
// assignment table.
type AssignmentCollection struct {
	*Collection[models.Assignment]
}

// Activate inserts a or reactivates the ended record stored under a.ID.
// The write happens only if no active record exists for the key, decided
// in the same statement. An already active record yields
// [ErrAssignmentActive].
func (c *AssignmentCollection) Activate(ctx context.Context, a models.Assignment) error {
	query, args, err := c.sb.Insert(c.spec.table).
		Columns(c.spec.insertColumns()...).
		Values(c.spec.values(a)...).
		Suffix(c.spec.upsertClause()+" WHERE "+c.spec.table+".ativo = ?", false).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := c.exec(ctx, "AssignmentCollection.Activate", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentActive
	}
	return nil
}

// End marks the assignment stored under id inactive and stamps its end time.
// A missing record yields [ErrNotFound].
func (c *AssignmentCollection) End(ctx context.Context, id string, at time.Time) error {
	query, args, err := c.sb.Update(c.spec.table).
		Set("ativo", false).
		Set("data_fim", at.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := c.exec(ctx, "AssignmentCollection.End", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveFor returns the active assignments of userID.
func (c *AssignmentCollection) ActiveFor(ctx context.Context, userID string) ([]models.Assignment, error) {
	all, err := c.QueryByIndex(ctx, IndexUserID, userID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Assignment, 0, len(all))
	for _, a := range all {
		if a.Ativo {
			active = append(active, a)
		}
	}
	return active, nil
}

// MeasurementCollection adds the recency query to the measurement table.
type MeasurementCollection struct {
	*Collection[models.Measurement]
}

// Recent returns the newest measurements, newest first, capped at limit.
// An empty userID selects every user's measurements.
func (c *MeasurementCollection) Recent(ctx context.Context, userID string, limit int) ([]models.Measurement, error) {
	var (
		list []models.Measurement
		err  error
	)
	if userID == "" {
		list, err = c.ReadAll(ctx)
	} else {
		list, err = c.QueryByIndex(ctx, IndexUserID, userID)
	}
	if err != nil {
		return nil, err
	}

	sortNewestFirst(list)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// ForEquipment returns the measurements of equipID in chronological order.
func (c *MeasurementCollection) ForEquipment(ctx context.Context, equipID string) ([]models.Measurement, error) {
	list, err := c.QueryByIndex(ctx, IndexEquipID, equipID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].DataHora.Equal(list[j].DataHora) {
			return list[i].DataHora.Before(list[j].DataHora)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func sortNewestFirst(list []models.Measurement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].DataHora.Equal(list[j].DataHora) {
			return list[i].DataHora.After(list[j].DataHora)
		}
		return list[i].ID > list[j].ID
	})
}

// EnsureAdminUser seeds the default admin account when it is absent.
// derive returns the base64 salt and hash of a PIN.
// An existing record, including one whose PIN was reset, is left untouched,
// so calling it any number of times leaves exactly one admin seed.
func (g *Gateway) EnsureAdminUser(ctx context.Context, derive func(pin string) (salt, hash string, err error)) error {
	log := logger.FromContext(ctx)

	if _, err := g.Users.Get(ctx, models.SeedAdminID); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	salt, hash, err := derive(models.SeedAdminPIN)
	if err != nil {
		return fmt.Errorf("error deriving seed admin credential: %w", err)
	}

	err = g.Users.Insert(ctx, models.User{
		UserID:    models.SeedAdminID,
		Nome:      models.SeedAdminNome,
		Role:      models.RoleAdmin,
		PinSalt:   salt,
		PinHash:   hash,
		CreatedAt: time.Now().UTC(),
	})
	if errors.Is(err, ErrDuplicateKey) {
		// seeded concurrently
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("func", "Gateway.EnsureAdminUser").Str("user_id", models.SeedAdminID).Msg("seeded admin user")
	return nil
}
