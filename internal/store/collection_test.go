package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/models"
)

func newMockDB(t *testing.T, placeholder sq.PlaceholderFormat) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, placeholder: placeholder, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCollection_Get_ScanError(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, nome, role, pin_salt, pin_hash, created_at FROM users WHERE user_id = ?")).
		WithArgs("ANA").
		WillReturnError(errors.New("disk I/O error"))

	_, err := g.Users.Get(testContext(), "ANA")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCollection_Get_NoRows(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectQuery("SELECT .* FROM equipamentos WHERE id = ?").
		WithArgs("EQ9").
		WillReturnError(sql.ErrNoRows)

	if _, err := g.Equipment.Get(testContext(), "EQ9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollection_ReadAll_QueryError(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectQuery("SELECT .* FROM criteria ORDER BY id").
		WillReturnError(errors.New("boom"))

	if _, err := g.Criteria.ReadAll(testContext()); !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCollection_ReadAll_RowError(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	rows := sqlmock.NewRows([]string{"id", "norm", "type", "color", "min_value"}).
		AddRow("a", "n", "t", "c", 1.0).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery("SELECT .* FROM criteria").WillReturnRows(rows)

	if _, err := g.Criteria.ReadAll(testContext()); !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestCollection_Put_UsesUpsert(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO criteria (id,norm,type,color,min_value) VALUES (?,?,?,?,?) " +
			"ON CONFLICT (id) DO UPDATE SET norm = excluded.norm, type = excluded.type, " +
			"color = excluded.color, min_value = excluded.min_value")).
		WithArgs("a", "NBR", "horizontal", "branca", 100.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := g.Criteria.Put(testContext(), models.Criterion{ID: "a", Norm: "NBR", Type: "horizontal", Color: "branca", Min: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCollection_Put_DollarPlaceholders(t *testing.T) {
	db, mock := newMockDB(t, sq.Dollar)
	g := bind(db, db.DB, false)

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id)")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := g.Criteria.Put(testContext(), models.Criterion{ID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCollection_Put_AutoKey(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		prefix string
	}{
		{name: "zero key", id: 0, prefix: "INSERT INTO medicoes (user_id,"},
		{name: "known key", id: 42, prefix: "INSERT INTO medicoes (id,user_id,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, sq.Question)
			g := bind(db, db.DB, false)

			mock.ExpectExec("^" + regexp.QuoteMeta(tt.prefix) + ".* ON CONFLICT \\(id\\) DO UPDATE SET user_id = excluded.user_id").
				WillReturnResult(sqlmock.NewResult(tt.id, 1))

			if err := g.Measurements.Put(testContext(), models.Measurement{ID: tt.id, UserID: "ANA"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestCollection_Insert_ExecError(t *testing.T) {
	db, mock := newMockDB(t, sq.Dollar)
	g := bind(db, db.DB, false)

	mock.ExpectExec("INSERT INTO equipamentos .* ON CONFLICT DO NOTHING").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := g.Equipment.Insert(testContext(), models.Equipment{ID: "EQ1"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if NewPostgresErrorClassifier().Classify(err) != Retryable {
		t.Error("expected the wrapped connection failure to stay classifiable")
	}
}

func TestCollection_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipamentos WHERE id = ?")).
		WithArgs("EQ1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := g.Equipment.Delete(testContext(), "EQ1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollection_Append_Error(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectQuery("INSERT INTO medicoes .* RETURNING id").
		WillReturnError(errors.New("readonly database"))

	if _, err := g.Measurements.Append(testContext(), models.Measurement{}); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestCollection_Count(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := g.Users.Count(testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
}

func TestAssignments_Activate_ConditionalUpsert(t *testing.T) {
	db, mock := newMockDB(t, sq.Dollar)
	g := bind(db, db.DB, false)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE SET")+".*"+regexp.QuoteMeta("WHERE vinculos.ativo = $8")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := g.Assignments.Activate(testContext(), models.Assignment{ID: "U|E", UserID: "U", EquipID: "E", Ativo: true})
	if !errors.Is(err, ErrAssignmentActive) {
		t.Fatalf("expected ErrAssignmentActive, got %v", err)
	}
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	err := g.WithTx(testContext(), func(*Gateway) error { return nil })
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	g := bind(db, db.DB, false)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := g.WithTx(testContext(), func(*Gateway) error { return nil })
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestWithTx_RetriesBusySQLite(t *testing.T) {
	db, mock := newMockDB(t, sq.Question)
	db.errorClassificator = NewSQLiteErrorClassifier()
	g := bind(db, db.DB, false)

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM equipamentos").WillReturnError(busy)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM equipamentos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := g.WithTx(testContext(), func(tx *Gateway) error {
		return tx.Equipment.Delete(testContext(), "EQ1")
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"wrapped busy", errors.Join(ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), Retryable},
		{"plain", errors.New("x"), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"not a pg error", errors.New("x"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"client unable to connect", pgError(pgerrcode.SQLClientUnableToEstablishSQLConnection), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"lock not available", pgError(pgerrcode.LockNotAvailable), Retryable},
		{"admin shutdown", pgError(pgerrcode.AdminShutdown), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"query canceled", pgError(pgerrcode.QueryCanceled), NonRetryable},
		{"database dropped", pgError(pgerrcode.DatabaseDropped), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"invalid json payload", pgError(pgerrcode.InvalidTextRepresentation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"internal error", pgError(pgerrcode.InternalError), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
