package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-medlux/internal/logger"
)

// queryer is satisfied by both *sql.DB and *sql.Tx, so a collection can be
// bound to the pool or to an open transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how records of type T map onto one table.
type tableSpec[T any] struct {
	table string
	key   string
	// columns lists every column in scan order, key first.
	columns []string
	// autoKey marks keys assigned by the database. A zero key is left out
	// of inserts, and [Collection.Append] returns the assigned one.
	autoKey bool
	// indexes maps an index name to the column it covers.
	indexes map[string]string

	scan   func(s rowScanner) (T, error)
	values func(rec T) []any
	keyOf  func(rec T) any
}

// insertColumns returns the columns written on insert, aligned with values.
func (s tableSpec[T]) insertColumns() []string {
	if s.autoKey {
		return s.columns[1:]
	}
	return s.columns
}

// insertRow returns the columns and values written for rec. An auto key
// is left to the database only while it is zero.
func (s tableSpec[T]) insertRow(rec T) ([]string, []any) {
	values := s.values(rec)
	if !s.autoKey {
		return s.columns, values
	}
	key := s.keyOf(rec)
	if isZeroKey(key) {
		return s.columns[1:], values
	}
	return s.columns, append([]any{key}, values...)
}

func isZeroKey(key any) bool {
	switch k := key.(type) {
	case nil:
		return true
	case int64:
		return k == 0
	case string:
		return k == ""
	}
	return false
}

// upsertClause builds "ON CONFLICT (key) DO UPDATE SET c = excluded.c, ...".
func (s tableSpec[T]) upsertClause() string {
	sets := make([]string, 0, len(s.columns)-1)
	for _, c := range s.columns {
		if c == s.key {
			continue
		}
		sets = append(sets, c+" = excluded."+c)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", s.key, strings.Join(sets, ", "))
}

// Collection is a typed view of one table. Every method runs a single
// statement, so each call is atomic on its own; group calls with
// [Gateway.WithTx] for multi-step changes.
type Collection[T any] struct {
	spec tableSpec[T]
	q    queryer
	sb   sq.StatementBuilderType
}

func newCollection[T any](spec tableSpec[T], q queryer, sb sq.StatementBuilderType) *Collection[T] {
	return &Collection[T]{spec: spec, q: q, sb: sb}
}

// Name returns the table name.
func (c *Collection[T]) Name() string {
	return c.spec.table
}

// ReadAll returns every record ordered by key.
func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	query, args, err := c.sb.Select(c.spec.columns...).
		From(c.spec.table).
		OrderBy(c.spec.key).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.list(ctx, "Collection.ReadAll", query, args...)
}

// Get returns the record stored under key or [ErrNotFound].
func (c *Collection[T]) Get(ctx context.Context, key any) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := c.sb.Select(c.spec.columns...).
		From(c.spec.table).
		Where(sq.Eq{c.spec.key: key}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := c.spec.scan(c.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "Collection.Get").
			Str("table", c.spec.table).
			Msg("error scanning record")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// Put writes rec, replacing any record with the same key. On tables with
// a database-assigned key a zero key inserts a new record.
func (c *Collection[T]) Put(ctx context.Context, rec T) error {
	columns, values := c.spec.insertRow(rec)
	query, args, err := c.sb.Insert(c.spec.table).
		Columns(columns...).
		Values(values...).
		Suffix(c.spec.upsertClause()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = c.exec(ctx, "Collection.Put", query, args...)
	return err
}

// Insert writes rec only if no record with the same key exists.
// The existence check and the write are one statement, so concurrent
// inserts of the same key cannot both succeed. A taken key yields
// [ErrDuplicateKey].
func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	columns, values := c.spec.insertRow(rec)
	query, args, err := c.sb.Insert(c.spec.table).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := c.exec(ctx, "Collection.Insert", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "Collection.Insert").
			Str("table", c.spec.table).
			Interface("key", c.spec.keyOf(rec)).
			Msg("key already taken")
		return ErrDuplicateKey
	}
	return nil
}

// Append inserts rec into a table with a database-assigned key and returns
// the new key.
func (c *Collection[T]) Append(ctx context.Context, rec T) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.sb.Insert(c.spec.table).
		Columns(c.spec.insertColumns()...).
		Values(c.spec.values(rec)...).
		Suffix("RETURNING " + c.spec.key).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = c.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "Collection.Append").
			Str("table", c.spec.table).
			Msg("error appending record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Delete removes the record stored under key or returns [ErrNotFound].
func (c *Collection[T]) Delete(ctx context.Context, key any) error {
	query, args, err := c.sb.Delete(c.spec.table).
		Where(sq.Eq{c.spec.key: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := c.exec(ctx, "Collection.Delete", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// QueryByIndex returns the records whose indexed column equals value,
// ordered by key. An index the collection does not declare yields
// [ErrUnknownIndex].
func (c *Collection[T]) QueryByIndex(ctx context.Context, index string, value any) ([]T, error) {
	column, ok := c.spec.indexes[index]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, c.spec.table, index)
	}

	query, args, err := c.sb.Select(c.spec.columns...).
		From(c.spec.table).
		Where(sq.Eq{column: value}).
		OrderBy(c.spec.key).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.list(ctx, "Collection.QueryByIndex", query, args...)
}

// Count returns the number of records.
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	query, args, err := c.sb.Select("COUNT(*)").From(c.spec.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = c.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (c *Collection[T]) list(ctx context.Context, fn, query string, args ...any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("table", c.spec.table).
			Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		rec, err := c.spec.scan(rows)
		if err != nil {
			log.Err(err).
				Str("func", fn).
				Str("table", c.spec.table).
				Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (c *Collection[T]) exec(ctx context.Context, fn, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("table", c.spec.table).
			Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}
