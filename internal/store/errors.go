package store

import "errors"

// Sentinel errors returned by collection methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a record addressed by its primary key
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned by create-only inserts when a record with
	// the same primary key already exists.
	ErrDuplicateKey = errors.New("record with the same key already exists")

	// ErrAssignmentActive is returned when activating an assignment whose
	// record is already active.
	ErrAssignmentActive = errors.New("assignment is already active")

	// ErrUnknownIndex is returned when a collection is queried by an index
	// it does not declare.
	ErrUnknownIndex = errors.New("unknown index")

	// ErrNilDB is returned when a gateway is built over a nil connection.
	ErrNilDB = errors.New("db is nil")
)

// Low-level database operation errors. These are returned (or wrapped) by
// collection methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [Open] for a driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
