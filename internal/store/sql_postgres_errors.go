package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
// A suite transaction is re-run when the server lost it rather than
// refused it: a dropped connection, a serialization failure or deadlock
// between two admins editing the same assignment, a lock that was not
// granted, or a server that is restarting. Constraint and data errors
// are final; the services turn them into user messages.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not wrap a
// *pgconn.PgError are never retried.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return classifyPgCode(pgErr.Code)
}

// classifyPgCode maps a SQLSTATE to a classification. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPgCode(code string) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(code), // 08
		pgerrcode.IsTransactionRollback(code): // 40
		return Retryable
	case code == pgerrcode.LockNotAvailable:
		return Retryable
	}

	if pgerrcode.IsOperatorIntervention(code) { // 57
		switch code {
		// a cancelled request or a dropped database will not recover
		case pgerrcode.QueryCanceled, pgerrcode.DatabaseDropped:
			return NonRetryable
		}
		return Retryable
	}

	return NonRetryable
}
