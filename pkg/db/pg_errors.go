package db

import (
	goerrors "errors"
	"strings"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class for connection exceptions.
const connectionExceptionClass = "08"

// wrapStatementError attaches ConnectionFailed to failures caused by the link
// to the store going away mid-statement and QueryFailed to anything else.
func wrapStatementError(err error) error {
	if isConnectionError(err) {
		return errors.WrapCode(err, ConnectionFailed)
	}
	return errors.WrapCode(err, QueryFailed)
}

func isConnectionError(err error) bool {
	var pgErr *pgconn.PgError
	if goerrors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, connectionExceptionClass)
	}

	var connectErr *pgconn.ConnectError
	if goerrors.As(err, &connectErr) {
		return true
	}

	return pgconn.SafeToRetry(err)
}
