package db

import (
	"context"
	goerrors "errors"
	"reflect"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/jackc/pgx/v5"
)

var timeType = reflect.TypeFor[time.Time]()

func QueryOne[T any](
	ctx context.Context, conn Connection, sql string, arguments ...any,
) (T, error) {
	var out T

	rows, err := conn.Query(ctx, sql, arguments...)
	if err != nil {
		return out, err
	}

	out, err = pgx.CollectOneRow(rows, rowMapper[T]())
	if err != nil {
		if goerrors.Is(err, pgx.ErrNoRows) {
			return out, errors.NewCode(NoMatchingRows)
		}
		return out, wrapStatementError(err)
	}

	return out, nil
}

// QueryAll never returns a nil slice on success.
func QueryAll[T any](
	ctx context.Context, conn Connection, sql string, arguments ...any,
) ([]T, error) {
	rows, err := conn.Query(ctx, sql, arguments...)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, rowMapper[T]())
	if err != nil {
		return nil, wrapStatementError(err)
	}

	if out == nil {
		out = []T{}
	}

	return out, nil
}

func rowMapper[T any]() pgx.RowToFunc[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Struct && t != timeType {
		return pgx.RowToStructByName[T]
	}

	return pgx.RowTo[T]
}
