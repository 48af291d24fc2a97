package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
	ErrDeadline       = errors.New("deadline exceeded")
	ErrCanceled       = errors.New("context canceled")
	ErrLayerNotFound  = errors.New("layer not found")
	ErrTableMissing   = errors.New("relation does not exist")
	ErrSpatialQuery   = errors.New("spatial query failed")
	ErrLLMUnavailable = errors.New("llm service unavailable")
	ErrLLMMalformed   = errors.New("llm response malformed")
)

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01":
			return fmt.Errorf("%s: %q: %w", op, pgErr.Message, ErrTableMissing)
		case "23503", "23514", "22023":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		case "XX000":
			// PostGIS reports semantically invalid spatial operations
			// (mixed SRIDs, broken geometries) as internal errors.
			return fmt.Errorf("%s: %q: %w", op, pgErr.Message, ErrSpatialQuery)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
