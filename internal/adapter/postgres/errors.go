package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// Postgres error codes the repositories translate.
const (
	CodeUniqueViolation          = "23505"
	CodeForeignKeyViolation      = "23503"
	CodeCheckViolation           = "23514"
	CodeCharacterNotInRepertoire = "22021"
	CodeUntranslatableCharacter  = "22P05"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are not mapped; they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	switch PgErrorCode(err) {
	case CodeUniqueViolation:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	case CodeForeignKeyViolation:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case CodeCheckViolation, CodeCharacterNotInRepertoire, CodeUntranslatableCharacter:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// MapInputError reports text the database refused to encode as
// domain.ErrValidation and returns any other error unchanged.
func MapInputError(err error) error {
	switch PgErrorCode(err) {
	case CodeCharacterNotInRepertoire, CodeUntranslatableCharacter:
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return err
}

// PgErrorCode returns the SQLSTATE of err, or "" if err is not a *pgconn.PgError.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
