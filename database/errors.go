package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with an existing one")
	ErrInvalid  = errors.New("record is invalid")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ClassifyError maps driver and gorm errors onto ErrNotFound / ErrConflict,
// keeping the original error in the chain.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalid) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNotFound, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrConflict, err)
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errors.Join(ErrInvalid, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errors.Join(ErrConflict, err)
		case foreignKeyViolation:
			return errors.Join(ErrInvalid, err)
		}
	}

	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return errors.Join(ErrConflict, err)
	}

	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return errors.Join(ErrInvalid, err)
	}

	return err
}
