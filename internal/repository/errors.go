package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Storage error taxonomy. Every repository method funnels driver errors
// through Translate so callers can branch on these sentinels with errors.Is
// instead of matching SQLSTATE strings.
var (
	// ErrNotFound: lookup by id/email/etc. matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey: a unique constraint (user email, employee user_id) rejected the write.
	ErrDuplicateKey = errors.New("unique constraint violated")
	// ErrForeignKeyViolated: a referenced parent row does not exist, or a
	// delete would orphan dependent rows.
	ErrForeignKeyViolated = errors.New("foreign key constraint violated")
	// ErrInvalidEnum: a supplied value is outside its declared closed set.
	ErrInvalidEnum = errors.New("value outside enum domain")
	// ErrTxAborted: the store rolled back a multi-row write; retry the whole
	// logical operation, never attempt partial repair.
	ErrTxAborted = errors.New("transaction aborted")
)

// Postgres SQLSTATE codes of interest.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidEnumInput    = "22P02"
)

// Translate maps gorm and Postgres driver errors onto the package
// sentinels. Driver detail is kept in the message only; callers branch on
// the sentinel.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrForeignKeyViolated, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.Detail)
		case pgErr.Code == pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolated, pgErr.Detail)
		case pgErr.Code == pgInvalidEnumInput:
			return fmt.Errorf("%w: %s", ErrInvalidEnum, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "40"): // transaction rollback class
			return fmt.Errorf("%w: %s", ErrTxAborted, pgErr.Message)
		}
	}

	return err
}
