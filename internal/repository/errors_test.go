package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"gorm not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicate key", gorm.ErrDuplicatedKey, ErrDuplicateKey},
		{"gorm fk violation", gorm.ErrForeignKeyViolated, ErrForeignKeyViolated},
		{"pg unique violation", &pgconn.PgError{Code: "23505", Detail: "Key (email) already exists."}, ErrDuplicateKey},
		{"pg fk violation", &pgconn.PgError{Code: "23503", Detail: "Key (employee_id) is not present."}, ErrForeignKeyViolated},
		{"pg invalid text rep", &pgconn.PgError{Code: "22P02", Message: "invalid input value"}, ErrInvalidEnum},
		{"pg serialization failure", &pgconn.PgError{Code: "40001", Message: "could not serialize access"}, ErrTxAborted},
		{"pg deadlock", &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}, ErrTxAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateWrappedDriverError(t *testing.T) {
	inner := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	wrapped := fmt.Errorf("create user: %w", inner)

	got := Translate(wrapped)
	require.ErrorIs(t, got, ErrDuplicateKey)

	var pgErr *pgconn.PgError
	assert.False(t, errors.As(got, &pgErr), "driver detail should not leak through the sentinel")
}

func TestTranslateUnknownErrorUntouched(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, err, Translate(err))
}
