package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "orders_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("syntax error")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestTranslateError(t *testing.T) {
	refused := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	assert.ErrorIs(t, translateError(refused), repository.ErrStoreUnavailable)
	assert.ErrorIs(t, translateError(refused), refused)

	deadline := errors.Wrap(context.DeadlineExceeded, "failed to commit transaction")
	assert.ErrorIs(t, translateError(deadline), repository.ErrStoreUnavailable)

	plain := errors.New("check constraint violated")
	assert.Equal(t, plain, translateError(plain))
	assert.NoError(t, translateError(nil))
}
