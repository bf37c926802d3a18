package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_bookings_slot"}

	assert.True(t, IsDuplicateKeyError(dup, "slot"))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("insert: %w", dup), "SLOT"))
	assert.False(t, IsDuplicateKeyError(dup, "email"))
	assert.False(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "uq_bookings_slot"}, "slot"))
	assert.False(t, IsDuplicateKeyError(errors.New("boom"), "slot"))
}
