package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "products_pkey"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("crear producto: %w", dup)), "detecta el error envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "otra violación de constraint no es duplicado")
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}
