package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDriverError_NoRows(t *testing.T) {
	assert.NoError(t, MapDriverError(sql.ErrNoRows, OpFindMany))

	err := MapDriverError(sql.ErrNoRows, OpFindUnique)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, KindKnownRequest, KindOf(err))
}

func TestMapDriverError_Postgres(t *testing.T) {
	err := MapDriverError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, OpCreate)
	require.True(t, IsUniqueConstraint(err))

	var pe *PrismaError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "P2002", pe.Code)
	assert.Equal(t, "users_email_key", pe.Meta["target"])

	err = MapDriverError(&pgconn.PgError{Code: "23503"}, OpDelete)
	assert.True(t, IsForeignKeyConstraint(err))
}

func TestMapDriverError_MySQL(t *testing.T) {
	err := MapDriverError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'users.email'"}, OpCreate)
	require.True(t, IsUniqueConstraint(err))

	var pe *PrismaError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "users.email", pe.Meta["target"])

	assert.True(t, IsForeignKeyConstraint(MapDriverError(&mysql.MySQLError{Number: 1452}, OpCreate)))
}

func TestMapDriverError_SQLiteMessages(t *testing.T) {
	err := MapDriverError(fmt.Errorf("constraint failed: UNIQUE constraint failed: proposals.project_id, proposals.freelancer_id"), OpCreate)
	require.True(t, IsUniqueConstraint(err))

	var pe *PrismaError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{"project_id", "freelancer_id"}, pe.Meta["target"])

	assert.True(t, IsForeignKeyConstraint(MapDriverError(fmt.Errorf("FOREIGN KEY constraint failed"), OpCreate)))
	assert.True(t, IsNullConstraint(MapDriverError(fmt.Errorf("NOT NULL constraint failed: users.name"), OpCreate)))
}

func TestMapDriverError_Connection(t *testing.T) {
	assert.True(t, IsTimeout(MapDriverError(context.DeadlineExceeded, OpFindMany)))
	assert.True(t, IsConnectionFailed(MapDriverError(fmt.Errorf("dial tcp 127.0.0.1:5432: connect: connection refused"), OpFindMany)))
}

func TestMapDriverError_Unknown(t *testing.T) {
	err := MapDriverError(fmt.Errorf("something odd"), OpFindMany)
	assert.Equal(t, KindUnknownRequest, KindOf(err))

	err = MapDriverError(fmt.Errorf("syntax error near FROM"), OpQueryRaw)
	assert.True(t, errors.Is(err, ErrRawQueryFailed))
}

func TestMapDriverError_KeepsPrismaErrors(t *testing.T) {
	orig := NewValidationError("bad %s", "input")
	assert.Same(t, orig, MapDriverError(orig, OpCreate))
}

func TestValidationAndNotFound(t *testing.T) {
	err := NewValidationError("take requires orderBy")
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "take requires orderBy")

	nf := NewNotFoundError("User", OpFindUnique)
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
}

func TestNewInitializationError(t *testing.T) {
	err := NewInitializationError(fmt.Errorf("dial tcp: connection refused"))
	assert.Equal(t, KindInitialization, KindOf(err))
	assert.True(t, IsConnectionFailed(err))

	assert.NoError(t, NewInitializationError(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KnownRequestError", KindKnownRequest.String())
	assert.Equal(t, "ValidationError", KindValidation.String())
}
