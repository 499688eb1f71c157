package prisma

import (
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// Error is the error type returned by every client operation. Code is the
// Prisma error code (P2025, P2002, ...), Kind its class.
type Error = errors.PrismaError

type ErrorKind = errors.Kind

const (
	KindKnownRequest   = errors.KindKnownRequest
	KindUnknownRequest = errors.KindUnknownRequest
	KindInitialization = errors.KindInitialization
	KindValidation     = errors.KindValidation
)

// Sentinels for errors.Is. Matching compares codes, so ErrNotFound matches
// every not-found error whatever its message.
var (
	ErrNotFound             = errors.ErrNotFound
	ErrUniqueConstraint     = errors.ErrUniqueConstraint
	ErrForeignKeyConstraint = errors.ErrForeignKeyConstraint
	ErrNullConstraint       = errors.ErrNullConstraint
	ErrRawQueryFailed       = errors.ErrRawQueryFailed
	ErrTimeout              = errors.ErrTimeout
	ErrConnectionFailed     = errors.ErrConnectionFailed
	ErrNotConnected         = errors.ErrNotConnected
	ErrInvalidDatasource    = errors.ErrInvalidDatasource
	ErrValidation           = errors.ErrValidation
)

func IsNotFound(err error) bool             { return errors.IsNotFound(err) }
func IsUniqueConstraint(err error) bool     { return errors.IsUniqueConstraint(err) }
func IsForeignKeyConstraint(err error) bool { return errors.IsForeignKeyConstraint(err) }
func IsValidation(err error) bool           { return errors.IsValidation(err) }
func IsTimeout(err error) bool              { return errors.IsTimeout(err) }

// KindOf returns the class of err.
func KindOf(err error) ErrorKind { return errors.KindOf(err) }
