package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ProductionMode = os.Getenv("ENV") == "production" || os.Getenv("ENV") == "prod"

// Kind groups error codes the way callers handle them.
type Kind int

const (
	// KindKnownRequest is a request that reached the database and failed for a known reason
	// (not found, constraint violation).
	KindKnownRequest Kind = iota
	// KindUnknownRequest is an opaque driver failure.
	KindUnknownRequest
	// KindInitialization is a connection or configuration failure.
	KindInitialization
	// KindValidation is a malformed call rejected before reaching the database.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindKnownRequest:
		return "KnownRequestError"
	case KindUnknownRequest:
		return "UnknownRequestError"
	case KindInitialization:
		return "InitializationError"
	case KindValidation:
		return "ValidationError"
	}
	return "Error"
}

type PrismaError struct {
	Code    string
	Message string
	Kind    Kind
	// Meta carries structured details, e.g. "target" for unique violations or "modelName" for not found.
	Meta  map[string]any
	cause error
}

func (e *PrismaError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

func (e *PrismaError) Unwrap() error {
	return e.cause
}

func (e *PrismaError) Is(target error) bool {
	if t, ok := target.(*PrismaError); ok {
		return e.Code == t.Code && e.Kind == t.Kind
	}
	return false
}

var (
	ErrNotFound             = &PrismaError{Code: "P2025", Message: "Record not found"}
	ErrUniqueConstraint     = &PrismaError{Code: "P2002", Message: "Unique constraint violation"}
	ErrForeignKeyConstraint = &PrismaError{Code: "P2003", Message: "Foreign key constraint violation"}
	ErrNullConstraint       = &PrismaError{Code: "P2011", Message: "Not null constraint violation"}
	ErrValueTooLong         = &PrismaError{Code: "P2000", Message: "Value too long for column"}
	ErrRawQueryFailed       = &PrismaError{Code: "P2010", Message: "Raw query failed"}
	ErrValueOutOfRange      = &PrismaError{Code: "P2020", Message: "Value out of range"}
	ErrTableNotFound        = &PrismaError{Code: "P2021", Message: "Table does not exist"}
	ErrColumnNotFound       = &PrismaError{Code: "P2022", Message: "Column not found"}
	ErrDeadlock             = &PrismaError{Code: "P2034", Message: "Transaction write conflict or deadlock"}
	ErrTimeout              = &PrismaError{Code: "P1008", Message: "Operation timeout"}

	ErrUnknownRequest = &PrismaError{Code: "", Message: "Unknown request error", Kind: KindUnknownRequest}

	ErrAuthenticationFailed = &PrismaError{Code: "P1000", Message: "Authentication failed", Kind: KindInitialization}
	ErrConnectionFailed     = &PrismaError{Code: "P1001", Message: "Database not reachable", Kind: KindInitialization}
	ErrDatabaseNotFound     = &PrismaError{Code: "P1003", Message: "Database does not exist", Kind: KindInitialization}
	ErrNotConnected         = &PrismaError{Code: "P1017", Message: "Client is not connected", Kind: KindInitialization}
	ErrInvalidDatasource    = &PrismaError{Code: "P1012", Message: "Invalid datasource configuration", Kind: KindInitialization}

	ErrValidation  = &PrismaError{Code: "P2009", Message: "Validation error", Kind: KindValidation}
	ErrTooManyRows = &PrismaError{Code: "P2009", Message: "Result set too large", Kind: KindValidation}
)

type OperationType string

const (
	OpFindMany   OperationType = "findMany"
	OpFindFirst  OperationType = "findFirst"
	OpFindUnique OperationType = "findUnique"
	OpCreate     OperationType = "create"
	OpCreateMany OperationType = "createMany"
	OpUpdate     OperationType = "update"
	OpUpdateMany OperationType = "updateMany"
	OpUpsert     OperationType = "upsert"
	OpDelete     OperationType = "delete"
	OpDeleteMany OperationType = "deleteMany"
	OpCount      OperationType = "count"
	OpAggregate  OperationType = "aggregate"
	OpGroupBy    OperationType = "groupBy"
	OpQueryRaw   OperationType = "queryRaw"
	OpExecuteRaw OperationType = "executeRaw"
)

func WrapPrismaError(sentinel *PrismaError, cause error) *PrismaError {
	return &PrismaError{Code: sentinel.Code, Message: sentinel.Message, Kind: sentinel.Kind, cause: cause}
}

func withMeta(e *PrismaError, meta map[string]any) *PrismaError {
	e.Meta = meta
	return e
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueConstraint(err error) bool {
	return errors.Is(err, ErrUniqueConstraint)
}

func IsForeignKeyConstraint(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}

func IsNullConstraint(err error) bool {
	return errors.Is(err, ErrNullConstraint)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

func IsConnectionFailed(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// KindOf reports the kind of the first PrismaError in err's chain.
// Errors that never went through this package are unknown request errors.
func KindOf(err error) Kind {
	var pe *PrismaError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknownRequest
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// SQLSTATE and MySQL error numbers for the classes the client distinguishes.
var (
	pgCodes = map[string]*PrismaError{
		"23505": ErrUniqueConstraint,
		"23503": ErrForeignKeyConstraint,
		"23502": ErrNullConstraint,
		"22001": ErrValueTooLong,
		"22003": ErrValueOutOfRange,
		"42P01": ErrTableNotFound,
		"42703": ErrColumnNotFound,
		"40P01": ErrDeadlock,
		"40001": ErrDeadlock,
		"28P01": ErrAuthenticationFailed,
		"3D000": ErrDatabaseNotFound,
	}
	mysqlCodes = map[uint16]*PrismaError{
		1062: ErrUniqueConstraint,
		1451: ErrForeignKeyConstraint,
		1452: ErrForeignKeyConstraint,
		1048: ErrNullConstraint,
		1406: ErrValueTooLong,
		1264: ErrValueOutOfRange,
		1146: ErrTableNotFound,
		1054: ErrColumnNotFound,
		1213: ErrDeadlock,
		1045: ErrAuthenticationFailed,
		1049: ErrDatabaseNotFound,
	}
	sqliteUniqueTarget = regexp.MustCompile(`UNIQUE constraint failed: (.+)$`)
	mysqlUniqueTarget  = regexp.MustCompile(`for key '([^']+)'`)
)

// MapDriverError classifies a driver error into a PrismaError. No-rows errors map to nil for
// list operations and to ErrNotFound otherwise.
func MapDriverError(err error, op OperationType) error {
	if err == nil {
		return nil
	}

	var pe *PrismaError
	if errors.As(err, &pe) {
		return err
	}

	if isNoRows(err) {
		switch op {
		case OpFindMany, OpQueryRaw:
			return nil
		default:
			return WrapPrismaError(ErrNotFound, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodes[pgErr.Code]; ok {
			mapped := WrapPrismaError(sentinel, err)
			if sentinel == ErrUniqueConstraint || sentinel == ErrForeignKeyConstraint {
				return withMeta(mapped, map[string]any{"target": pgErr.ConstraintName})
			}
			return mapped
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if sentinel, ok := mysqlCodes[myErr.Number]; ok {
			mapped := WrapPrismaError(sentinel, err)
			if m := mysqlUniqueTarget.FindStringSubmatch(myErr.Message); m != nil && sentinel == ErrUniqueConstraint {
				return withMeta(mapped, map[string]any{"target": m[1]})
			}
			return mapped
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "unique constraint") || strings.Contains(lower, "duplicate key") ||
		strings.Contains(lower, "duplicate entry"):
		mapped := WrapPrismaError(ErrUniqueConstraint, err)
		if m := sqliteUniqueTarget.FindStringSubmatch(msg); m != nil {
			return withMeta(mapped, map[string]any{"target": splitTarget(m[1])})
		}
		return mapped
	case strings.Contains(lower, "foreign key constraint"):
		return WrapPrismaError(ErrForeignKeyConstraint, err)
	case strings.Contains(lower, "not null constraint") || strings.Contains(lower, "not-null constraint"):
		return WrapPrismaError(ErrNullConstraint, err)
	case strings.Contains(lower, "no such table"):
		return WrapPrismaError(ErrTableNotFound, err)
	case strings.Contains(lower, "no such column"):
		return WrapPrismaError(ErrColumnNotFound, err)
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "timed out"):
		return WrapPrismaError(ErrTimeout, err)
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "no such host") || strings.Contains(lower, "network is unreachable"):
		return WrapPrismaError(ErrConnectionFailed, err)
	}

	if op == OpQueryRaw || op == OpExecuteRaw {
		return WrapPrismaError(ErrRawQueryFailed, err)
	}
	return WrapPrismaError(ErrUnknownRequest, err)
}

// splitTarget turns "users.email, users.name" into the column list.
func splitTarget(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if i := strings.LastIndex(p, "."); i >= 0 {
			p = p[i+1:]
		}
		out = append(out, p)
	}
	return out
}

func SanitizeError(err error) error {
	if err == nil {
		return nil
	}

	if !ProductionMode {
		return err
	}

	var pe *PrismaError
	if errors.As(err, &pe) {
		return &PrismaError{Code: pe.Code, Message: pe.Message, Kind: pe.Kind, Meta: pe.Meta}
	}

	errMsg := err.Error()
	for _, pattern := range []string{"table", "relation", "column", "field", "select", "insert", "update",
		"delete", "where", "sql", "syntax", "constraint"} {
		if strings.Contains(strings.ToLower(errMsg), pattern) {
			return fmt.Errorf("database operation failed")
		}
	}
	return fmt.Errorf("%s", errMsg)
}

// NewValidationError builds a validation error for a malformed argument.
func NewValidationError(format string, args ...any) error {
	return &PrismaError{Code: ErrValidation.Code, Message: fmt.Sprintf(format, args...), Kind: KindValidation}
}

// NewNotFoundError reports that no record of model matched the operation.
func NewNotFoundError(model string, op OperationType) error {
	e := &PrismaError{
		Code:    ErrNotFound.Code,
		Message: fmt.Sprintf("No %s found", model),
		Meta:    map[string]any{"modelName": model, "operation": string(op)},
	}
	if ProductionMode {
		e.Message = ErrNotFound.Message
	}
	return e
}

// NewInitializationError wraps a connection or configuration failure.
func NewInitializationError(cause error) error {
	if cause == nil {
		return nil
	}
	var pe *PrismaError
	if errors.As(cause, &pe) && pe.Kind == KindInitialization {
		return cause
	}
	mapped := MapDriverError(cause, "")
	if errors.As(mapped, &pe) && pe.Kind == KindInitialization {
		return mapped
	}
	return WrapPrismaError(ErrConnectionFailed, cause)
}
