// Package apperror defines the tagged error kinds shared by every data-access
// and transaction operation. Callers branch on kind (errors.Is / errors.As)
// instead of parsing pre-formatted messages; the message is still shaped for
// direct display in the UI.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// NotInitialized: the store never opened; operations degrade, never crash.
	NotInitialized Kind = iota
	// ConstraintViolation: duplicate codigo (SKU) or username.
	ConstraintViolation
	// NotFound: a referenced row does not exist.
	NotFound
	// InsufficientStock: a sale line requests more units than are available.
	InsufficientStock
	// StorageError: unexpected fault in the underlying store.
	StorageError
)

func (k Kind) String() string {
	switch k {
	case NotInitialized:
		return "not_initialized"
	case ConstraintViolation:
		return "constraint_violation"
	case NotFound:
		return "not_found"
	case InsufficientStock:
		return "insufficient_stock"
	default:
		return "storage_error"
	}
}

// Error is the canonical failure envelope.
type Error struct {
	Kind    Kind
	Message string
	// Wrapped keeps the underlying storage error for logs; nil for pure
	// domain failures.
	Wrapped error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Wrapped }

// Is matches two *Error values by Kind, so sentinel-style comparisons like
// errors.Is(err, apperror.ErrNotInitialized) work regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// ErrNotInitialized is the shared not-initialized failure.
var ErrNotInitialized = &Error{Kind: NotInitialized, Message: "La base de datos no está inicializada."}

// NewConstraint builds a ConstraintViolation for the given entity field.
func NewConstraint(msg string, wrapped error) *Error {
	return &Error{Kind: ConstraintViolation, Message: msg, Wrapped: wrapped}
}

// NewStorage wraps an unexpected store fault, surfacing the raw message.
func NewStorage(err error) *Error {
	return &Error{Kind: StorageError, Message: err.Error(), Wrapped: err}
}

// ProductoNotFound reports a missing product referenced by id.
type ProductoNotFound struct {
	ProductoID uint
}

func (e *ProductoNotFound) Error() string {
	return fmt.Sprintf("Producto %d no encontrado.", e.ProductoID)
}

// Is makes the type match the NotFound kind.
func (e *ProductoNotFound) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Kind == NotFound
}

// StockInsuficiente carries the offending product and the requested versus
// available quantities so callers can render their own message.
type StockInsuficiente struct {
	ProductoID uint
	Nombre     string
	Solicitado int
	Disponible int
}

func (e *StockInsuficiente) Error() string {
	return fmt.Sprintf("Stock insuficiente para %q: solicitado %d, disponible %d.",
		e.Nombre, e.Solicitado, e.Disponible)
}

func (e *StockInsuficiente) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Kind == InsufficientStock
}

// Convenience sentinels for errors.Is against the typed failures above.
var (
	ErrNotFound          = &Error{Kind: NotFound, Message: "no encontrado"}
	ErrInsufficientStock = &Error{Kind: InsufficientStock, Message: "stock insuficiente"}
	ErrConstraint        = &Error{Kind: ConstraintViolation, Message: "ya existe"}
)
