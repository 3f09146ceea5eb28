package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ── Error categories ──
//
// Every error leaving the repository layer matches exactly one of these
// sentinels via errors.Is. Handlers switch on the category, never on driver
// errors.

var (
	ErrOutOfRange       = errors.New("argument out of range")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
	ErrNotFound         = errors.New("not found")
	ErrStore            = errors.New("store failure")
)

// ── RangeError ──

// RangeError an identifier argument outside its valid domain.
type RangeError struct {
	Param   string
	Value   int64
	Message string
}

// NewIDRangeError builds the error returned for non-positive ids.
func NewIDRangeError(entity string, id int64) *RangeError {
	return &RangeError{
		Param:   "id",
		Value:   id,
		Message: fmt.Sprintf("%s ID must be greater than 0.", entity),
	}
}

func (e *RangeError) Error() string        { return e.Message }
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// ── ValidationError ──

// FieldViolation one failed constraint on one field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field violation found on a candidate entity.
type ValidationError struct {
	Violations []FieldViolation
}

// Add records a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// OrNil returns nil when nothing was recorded, so callers can `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// Messages returns the violation messages in the order they were recorded.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Message)
	}
	return out
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Messages(), " ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ── ConflictError ──

// ConflictError a uniqueness scope violation, raised either by the pre-check
// or by a storage constraint. Also used when a delete is blocked by dependents.
type ConflictError struct {
	Entity  string
	Field   string
	Value   string
	Message string
}

func (e *ConflictError) Error() string        { return e.Message }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ── InvalidReferenceError ──

// InvalidReferenceError lists every referenced id that does not resolve.
type InvalidReferenceError struct {
	Entity string
	Field  string
	IDs    []int64
}

func (e *InvalidReferenceError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("Invalid %s reference.", e.Entity)
	}
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("Invalid %s IDs: %s", e.Entity, strings.Join(parts, ", "))
}

func (e *InvalidReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// ── NotFoundError ──

// NotFoundError the addressed record does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found.", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ── StoreError ──

// StoreError any store failure not classified above. The cause is kept for
// logging but never shown to clients.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error        { return e.Err }
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// Store wraps err as a StoreError unless it is nil or already classified.
func Store(op string, err error) error {
	if err == nil || IsClassified(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsClassified reports whether err already belongs to one of the categories.
func IsClassified(err error) bool {
	for _, target := range []error{ErrOutOfRange, ErrValidation, ErrConflict, ErrInvalidReference, ErrNotFound, ErrStore} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
