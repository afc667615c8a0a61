package domain

import "errors"

// ErrNotFound is returned when a lookup by id or exact-match field has no
// result. The HTTP boundary maps it to 404.
var ErrNotFound = errors.New("entity not found")

// ValidationError is a field-level constraint failure detected before any
// write. Maps to 400.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError is a uniqueness violation reported by the storage layer.
// The message keeps the storage error text so callers can pattern-match on
// the "unique" hint. Maps to 400.
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }
func Conflict(msg string) error   { return &ConflictError{Msg: msg} }
