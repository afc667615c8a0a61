package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"otigox-task/internal/domain"
)

// isDupKey avoids depending on driver error types; the text check works
// for both mysql and postgres.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

// dupErr translates a duplicate-key failure on save into a ConflictError.
// Uniqueness is never pre-checked in application code; the index is the
// single source of truth.
func dupErr(err error, field string) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return domain.Conflict(field + " must be unique: " + err.Error())
	}
	return err
}
