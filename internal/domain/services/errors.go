package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks writes rejected by a uniqueness or integrity rule.
	ErrConflict = errors.New("conflict")
	// ErrStorageTimeout means the store did not answer within the query timeout.
	// The operation was not applied and may be retried.
	ErrStorageTimeout = errors.New("storage timeout")
	// ErrStorageUnavailable means the store rejected or failed the call.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountPending is returned for accounts not yet approved by an admin.
	ErrAccountPending = errors.New("account pending approval")
)

// ValidationError reports user-correctable input problems, keyed by the
// JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldError builds a ValidationError for a single field.
func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError names the entity and identifier an operation targeted.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DeserializationError marks a stored household whose family member blob
// cannot be decoded. It is attached to that record only.
type DeserializationError struct {
	HouseholdID string
	Err         error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("household %s: family members unreadable: %v", e.HouseholdID, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
