package models

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single field-tagged validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every violation found, not just the first.
// Callers re-render the form with the messages; nothing was persisted.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// FieldMessages returns the messages keyed by field name.
func (e *ValidationError) FieldMessages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// DuplicateVoteError means the voter already has a vote row for this
// (election, village). The existing row is untouched.
type DuplicateVoteError struct {
	MaskedMobile string
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("voter %s has already voted in this election for this village", e.MaskedMobile)
}

// NotFoundError means a referenced entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// StorageConstraintError is an unexpected constraint violation other than the
// known duplicate-vote case. Logged and surfaced as a generic failure.
type StorageConstraintError struct {
	Op      string
	Details error
}

func (e *StorageConstraintError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("storage constraint violated during %s: %v", e.Op, e.Details)
	}
	return fmt.Sprintf("storage constraint violated during %s", e.Op)
}

func (e *StorageConstraintError) Unwrap() error {
	return e.Details
}

// Helpers for callers that only care about the error kind.

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsDuplicateVote(err error) bool {
	var de *DuplicateVoteError
	return errors.As(err, &de)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
