package models

import "fmt"

// NotFoundError reports that a referenced document does not resolve.
// Surfaced as a 404; never retried.
type NotFoundError struct {
	Resource string // "volunteer", "opportunity", "organization"
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NewNotFoundError creates a NotFoundError for a resource and lookup key
func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// ConflictError reports a duplicate unique key or duplicate attachment.
// Surfaced as a 400; never retried.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

// NewConflictError creates a ConflictError for a resource with a reason
func NewConflictError(resource, reason string) *ConflictError {
	return &ConflictError{Resource: resource, Reason: reason}
}
