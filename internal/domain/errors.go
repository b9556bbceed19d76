package domain

import "fmt"

// ValidationError rejects a write whose payload is malformed or out of range.
// Field names the offending payload field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFound reports that no record of the given entity type has the given id.
type NotFound struct {
	Entity string
	ID     string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DataUnavailable reports that the record store could not be reached. The
// reporting service returns it instead of partial results.
type DataUnavailable struct {
	Cause error
}

func (e *DataUnavailable) Error() string {
	return fmt.Sprintf("record store unavailable: %v", e.Cause)
}

func (e *DataUnavailable) Unwrap() error {
	return e.Cause
}

// Immutable rejects a destructive write to a collection the deployment treats
// as append-only history.
type Immutable struct {
	Entity string
}

func (e *Immutable) Error() string {
	return fmt.Sprintf("%s are append-only in this deployment", e.Entity)
}
