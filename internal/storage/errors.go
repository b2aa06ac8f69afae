// Package storage defines the error taxonomy shared by all entity stores.
package storage

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
)

var (
	// ErrNotInitialized is returned when a store is used before the
	// database has been opened and provisioned.
	ErrNotInitialized = errors.New("storage not initialized")

	// ErrNotFound is a normal lookup miss, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrConstraint covers foreign-key and primary-key violations, e.g. a
	// transaction referencing an unknown customer.
	ErrConstraint = errors.New("constraint violation")

	// ErrInvalidArgument covers negative amounts and empty required fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable means the underlying database could not be opened or
	// provisioned. Fatal at process start.
	ErrUnavailable = errors.New("storage unavailable")
)

// SQLITE_CONSTRAINT; extended constraint codes carry it in the low byte.
const sqliteConstraint = 19

// Classify maps driver-level failures onto the taxonomy above. Errors that
// are not constraint violations pass through unchanged so callers can wrap
// them with context.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) && serr.Code()&0xff == sqliteConstraint {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}

	return err
}
