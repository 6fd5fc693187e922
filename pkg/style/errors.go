package style

import "errors"

// Sentinel errors for registry operations. Callers match them with errors.Is.
var (
	// ErrSchemaViolation is returned when a preset definition contains an
	// unrecognized option key or a value of the wrong kind or range.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrDuplicateName is returned when registering a name that already exists.
	ErrDuplicateName = errors.New("preset already registered")

	// ErrNotFound is returned when looking up a name that was never registered.
	ErrNotFound = errors.New("preset not found")
)
