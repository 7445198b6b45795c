package netdef

import "errors"

// Sentinel errors for definition parsing. Match with errors.Is; both wrap
// the underlying yaml/validator detail via %w at the call site.
var (
	// ErrUnreadable indicates the YAML could not be decoded at all.
	ErrUnreadable = errors.New("netdef: unreadable definition")

	// ErrInvalidDefinition indicates decoded YAML that violates the
	// field-level constraints (missing endpoints, non-positive physical
	// quantities, loops with fewer than three pipes, …).
	ErrInvalidDefinition = errors.New("netdef: invalid definition")
)
