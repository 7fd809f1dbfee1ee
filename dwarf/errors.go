package dwarf

import "errors"

// Error taxonomy per spec.md §7. Callers match with errors.Is; wrapped
// errors carry the offending offset/tag/attribute in their message.
var (
	// ErrFormat covers any malformed-stream condition: truncated section,
	// bad initial-length, unterminated string, corrupt abbreviation code.
	ErrFormat = errors.New("dwarf: malformed data")

	// ErrValueType is raised when a Value accessor is called against a
	// form whose decoded Go type doesn't match (spec.md §7
	// ValueTypeMismatch).
	ErrValueType = errors.New("dwarf: value type mismatch")

	// ErrKey is raised by DIE attribute lookups that miss by name
	// (spec.md §7 KeyError) — unlike elf.File's section lookups, which
	// return an invalid sentinel Section on a miss.
	ErrKey = errors.New("dwarf: attribute not present")

	// ErrNotImplemented marks a spec.md non-goal reached at runtime: a
	// form this package does not decode (DWARF5 forms among them) and
	// DW_FORM_ref_sig8 resolution.
	ErrNotImplemented = errors.New("dwarf: not implemented")
)
