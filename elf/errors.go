package elf

import "errors"

// ErrFormat marks a malformed ELF file: bad magic, unsupported class or
// endianness, or any structural inconsistency (spec.md §7 FormatError).
var ErrFormat = errors.New("malformed ELF file")

// ErrSectionType is raised when a section-type-specific projection
// (AsStrTab, AsSymTab) is invoked on a section of the wrong sh_type
// (spec.md §7 SectionTypeMismatch).
var ErrSectionType = errors.New("section type mismatch")

// ErrRange is raised when a string-table offset falls outside the table.
var ErrRange = errors.New("offset out of range")
