package elf

import (
	"bytes"
	"fmt"
)

// StringTable is a projection of an SHT_STRTAB section: a flat byte blob
// addressed by offset, each entry NUL-terminated. Grounded on the
// teacher's bytes.TrimRight(buf, "\x00") idiom in filesystem/detect.go,
// generalized from "trim a fixed-size buffer" to "bounds-checked scan of a
// variable-length table."
type StringTable struct {
	data []byte
}

// String returns the NUL-terminated string starting at off, raising
// ErrRange if off is outside the table, or ErrFormat if the string runs
// off the end without a terminator (spec.md §7 RangeError / "unterminated
// string").
func (t StringTable) String(off uint32) (string, error) {
	if uint64(off) >= uint64(len(t.data)) {
		return "", fmt.Errorf("elf: strtab offset %d: %w", off, ErrRange)
	}
	rest := t.data[off:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return "", fmt.Errorf("elf: strtab offset %d: unterminated string: %w", off, ErrFormat)
	}
	return string(rest[:end]), nil
}
