package dwarf

import (
	"encoding/binary"
	"fmt"

	"github.com/binlens/binlens/loader"
)

// sectionSlice is a single DWARF section's bytes, mapped once from the
// owning object file and handed out as Cursors on demand — the same
// load-once, decode-on-demand discipline as elf.Section.Data (spec.md §3
// "DWARF section slice").
type sectionSlice struct {
	kind  loader.SectionKind
	data  []byte
	order binary.ByteOrder
}

func (s sectionSlice) cursor() *Cursor {
	return NewCursor(s.data, s.order)
}

func (s sectionSlice) cursorAt(off uint64) (*Cursor, error) {
	if off > uint64(len(s.data)) {
		return nil, fmt.Errorf("%w: offset %d beyond %s (len %d)", ErrFormat, off, s.kind, len(s.data))
	}
	c := s.cursor()
	c.SetPosition(int(off))
	return c, nil
}
