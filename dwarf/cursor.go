package dwarf

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/binlens/binlens/internal/leb128"
	"golang.org/x/exp/constraints"
)

// Format distinguishes 32- from 64-bit DWARF, which governs the width of
// every section-relative offset (spec.md §3 "format ∈ {unknown, dwarf32,
// dwarf64} (governs offset widths)").
type Format uint8

const (
	FormatUnknown Format = iota
	Format32
	Format64
)

// dwarf64Marker is the DWARF32 initial-length escape value: a leading
// 0xffffffff word means "this is actually DWARF64, read 8 more bytes for
// the real length."
const dwarf64Marker = 0xffffffff

// reservedLengthLo/Hi bound the initial-length values DWARF reserves and
// never uses for an actual length (spec.md §8 "DWARF32 initial-length
// 0xfffffff0…0xfffffffe must raise FormatError").
const (
	reservedLengthLo = 0xfffffff0
	reservedLengthHi = 0xfffffffe
)

// Cursor is a bounds-checked streaming reader over one DWARF section's
// bytes, matching the C2 component in spec.md §4.2. It is a value type:
// the byte slice it reads is shared and never copied, so cloning a Cursor
// (by assignment — every field is either a slice header or a scalar) is
// O(1) and leaves the clone free to advance independently.
type Cursor struct {
	data     []byte
	pos      int
	order    binary.ByteOrder
	addrSize uint8 // 0 means unset
	format   Format
}

// NewCursor opens a cursor over data. order is the byte order of the
// object file that embeds this DWARF section (ELF's class/endian tag);
// per spec.md §4.2, DWARF integers are read in the producer's own byte
// order, canonicalization is an ELF-header-only concept.
func NewCursor(data []byte, order binary.ByteOrder) *Cursor {
	return &Cursor{data: data, order: order}
}

// Position returns the current byte offset into the section.
func (c *Cursor) Position() int { return c.pos }

// SetPosition seeks to an absolute offset. Used by DIE/abbrev decode,
// which addresses entries by offset rather than walking sequentially.
func (c *Cursor) SetPosition(pos int) { c.pos = pos }

// Len returns the total section length.
func (c *Cursor) Len() int { return len(c.data) }

// AtEnd reports whether the cursor has consumed the whole section.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.data) }

// Format returns the DWARF32/DWARF64 format discovered by the most recent
// SkipInitialLength/Subsection call.
func (c *Cursor) Format() Format { return c.format }

// AddressSize returns the address size in effect (0 if not yet set by the
// owning compilation unit's header).
func (c *Cursor) AddressSize() uint8 { return c.addrSize }

// SetAddressSize records the address size, read once per compilation unit
// header (spec.md §3 "address_size ∈ {0 (unset), 1, 2, 4, 8} (set when a
// unit header is consumed)").
func (c *Cursor) SetAddressSize(n uint8) { c.addrSize = n }

// SetFormat forces the DWARF32/DWARF64 format without consuming bytes.
// Used when opening a cursor mid-section at a caller-supplied offset
// whose format was already determined by an earlier SkipInitialLength.
func (c *Cursor) SetFormat(f Format) { c.format = f }

// Clone returns an independent cursor sharing the same backing bytes.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

func (c *Cursor) need(n int) error {
	if c.pos < 0 || n < 0 || c.pos+n > len(c.data) {
		return fmt.Errorf("%w: section ended prematurely (need %d bytes at offset %d, have %d)",
			ErrFormat, n, c.pos, len(c.data)-c.pos)
	}
	return nil
}

// Bytes reads n raw bytes and advances the cursor. The returned slice
// aliases the section's backing array — no copy.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Fixed reads a little- or big-endian integer of width sizeof(T) and
// advances the cursor (spec.md §4.2 "fixed<T>()"). It's a free function,
// not a method, because Go methods cannot carry their own type
// parameters; T ranges over golang.org/x/exp/constraints.Integer exactly
// as the teacher's register/ALU helpers do in
// Manu343726-cucaracha/pkg/hw/cpu/*.go.
func Fixed[T constraints.Integer](c *Cursor) (T, error) {
	var zero T
	size := fixedWidth(zero)
	if err := c.need(size); err != nil {
		return 0, err
	}
	b := c.data[c.pos : c.pos+size]
	var v uint64
	switch size {
	case 1:
		v = uint64(b[0])
	case 2:
		v = uint64(c.order.Uint16(b))
	case 4:
		v = uint64(c.order.Uint32(b))
	case 8:
		v = c.order.Uint64(b)
	default:
		return 0, fmt.Errorf("dwarf: unsupported fixed-width size %d", size)
	}
	c.pos += size
	return T(v), nil
}

func fixedWidth(v any) int {
	switch v.(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	case int64, uint64, int, uint:
		return 8
	default:
		return 0
	}
}

// Address reads an address-sized value, dispatching on the cursor's
// current AddressSize (1, 2, 4, or 8 bytes), spec.md §4.2 "address()".
func (c *Cursor) Address() (uint64, error) {
	switch c.addrSize {
	case 1:
		v, err := Fixed[uint8](c)
		return uint64(v), err
	case 2:
		v, err := Fixed[uint16](c)
		return uint64(v), err
	case 4:
		v, err := Fixed[uint32](c)
		return uint64(v), err
	case 8:
		return Fixed[uint64](c)
	default:
		return 0, fmt.Errorf("dwarf: invalid address size %d", c.addrSize)
	}
}

// Offset reads a section-relative offset: 4 bytes in DWARF32, 8 in
// DWARF64 (spec.md §4.2 "offset()").
func (c *Cursor) Offset() (uint64, error) {
	switch c.format {
	case Format64:
		return Fixed[uint64](c)
	case Format32, FormatUnknown:
		v, err := Fixed[uint32](c)
		return uint64(v), err
	default:
		return 0, fmt.Errorf("dwarf: unknown format")
	}
}

// ULEB128 decodes an unsigned LEB128 value and advances the cursor
// (spec.md §4.2 "uleb128()").
func (c *Cursor) ULEB128() (uint64, error) {
	v, n, err := leb128.Uint(c.data, c.pos)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	c.pos += n
	return v, nil
}

// SLEB128 decodes a signed LEB128 value and advances the cursor
// (spec.md §4.2 "sleb128()").
func (c *Cursor) SLEB128() (int64, error) {
	v, n, err := leb128.Int(c.data, c.pos)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	c.pos += n
	return v, nil
}

// String reads a NUL-terminated string and advances past the terminator.
// The returned string is built once from the section's bytes (spec.md §9
// "zero-copy strings" — realized here as "no intermediate scratch
// buffer," since a Go string value always owns a copy of its bytes,
// unlike a C++ string_view).
func (c *Cursor) String() (string, error) {
	rest := c.data[c.pos:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrFormat, c.pos)
	}
	s := string(rest[:end])
	c.pos += end + 1
	return s, nil
}

// SkipInitialLength reads the DWARF framing prefix that selects 32- vs
// 64-bit format and returns the declared contribution length (spec.md
// §4.2 "skip_initial_length()"). It sets c.format as a side effect.
func (c *Cursor) SkipInitialLength() (uint64, error) {
	word, err := Fixed[uint32](c)
	if err != nil {
		return 0, err
	}
	if word >= reservedLengthLo && word <= reservedLengthHi {
		return 0, fmt.Errorf("%w: reserved initial-length value 0x%x", ErrFormat, word)
	}
	if word == dwarf64Marker {
		c.format = Format64
		return Fixed[uint64](c)
	}
	c.format = Format32
	return uint64(word), nil
}

// Subsection reads an initial length and returns a new Cursor scoped to
// exactly that many following bytes, inheriting address size and format
// from the parent (spec.md §4.2 "subsection()"). The parent cursor is
// left positioned immediately after the returned subsection.
func (c *Cursor) Subsection() (*Cursor, error) {
	length, err := c.SkipInitialLength()
	if err != nil {
		return nil, err
	}
	body, err := c.Bytes(int(length))
	if err != nil {
		return nil, err
	}
	sub := NewCursor(body, c.order)
	sub.addrSize = c.addrSize
	sub.format = c.format
	return sub, nil
}
