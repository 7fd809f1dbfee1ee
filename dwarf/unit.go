package dwarf

import (
	"fmt"
	"sync"
)

// Unit is one compilation unit's header plus lazily-built abbreviation
// table (spec.md §3 "compilation unit", §4.5). Offset/End bound its
// contribution to .debug_info, including the header itself; RootOffset
// is where its top-level DIE begins.
type Unit struct {
	file *File

	Offset       uint64
	End          uint64
	Format       Format
	Version      uint16
	AbbrevOffset uint64
	AddressSize  uint8
	RootOffset   uint64

	abbrevOnce sync.Once
	abbrev     *abbrevTable
	abbrevErr  error
}

// parseUnitHeader decodes one compilation unit header starting at the
// cursor's current position (spec.md §4.5), which must be positioned at
// the unit's initial length. Supports the DWARF2-4 header layout:
// unit_length, version, debug_abbrev_offset, address_size. DWARF5's
// reordered header (unit_type before abbrev_offset) is out of scope
// (spec.md §1).
func parseUnitHeader(f *File, c *Cursor) (*Unit, error) {
	start := c.Position()
	length, err := c.SkipInitialLength()
	if err != nil {
		return nil, err
	}
	end := c.Position() + int(length)

	version, err := Fixed[uint16](c)
	if err != nil {
		return nil, err
	}
	if version < 2 || version > 4 {
		return nil, fmt.Errorf("%w: unsupported DWARF version %d", ErrFormat, version)
	}

	abbrevOff, err := c.Offset()
	if err != nil {
		return nil, err
	}
	addrSize, err := Fixed[uint8](c)
	if err != nil {
		return nil, err
	}
	c.SetAddressSize(addrSize)

	return &Unit{
		file:         f,
		Offset:       uint64(start),
		End:          uint64(end),
		Format:       c.Format(),
		Version:      version,
		AbbrevOffset: abbrevOff,
		AddressSize:  addrSize,
		RootOffset:   uint64(c.Position()),
	}, nil
}

// abbrevTable lazily decodes and memoizes this unit's abbreviation
// declarations, mirroring elf.Section.Data's sync.Once single-writer
// policy (spec.md §5 "build-before-publish").
func (u *Unit) abbrevTable() (*abbrevTable, error) {
	u.abbrevOnce.Do(func() {
		u.abbrev, u.abbrevErr = decodeAbbrevTable(u.file.abbrev, u.AbbrevOffset)
	})
	return u.abbrev, u.abbrevErr
}

// cursor returns a Cursor over .debug_info scoped to this unit's header
// fields (address size, format), ready to read at pos.
func (u *Unit) cursor(pos uint64) *Cursor {
	c := u.file.info.cursor()
	c.SetAddressSize(u.AddressSize)
	c.SetFormat(u.Format)
	c.SetPosition(int(pos))
	return c
}

// Root returns a Reader positioned to decode this unit's top-level DIE.
func (u *Unit) Root() *Reader {
	return newReader(u, u.RootOffset)
}
