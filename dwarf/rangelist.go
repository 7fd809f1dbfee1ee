package dwarf

import "fmt"

// PCRange is one contiguous [Low, High) address range.
type PCRange struct {
	Low  uint64
	High uint64
}

// baseSelectorAllOnes is the sentinel first-entry value (every bit of
// the address-sized field set) that introduces a new base address for
// subsequent entries, per the DWARF range-list encoding (spec.md §4.9,
// §8 scenario 5).
func baseSelectorAllOnes(addrSize uint8) uint64 {
	if addrSize >= 8 {
		return 0xffffffffffffffff
	}
	return 1<<(8*uint64(addrSize)) - 1
}

// RangesAt decodes the .debug_ranges list starting at off, relative to
// the given compilation unit's address size and initial base address
// (normally the unit's DW_AT_low_pc, or 0 if it has none). Terminates at
// the (0, 0) end-of-list entry (spec.md §4.9 "range list iteration").
//
// This is a supplemental feature relative to the distilled DIE/attribute
// walk: DW_AT_ranges attributes are common on inlined/out-of-line
// functions and optimized code, and a reader that can decode DIEs but
// not their ranges can't resolve such a function's full extent.
func (f *File) RangesAt(unit *Unit, off uint64, base uint64) ([]PCRange, error) {
	if f.ranges.data == nil {
		return nil, fmt.Errorf("%w: no .debug_ranges section present", ErrFormat)
	}
	c, err := f.ranges.cursorAt(off)
	if err != nil {
		return nil, err
	}
	c.SetAddressSize(unit.AddressSize)
	allOnes := baseSelectorAllOnes(unit.AddressSize)

	var out []PCRange
	for {
		lo, err := c.Address()
		if err != nil {
			return nil, err
		}
		hi, err := c.Address()
		if err != nil {
			return nil, err
		}
		if lo == 0 && hi == 0 {
			return out, nil
		}
		if lo == allOnes {
			base = hi
			continue
		}
		out = append(out, PCRange{Low: base + lo, High: base + hi})
	}
}
