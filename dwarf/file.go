package dwarf

import (
	"encoding/binary"
	"fmt"

	"github.com/binlens/binlens/loader"
)

// File is an opened DWARF debug-information object: the required
// .debug_info/.debug_abbrev sections plus whichever optional sections
// (.debug_str, .debug_line, .debug_ranges, .debug_aranges, ...) the
// underlying object file happens to carry (spec.md §4.4 "DWARF file").
type File struct {
	info   sectionSlice
	abbrev sectionSlice
	str    sectionSlice

	line     sectionSlice
	ranges   sectionSlice
	aranges  sectionSlice
	loc      sectionSlice
	frame    sectionSlice
	pubnames sectionSlice
	pubtypes sectionSlice
	types    sectionSlice

	order binary.ByteOrder
}

// requiredKinds is spec.md §4.4's minimum section set: without both, a
// compilation unit cannot be decoded at all (no tree, no attribute
// shapes). .debug_str is optional — a producer using only inline
// DW_FORM_string never needs it.
var requiredKinds = [...]loader.SectionKind{loader.KindInfo, loader.KindAbbrev}

// New opens a DWARF file view over l, which must serve every required
// section kind. order is the byte order DWARF integers in this object
// were encoded with (an ELF file's own order; DWARF never canonicalizes
// across endianness the way elf.FileHeader does).
func New(l loader.DWARFLoader, order binary.ByteOrder) (*File, error) {
	f := &File{order: order}

	for _, k := range requiredKinds {
		data, ok := l.Load(k)
		if !ok {
			return nil, fmt.Errorf("%w: required section %s missing", ErrFormat, k.ELFSectionName())
		}
		f.slice(k).data = data
		f.slice(k).order = order
	}

	optional := [...]loader.SectionKind{
		loader.KindStr, loader.KindLine, loader.KindRanges, loader.KindAranges,
		loader.KindLoc, loader.KindFrame, loader.KindPubnames,
		loader.KindPubtypes, loader.KindTypes,
	}
	for _, k := range optional {
		if data, ok := l.Load(k); ok {
			s := f.slice(k)
			s.data = data
			s.order = order
		}
	}
	return f, nil
}

// slice returns a pointer to this File's sectionSlice for kind, so New
// can fill in data/order/kind uniformly across the required and optional
// loops above instead of one switch-per-section assignment.
func (f *File) slice(kind loader.SectionKind) *sectionSlice {
	var s *sectionSlice
	switch kind {
	case loader.KindInfo:
		s = &f.info
	case loader.KindAbbrev:
		s = &f.abbrev
	case loader.KindStr:
		s = &f.str
	case loader.KindLine:
		s = &f.line
	case loader.KindRanges:
		s = &f.ranges
	case loader.KindAranges:
		s = &f.aranges
	case loader.KindLoc:
		s = &f.loc
	case loader.KindFrame:
		s = &f.frame
	case loader.KindPubnames:
		s = &f.pubnames
	case loader.KindPubtypes:
		s = &f.pubtypes
	case loader.KindTypes:
		s = &f.types
	default:
		panic(fmt.Sprintf("dwarf: unhandled section kind %s", kind))
	}
	s.kind = kind
	return s
}

// Units enumerates every compilation unit in .debug_info in file order
// by walking the length-prefixed header chain (spec.md §4.4 "CU
// enumeration"). It decodes only headers eagerly; each unit's DIE tree
// and abbreviation table are decoded lazily as the caller walks them.
func (f *File) Units() ([]*Unit, error) {
	var units []*Unit
	c := f.info.cursor()
	for !c.AtEnd() {
		u, err := parseUnitHeader(f, c)
		if err != nil {
			return nil, fmt.Errorf("compilation unit at offset %d: %w", c.Position(), err)
		}
		units = append(units, u)
		c.SetPosition(int(u.End))
	}
	return units, nil
}

// UnitAt returns the compilation unit whose contribution to .debug_info
// starts at off, decoding just that one header rather than the whole
// chain. Used to resolve a DW_FORM_ref_addr value that points outside
// the referencing DIE's own unit (cross-unit symbolication beyond that
// one seek is out of scope, spec.md §1).
func (f *File) UnitAt(off uint64) (*Unit, error) {
	c := f.info.cursor()
	c.SetPosition(int(off))
	return parseUnitHeader(f, c)
}
