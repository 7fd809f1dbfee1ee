package elf

import (
	"encoding/binary"
	"fmt"
)

// Rel is a decoded Elf_Rel entry (no addend).
type Rel struct {
	Offset  uint64
	SymIdx  uint32
	RelType uint32
}

// Rela is a decoded Elf_Rela entry (explicit addend).
type Rela struct {
	Offset  uint64
	SymIdx  uint32
	RelType uint32
	Addend  int64
}

// splitInfo unpacks r_info into (sym_idx, rel_type). The split point
// differs by class — spec.md §4.3: "sym_idx = info >> shift, rel_type =
// info & mask, where shift/mask differ by class (32: 8/0xff; 64: 32/
// 0xffffffff)."
func splitInfo(class Class, info uint64) (uint32, uint32) {
	if class == Class64 {
		return uint32(info >> 32), uint32(info & 0xffffffff)
	}
	return uint32(info >> 8), uint32(info & 0xff)
}

func relEntSize(class Class) int {
	if class == Class64 {
		return 16
	}
	return 8
}

func relaEntSize(class Class) int {
	if class == Class64 {
		return 24
	}
	return 12
}

// AsRelTab decodes this section as an SHT_REL table.
func (s *Section) AsRelTab() ([]Rel, error) {
	if s.Type != SHTRel {
		return nil, fmt.Errorf("elf: section %q: %w: want SHT_REL, have %v", s.Name, ErrSectionType, s.Type)
	}
	data, err := s.Data()
	if err != nil {
		return nil, err
	}
	class := s.file.Header.Class
	order := s.file.Header.ByteOrder
	size := relEntSize(class)
	n := len(data) / size
	out := make([]Rel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, decodeRel(data[i*size:(i+1)*size], class, order))
	}
	return out, nil
}

// AsRelaTab decodes this section as an SHT_RELA table.
func (s *Section) AsRelaTab() ([]Rela, error) {
	if s.Type != SHTRela {
		return nil, fmt.Errorf("elf: section %q: %w: want SHT_RELA, have %v", s.Name, ErrSectionType, s.Type)
	}
	data, err := s.Data()
	if err != nil {
		return nil, err
	}
	class := s.file.Header.Class
	order := s.file.Header.ByteOrder
	size := relaEntSize(class)
	n := len(data) / size
	out := make([]Rela, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, decodeRela(data[i*size:(i+1)*size], class, order))
	}
	return out, nil
}

func decodeRel(b []byte, class Class, order binary.ByteOrder) Rel {
	c := &fieldCursor{buf: b, order: order}
	var offset, info uint64
	if class == Class64 {
		offset = c.u64()
		info = c.u64()
	} else {
		offset = uint64(c.u32())
		info = uint64(c.u32())
	}
	sym, typ := splitInfo(class, info)
	return Rel{Offset: offset, SymIdx: sym, RelType: typ}
}

func decodeRela(b []byte, class Class, order binary.ByteOrder) Rela {
	c := &fieldCursor{buf: b, order: order}
	var offset, info uint64
	var addend int64
	if class == Class64 {
		offset = c.u64()
		info = c.u64()
		addend = int64(c.u64())
	} else {
		offset = uint64(c.u32())
		info = uint64(c.u32())
		addend = int64(int32(c.u32()))
	}
	sym, typ := splitInfo(class, info)
	return Rela{Offset: offset, SymIdx: sym, RelType: typ, Addend: addend}
}
