package elf

import (
	"encoding/binary"
	"sync"
)

// ProgramHeader is the canonical decode of an on-disk Phdr.
type ProgramHeader struct {
	Type     SegmentType
	Flags    SegmentFlag
	Offset   uint64
	VAddr    uint64
	PAddr    uint64
	FileSize uint64
	MemSize  uint64
	Align    uint64
}

// Segment is a shared, immutable view over one program header plus its
// lazily-loaded payload, mirroring Section's lazy-Data shape (spec.md §3).
type Segment struct {
	ProgramHeader

	file *File

	once sync.Once
	data []byte
	err  error
}

// Data returns the segment's file-backed payload. Segments have no
// NOBITS-equivalent: FileSize bytes are always read from Offset.
func (s *Segment) Data() ([]byte, error) {
	s.once.Do(func() {
		s.data, s.err = s.file.loader.LoadAt(s.Offset, s.FileSize)
	})
	return s.data, s.err
}

func decodeProgramHeader(b []byte, class Class, order binary.ByteOrder) ProgramHeader {
	c := &fieldCursor{buf: b, order: order}
	var h ProgramHeader
	if class == Class64 {
		h.Type = SegmentType(c.u32())
		h.Flags = SegmentFlag(c.u32())
		h.Offset = c.u64()
		h.VAddr = c.u64()
		h.PAddr = c.u64()
		h.FileSize = c.u64()
		h.MemSize = c.u64()
		h.Align = c.u64()
	} else {
		h.Type = SegmentType(c.u32())
		h.Offset = uint64(c.u32())
		h.VAddr = uint64(c.u32())
		h.PAddr = uint64(c.u32())
		h.FileSize = uint64(c.u32())
		h.MemSize = uint64(c.u32())
		h.Flags = SegmentFlag(c.u32())
		h.Align = uint64(c.u32())
	}
	return h
}

func programHeaderEntSize(class Class) int {
	if class == Class64 {
		return 56
	}
	return 32
}
