package elf

import (
	"encoding/binary"
	"fmt"
)

// FileHeader is the canonical, 64-bit, native-endian in-memory form every
// on-disk ELF header variant (32/64-bit class x LSB/MSB endian) decodes
// into. Downstream code — sections, segments, symbols — only ever sees
// this shape; spec.md §3 "Canonicalized into a single 64-bit native-endian
// in-memory form on read."
type FileHeader struct {
	Class      Class
	Data       Data
	Version    uint8
	OSABI      uint8
	ABIVersion uint8

	Type      ObjectType
	Machine   Machine
	EVersion  uint32
	Entry     uint64
	PhOff     uint64
	ShOff     uint64
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16

	// ByteOrder is the decoded file's own byte order, retained so section
	// payloads (which are not canonicalized, only headers are) can be
	// read correctly downstream.
	ByteOrder binary.ByteOrder
}

// decodeIdent validates the e_ident prefix and extracts class/endianness.
func decodeIdent(b []byte) (Class, Data, uint8, uint8, uint8, error) {
	if len(b) < identSize {
		return 0, 0, 0, 0, 0, fmt.Errorf("elf: %w: file too short for e_ident", ErrFormat)
	}
	if b[0] != magic0 || b[1] != magic1 || b[2] != magic2 || b[3] != magic3 {
		return 0, 0, 0, 0, 0, fmt.Errorf("elf: %w: bad magic", ErrFormat)
	}
	class := Class(b[idxClass])
	if class != Class32 && class != Class64 {
		return 0, 0, 0, 0, 0, fmt.Errorf("elf: %w: unknown class %d", ErrFormat, b[idxClass])
	}
	data := Data(b[idxData])
	if data != DataLSB && data != DataMSB {
		return 0, 0, 0, 0, 0, fmt.Errorf("elf: %w: unknown data encoding %d", ErrFormat, b[idxData])
	}
	if b[idxVersion] != evVersion {
		return 0, 0, 0, 0, 0, fmt.Errorf("elf: %w: unknown ident version %d", ErrFormat, b[idxVersion])
	}
	return class, data, b[idxVersion], b[idxOSABI], b[idxABIVer], nil
}

// byteOrderFor returns the byte-order implementation for the decoded file.
func byteOrderFor(d Data) binary.ByteOrder {
	if d == DataMSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// decodeHeader canonicalizes one of the four (class, endian) on-disk
// header layouts into FileHeader. Rather than replicate the field layout
// four times (spec.md §9 "generate the four decoders from one
// description"), a single cursor walks the fields in gABI order, reading
// either 4- or 8-byte address/offset fields depending on class.
func decodeHeader(b []byte) (FileHeader, error) {
	class, data, version, osabi, abiver, err := decodeIdent(b)
	if err != nil {
		return FileHeader{}, err
	}
	order := byteOrderFor(data)

	want := ehdrSize(class)
	if len(b) < want {
		return FileHeader{}, fmt.Errorf("elf: %w: file too short for Ehdr (want %d, have %d)", ErrFormat, want, len(b))
	}

	c := &fieldCursor{buf: b, pos: identSize, order: order}
	h := FileHeader{
		Class:      class,
		Data:       data,
		Version:    version,
		OSABI:      osabi,
		ABIVersion: abiver,
	}
	h.ByteOrder = order
	h.Type = ObjectType(c.u16())
	h.Machine = Machine(c.u16())
	h.EVersion = c.u32()
	if class == Class64 {
		h.Entry = c.u64()
		h.PhOff = c.u64()
		h.ShOff = c.u64()
	} else {
		h.Entry = uint64(c.u32())
		h.PhOff = uint64(c.u32())
		h.ShOff = uint64(c.u32())
	}
	h.Flags = c.u32()
	h.EhSize = c.u16()
	h.PhEntSize = c.u16()
	h.PhNum = c.u16()
	h.ShEntSize = c.u16()
	h.ShNum = c.u16()
	h.ShStrNdx = c.u16()

	if c.err != nil {
		return FileHeader{}, fmt.Errorf("elf: %w: %v", ErrFormat, c.err)
	}
	if h.ShNum > 0 && h.ShStrNdx >= h.ShNum {
		return FileHeader{}, fmt.Errorf("elf: %w: shstrndx %d >= shnum %d", ErrFormat, h.ShStrNdx, h.ShNum)
	}
	return h, nil
}

func ehdrSize(c Class) int {
	if c == Class64 {
		return 64
	}
	return 52
}

// fieldCursor is a tiny bounds-checked sequential reader used only while
// decoding the fixed-size Ehdr/Shdr/Phdr/Sym tables, where the field order
// and widths are dictated by gABI and the class tag. The DWARF-facing
// stream reader with ULEB/SLEB/string support lives in package dwarf as
// Cursor; this one stays private to elf since header decoding needs
// nothing beyond fixed-width integers.
type fieldCursor struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
	err   error
}

func (c *fieldCursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if c.pos+n > len(c.buf) {
		c.err = fmt.Errorf("field cursor ran past end of buffer at %d (need %d more, have %d)", c.pos, n, len(c.buf)-c.pos)
		return false
	}
	return true
}

func (c *fieldCursor) u8() uint8 {
	if !c.need(1) {
		return 0
	}
	v := c.buf[c.pos]
	c.pos++
	return v
}

func (c *fieldCursor) u16() uint16 {
	if !c.need(2) {
		return 0
	}
	v := c.order.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

func (c *fieldCursor) u32() uint32 {
	if !c.need(4) {
		return 0
	}
	v := c.order.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *fieldCursor) u64() uint64 {
	if !c.need(8) {
		return 0
	}
	v := c.order.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v
}

func (c *fieldCursor) bytes(n int) []byte {
	if !c.need(n) {
		return nil
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v
}
