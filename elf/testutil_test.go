package elf

import (
	"encoding/binary"
)

// elfBuilder assembles a minimal, valid ELF object file byte-for-byte, in
// either class/endianness, for use by the tests below. It exists only in
// _test.go files; the library itself never writes ELF (spec.md §1
// non-goals).
type elfBuilder struct {
	class Class
	order binary.ByteOrder
	buf   []byte

	sections []builtSection
}

type builtSection struct {
	name    string
	typ     SectionType
	flags   SectionFlag
	addr    uint64
	offset  uint64
	size    uint64
	link    uint32
	info    uint32
	align   uint64
	entsize uint64
}

func newELFBuilder(class Class, order binary.ByteOrder) *elfBuilder {
	return &elfBuilder{class: class, order: order}
}

func (b *elfBuilder) put16(v uint16) { var t [2]byte; b.order.PutUint16(t[:], v); b.buf = append(b.buf, t[:]...) }
func (b *elfBuilder) put32(v uint32) { var t [4]byte; b.order.PutUint32(t[:], v); b.buf = append(b.buf, t[:]...) }
func (b *elfBuilder) put64(v uint64) { var t [8]byte; b.order.PutUint64(t[:], v); b.buf = append(b.buf, t[:]...) }
func (b *elfBuilder) putClassWord(v uint64) {
	if b.class == Class64 {
		b.put64(v)
	} else {
		b.put32(uint32(v))
	}
}

// build lays out: Ehdr, then each section's raw payload back to back
// (page-aligned isn't necessary for our loader), then the section header
// table, with one leading NULL section and a final ".shstrtab" section
// holding every name. Returns the full file bytes.
func (b *elfBuilder) build(payloads map[string][]byte) []byte {
	ehdrSz := ehdrSize(b.class)
	shentsz := sectionHeaderEntSize(b.class)

	// Section name string table content.
	var shstrtab []byte
	shstrtab = append(shstrtab, 0) // index 0 is empty string
	nameOff := map[string]uint32{}
	names := []string{""}
	for _, s := range b.sections {
		names = append(names, s.name)
	}
	names = append(names, ".shstrtab")
	for _, n := range names[1:] {
		if _, ok := nameOff[n]; ok {
			continue
		}
		nameOff[n] = uint32(len(shstrtab))
		shstrtab = append(shstrtab, []byte(n)...)
		shstrtab = append(shstrtab, 0)
	}

	// Lay out payload bytes starting right after Ehdr.
	offset := uint64(ehdrSz)
	type laidOut struct {
		builtSection
		data []byte
	}
	var laid []laidOut
	for _, s := range b.sections {
		data := payloads[s.name]
		s.offset = offset
		s.size = uint64(len(data))
		offset += s.size
		laid = append(laid, laidOut{s, data})
	}
	shstrtabOff := offset
	offset += uint64(len(shstrtab))

	shoff := offset

	total := shoff + uint64(shentsz)*uint64(len(laid)+2) // +1 null +1 shstrtab
	out := make([]byte, total)

	// Ehdr.
	out[0], out[1], out[2], out[3] = magic0, magic1, magic2, magic3
	out[idxClass] = byte(b.class)
	var dtag Data = DataLSB
	if isBigEndian(b.order) {
		dtag = DataMSB
	}
	out[idxData] = byte(dtag)
	out[idxVersion] = evVersion

	w := out[16:]
	b.order.PutUint16(w[0:2], uint16(TypeExec))
	b.order.PutUint16(w[2:4], uint16(MachineX8664))
	b.order.PutUint32(w[4:8], 1)
	pos := 8
	if b.class == Class64 {
		b.order.PutUint64(w[pos:pos+8], 0) // entry
		pos += 8
		b.order.PutUint64(w[pos:pos+8], 0) // phoff
		pos += 8
		b.order.PutUint64(w[pos:pos+8], shoff)
		pos += 8
	} else {
		b.order.PutUint32(w[pos:pos+4], 0)
		pos += 4
		b.order.PutUint32(w[pos:pos+4], 0)
		pos += 4
		b.order.PutUint32(w[pos:pos+4], uint32(shoff))
		pos += 4
	}
	b.order.PutUint32(w[pos:pos+4], 0) // flags
	pos += 4
	b.order.PutUint16(w[pos:pos+2], uint16(ehdrSz))
	pos += 2
	b.order.PutUint16(w[pos:pos+2], 0) // phentsize
	pos += 2
	b.order.PutUint16(w[pos:pos+2], 0) // phnum
	pos += 2
	b.order.PutUint16(w[pos:pos+2], uint16(shentsz))
	pos += 2
	b.order.PutUint16(w[pos:pos+2], uint16(len(laid)+2))
	pos += 2
	b.order.PutUint16(w[pos:pos+2], uint16(len(laid)+1)) // shstrndx is last
	pos += 2

	// Payload bytes.
	for _, s := range laid {
		copy(out[s.offset:s.offset+s.size], s.data)
	}
	copy(out[shstrtabOff:shstrtabOff+uint64(len(shstrtab))], shstrtab)

	// Section header table: NULL, each real section, then shstrtab.
	writeShdr := func(idx int, nameOff uint32, s builtSection) {
		base := int(shoff) + idx*shentsz
		sb := out[base : base+shentsz]
		order := b.order
		order.PutUint32(sb[0:4], nameOff)
		order.PutUint32(sb[4:8], uint32(s.typ))
		if b.class == Class64 {
			order.PutUint64(sb[8:16], uint64(s.flags))
			order.PutUint64(sb[16:24], s.addr)
			order.PutUint64(sb[24:32], s.offset)
			order.PutUint64(sb[32:40], s.size)
			order.PutUint32(sb[40:44], s.link)
			order.PutUint32(sb[44:48], s.info)
			order.PutUint64(sb[48:56], s.align)
			order.PutUint64(sb[56:64], s.entsize)
		} else {
			order.PutUint32(sb[8:12], uint32(s.flags))
			order.PutUint32(sb[12:16], uint32(s.addr))
			order.PutUint32(sb[16:20], uint32(s.offset))
			order.PutUint32(sb[20:24], uint32(s.size))
			order.PutUint32(sb[24:28], s.link)
			order.PutUint32(sb[28:32], s.info)
			order.PutUint32(sb[32:36], uint32(s.align))
			order.PutUint32(sb[36:40], uint32(s.entsize))
		}
	}
	writeShdr(0, 0, builtSection{})
	for i, s := range laid {
		writeShdr(i+1, nameOff[s.name], s.builtSection)
	}
	writeShdr(len(laid)+1, nameOff[".shstrtab"], builtSection{
		typ: SHTStrTab, offset: shstrtabOff, size: uint64(len(shstrtab)),
	})

	return out
}

func isBigEndian(order binary.ByteOrder) bool {
	var b [2]byte
	order.PutUint16(b[:], 0x0102)
	return b[0] == 0x01
}

// addSection registers a section to be emitted by build.
func (b *elfBuilder) addSection(s builtSection) {
	b.sections = append(b.sections, s)
}
