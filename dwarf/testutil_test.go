package dwarf

import (
	"encoding/binary"

	"github.com/binlens/binlens/loader"
)

// memLoader is a loader.DWARFLoader backed by an in-memory map, used only
// by this package's tests; the library itself never writes DWARF.
type memLoader map[loader.SectionKind][]byte

func (m memLoader) Load(kind loader.SectionKind) ([]byte, bool) {
	data, ok := m[kind]
	return data, ok
}

// uleb appends the ULEB128 encoding of v.
func uleb(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

// u32 / u64 / u16 append fixed-width little-endian integers, matching the
// binary.LittleEndian order every builder test below uses.
func u16(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
func u32(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }
func u64(v uint64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, v); return b }

func cstr(s string) []byte { return append([]byte(s), 0) }

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// buildAbbrev assembles one compilation unit's abbreviation table: each
// decl is (code, tag, hasChildren, [(attr,form), ...]), terminated by the
// table-ending zero code.
type abbrevSpec struct {
	code     uint64
	tag      Tag
	children bool
	fields   []abbrevField
}

func buildAbbrevSection(decls []abbrevSpec) []byte {
	var out []byte
	for _, d := range decls {
		out = append(out, uleb(d.code)...)
		out = append(out, uleb(uint64(d.tag))...)
		if d.children {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
		for _, f := range d.fields {
			out = append(out, uleb(uint64(f.Attr))...)
			out = append(out, uleb(uint64(f.Form))...)
		}
		out = append(out, 0, 0)
	}
	out = append(out, 0) // table terminator
	return out
}

// buildCU wraps body (everything after address_size) in a DWARF32 unit
// header: 4-byte length, 2-byte version, 4-byte abbrev offset, 1-byte
// address size.
func buildCU(version uint16, abbrevOff uint32, addrSize uint8, body []byte) []byte {
	header := concat(u16(version), u32(abbrevOff), []byte{addrSize})
	contribution := concat(header, body)
	return concat(u32(uint32(len(contribution))), contribution)
}
