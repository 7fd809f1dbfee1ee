package elf

import (
	"encoding/binary"
	"testing"

	"github.com/binlens/binlens/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalizationAgreesAcrossByteOrder is spec.md §8 scenario 6:
// the same 32-bit big-endian ELF and its little-endian twin must produce
// byte-identical canonical headers and the same section names/sizes.
func TestCanonicalizationAgreesAcrossByteOrder(t *testing.T) {
	build := func(order binary.ByteOrder) *File {
		b := newELFBuilder(Class32, order)
		b.addSection(builtSection{name: ".text", typ: SHTProgBits, flags: SHFAlloc | SHFExecInstr, size: 4})
		data := map[string][]byte{".text": {0xde, 0xad, 0xbe, 0xef}}
		raw := b.build(data)
		f, err := NewFile(loader.NewFromBytes(raw))
		require.NoError(t, err)
		return f
	}

	le := build(binary.LittleEndian)
	be := build(binary.BigEndian)

	assert.Equal(t, le.Header.Class, be.Header.Class)
	assert.Equal(t, le.Header.Type, be.Header.Type)
	assert.Equal(t, le.Header.Machine, be.Header.Machine)
	assert.Equal(t, le.Header.ShNum, be.Header.ShNum)
	assert.Equal(t, le.Header.ShStrNdx, be.Header.ShStrNdx)

	require.Equal(t, len(le.Sections()), len(be.Sections()))
	for i := range le.Sections() {
		ls, bs := le.Sections()[i], be.Sections()[i]
		assert.Equal(t, ls.Name, bs.Name)
		assert.Equal(t, ls.Size, bs.Size)
		assert.Equal(t, ls.Type, bs.Type)
	}

	leText := le.SectionByName(".text")
	beText := be.SectionByName(".text")
	require.True(t, leText.Valid())
	require.True(t, beText.Valid())
	leData, err := leText.Data()
	require.NoError(t, err)
	beData, err := beText.Data()
	require.NoError(t, err)
	assert.Equal(t, leData, beData)
}

func TestBadMagicRejected(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf, []byte{0x00, 'E', 'L', 'F'})
	_, err := NewFile(loader.NewFromBytes(buf))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestShStrNdxOutOfRangeRejected(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	raw := b.build(nil)
	// Corrupt e_shstrndx to something >= shnum (2: null + shstrtab).
	binary.LittleEndian.PutUint16(raw[16+36+10:16+36+12], 5)
	_, err := NewFile(loader.NewFromBytes(raw))
	require.Error(t, err)
}
