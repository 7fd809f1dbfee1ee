package elf

import (
	"encoding/binary"
	"testing"

	"github.com/binlens/binlens/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSymEntry64(order binary.ByteOrder, nameOff uint32, info, other uint8, shndx uint16, value, size uint64) []byte {
	b := make([]byte, 24)
	order.PutUint32(b[0:4], nameOff)
	b[4] = info
	b[5] = other
	order.PutUint16(b[6:8], shndx)
	order.PutUint64(b[8:16], value)
	order.PutUint64(b[16:24], size)
	return b
}

func TestSymbolTableDecode(t *testing.T) {
	order := binary.LittleEndian
	b := newELFBuilder(Class64, order)
	b.addSection(builtSection{name: ".strtab", typ: SHTStrTab, size: 10})
	b.addSection(builtSection{name: ".symtab", typ: SHTSymTab, link: 1, entsize: 24, size: 48})

	strtab := append([]byte{0}, "main\x00foo\x00"...) // len 10

	info := func(bind SymbolBinding, typ SymbolType) uint8 {
		return uint8(bind)<<4 | uint8(typ)&0xf
	}
	sym0 := buildSymEntry64(order, 0, 0, 0, 0, 0, 0)
	sym1 := buildSymEntry64(order, 1, info(BindGlobal, SymTypeFunc), 0, 1, 0x1000, 32)
	symtab := append(append([]byte{}, sym0...), sym1...)

	raw := b.build(map[string][]byte{".strtab": strtab, ".symtab": symtab})
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	st, err := f.Symbols()
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Equal(t, 2, st.Len())

	s0, err := st.At(0)
	require.NoError(t, err)
	assert.Equal(t, "", s0.Name)

	s1, err := st.At(1)
	require.NoError(t, err)
	assert.Equal(t, "main", s1.Name)
	assert.Equal(t, uint64(0x1000), s1.Value)
	assert.Equal(t, uint64(32), s1.Size)
	assert.Equal(t, BindGlobal, s1.Binding)
	assert.Equal(t, SymTypeFunc, s1.Type)
	assert.True(t, s1.Defined())

	_, err = st.At(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRange)
}

func TestRelocationSplitByClass(t *testing.T) {
	sym, typ := splitInfo(Class64, (uint64(7)<<32)|2)
	assert.Equal(t, uint32(7), sym)
	assert.Equal(t, uint32(2), typ)

	sym, typ = splitInfo(Class32, (uint64(7)<<8)|2)
	assert.Equal(t, uint32(7), sym)
	assert.Equal(t, uint32(2), typ)
}
