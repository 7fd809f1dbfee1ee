package elf

import (
	"encoding/binary"
	"testing"

	"github.com/binlens/binlens/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionByNameMissIsSentinelNotError(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	raw := b.build(nil)
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	s := f.SectionByName(".nonexistent")
	assert.False(t, s.Valid())

	s2 := f.SectionByIndex(999)
	assert.False(t, s2.Valid())
}

func TestNobitsSectionDataIsNil(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	b.addSection(builtSection{name: ".bss", typ: SHTNoBits, size: 16})
	raw := b.build(nil)
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	bss := f.SectionByName(".bss")
	require.True(t, bss.Valid())
	data, err := bss.Data()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAsStrTabWrongTypeRaises(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	b.addSection(builtSection{name: ".text", typ: SHTProgBits, size: 4})
	raw := b.build(map[string][]byte{".text": {1, 2, 3, 4}})
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	text := f.SectionByName(".text")
	require.True(t, text.Valid())
	_, err = text.AsStrTab()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSectionType)
}

func TestStringTableLookup(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	b.addSection(builtSection{name: ".strtab", typ: SHTStrTab, size: 9})
	raw := b.build(map[string][]byte{".strtab": append([]byte{0}, "foo\x00bar\x00"...)})
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	s := f.SectionByName(".strtab")
	require.True(t, s.Valid())
	strs, err := s.AsStrTab()
	require.NoError(t, err)

	got, err := strs.String(1)
	require.NoError(t, err)
	assert.Equal(t, "foo", got)

	got, err = strs.String(5)
	require.NoError(t, err)
	assert.Equal(t, "bar", got)

	_, err = strs.String(999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRange)
}

func TestSectionDataIsMemoized(t *testing.T) {
	b := newELFBuilder(Class64, binary.LittleEndian)
	b.addSection(builtSection{name: ".text", typ: SHTProgBits, size: 4})
	raw := b.build(map[string][]byte{".text": {9, 9, 9, 9}})
	f, err := NewFile(loader.NewFromBytes(raw))
	require.NoError(t, err)

	text := f.SectionByName(".text")
	d1, err := text.Data()
	require.NoError(t, err)
	d2, err := text.Data()
	require.NoError(t, err)
	assert.True(t, &d1[0] == &d2[0], "Data() should memoize and return the same backing array")
}
