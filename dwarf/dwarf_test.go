package dwarf

import (
	"encoding/binary"
	"testing"

	"github.com/binlens/binlens/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinimalCompileUnit is spec.md §8 scenario 1: a single compile_unit
// DIE with no children decodes to exactly one Entry with the expected
// attributes and no further entries.
func TestMinimalCompileUnit(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false, fields: []abbrevField{
			{Attr: AttrName, Form: FormString},
			{Attr: AttrLanguage, Form: FormData1},
		}},
	})
	str := []byte{0}
	die := concat(uleb(1), cstr("hello.c"), []byte{0x02})
	info := buildCU(4, 0, 8, die)

	f, err := New(memLoader{
		loader.KindInfo:   info,
		loader.KindAbbrev: abbrev,
		loader.KindStr:    str,
	}, binary.LittleEndian)
	require.NoError(t, err)

	units, err := f.Units()
	require.NoError(t, err)
	require.Len(t, units, 1)

	r := units[0].Root()
	entry, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, TagCompileUnit, entry.Tag)
	assert.False(t, entry.Children)

	nameVal, err := entry.Val(AttrName)
	require.NoError(t, err)
	name, err := nameVal.String()
	require.NoError(t, err)
	assert.Equal(t, "hello.c", name)

	langVal, err := entry.Val(AttrLanguage)
	require.NoError(t, err)
	lang, err := langVal.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x02), lang)

	next, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, next)
}

// TestOpenWithoutDebugStr confirms spec.md §4.4's required-section set is
// just info+abbrev: a producer whose DIEs use only inline DW_FORM_string
// and carries no .debug_str at all must still open and decode.
func TestOpenWithoutDebugStr(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false, fields: []abbrevField{
			{Attr: AttrName, Form: FormString},
		}},
	})
	die := concat(uleb(1), cstr("hello.c"))
	info := buildCU(4, 0, 8, die)

	f, err := New(memLoader{
		loader.KindInfo:   info,
		loader.KindAbbrev: abbrev,
	}, binary.LittleEndian)
	require.NoError(t, err)

	units, err := f.Units()
	require.NoError(t, err)
	require.Len(t, units, 1)

	entry, err := units[0].Root().Next()
	require.NoError(t, err)
	nameVal, err := entry.Val(AttrName)
	require.NoError(t, err)
	name, err := nameVal.String()
	require.NoError(t, err)
	assert.Equal(t, "hello.c", name)
}

// TestNestedDIEsWithoutSiblingHint is spec.md §8 scenario 2 in reduced
// form: a subprogram with two formal_parameter children, none carrying
// DW_AT_sibling, must enumerate both children and then reach the end of
// the unit. The children have no children of their own, so the
// subtree-skipping fallback is not exercised here.
func TestNestedDIEsWithoutSiblingHint(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagSubprogram, children: true, fields: []abbrevField{
			{Attr: AttrName, Form: FormString},
		}},
		{code: 2, tag: TagFormalParameter, children: false, fields: []abbrevField{
			{Attr: AttrName, Form: FormString},
		}},
	})
	str := []byte{0}
	die := concat(
		uleb(1), cstr("main"),
		uleb(2), cstr("argc"),
		uleb(2), cstr("argv"),
		[]byte{0}, // end of main's children
	)
	info := buildCU(4, 0, 8, die)

	f, err := New(memLoader{
		loader.KindInfo:   info,
		loader.KindAbbrev: abbrev,
		loader.KindStr:    str,
	}, binary.LittleEndian)
	require.NoError(t, err)

	units, err := f.Units()
	require.NoError(t, err)
	r := units[0].Root()

	top, err := r.Next()
	require.NoError(t, err)
	require.True(t, top.Children)

	var names []string
	err = r.Children(top, func(child *Entry) (bool, error) {
		v, err := child.Val(AttrName)
		require.NoError(t, err)
		s, err := v.String()
		require.NoError(t, err)
		names = append(names, s)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"argc", "argv"}, names)

	next, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, next)
}

// TestAbbrevStorageHeuristic is spec.md §8 scenario 3: codes {1,2,3}
// pass the max_code*10 < count*15 density test and are stored as a slice;
// codes {1,5} fail it and fall back to the map, which still finds present
// codes and rejects absent ones.
func TestAbbrevStorageHeuristic(t *testing.T) {
	dense := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false},
		{code: 2, tag: TagSubprogram, children: false},
		{code: 3, tag: TagVariable, children: false},
	})
	table, err := decodeAbbrevTable(sectionSlice{data: dense}, 0)
	require.NoError(t, err)
	assert.False(t, table.useMap)
	d, ok := table.lookup(2)
	require.True(t, ok)
	assert.Equal(t, TagSubprogram, d.Tag)

	sparse := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false},
		{code: 5, tag: TagSubprogram, children: false},
	})
	table2, err := decodeAbbrevTable(sectionSlice{data: sparse}, 0)
	require.NoError(t, err)
	assert.True(t, table2.useMap)
	d2, ok := table2.lookup(5)
	require.True(t, ok)
	assert.Equal(t, TagSubprogram, d2.Tag)
	_, ok = table2.lookup(2)
	assert.False(t, ok)
}

// TestIndirectForm is spec.md §8 scenario 4: DW_FORM_indirect defers its
// actual form to a following ULEB128, and must decode exactly as if the
// abbreviation had declared that form directly.
func TestIndirectForm(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagBaseType, children: false, fields: []abbrevField{
			{Attr: AttrByteSize, Form: FormIndirect},
		}},
	})
	str := []byte{0}
	die := concat(uleb(1), uleb(uint64(FormUdata)), uleb(4))
	info := buildCU(4, 0, 8, die)

	f, err := New(memLoader{
		loader.KindInfo:   info,
		loader.KindAbbrev: abbrev,
		loader.KindStr:    str,
	}, binary.LittleEndian)
	require.NoError(t, err)

	units, err := f.Units()
	require.NoError(t, err)
	entry, err := units[0].Root().Next()
	require.NoError(t, err)

	v, err := entry.Val(AttrByteSize)
	require.NoError(t, err)
	assert.Equal(t, FormUdata, v.Form)
	n, err := v.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
}

// TestRangeListBaseAddressSelection is spec.md §8 scenario 5: an all-ones
// entry changes the base address for every following (low, high) pair
// until the list's terminating (0, 0) entry.
func TestRangeListBaseAddressSelection(t *testing.T) {
	ranges := concat(
		u64(0xffffffffffffffff), u64(0x2000), // select base 0x2000
		u64(0x10), u64(0x20), // [0x2010, 0x2020)
		u64(0x30), u64(0x40), // [0x2030, 0x2040)
		u64(0), u64(0), // end of list
	)

	f := &File{ranges: sectionSlice{data: ranges, order: binary.LittleEndian}}
	unit := &Unit{AddressSize: 8}

	got, err := f.RangesAt(unit, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []PCRange{
		{Low: 0x2010, High: 0x2020},
		{Low: 0x2030, High: 0x2040},
	}, got)
}

// TestSecOffsetComputedType is spec.md §4.8: DW_FORM_sec_offset's class
// depends on the attribute carrying it, not the form alone.
func TestSecOffsetComputedType(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false, fields: []abbrevField{
			{Attr: AttrStmtList, Form: FormSecOffset},
			{Attr: AttrRanges, Form: FormSecOffset},
			{Attr: AttrLocation, Form: FormSecOffset},
			{Attr: AttrMacroInfo, Form: FormSecOffset},
		}},
	})
	die := concat(uleb(1), u32(0x10), u32(0x20), u32(0x30), u32(0x40))
	info := buildCU(4, 0, 8, die)

	f, err := New(memLoader{
		loader.KindInfo:   info,
		loader.KindAbbrev: abbrev,
	}, binary.LittleEndian)
	require.NoError(t, err)
	units, err := f.Units()
	require.NoError(t, err)
	entry, err := units[0].Root().Next()
	require.NoError(t, err)

	stmtList, err := entry.Val(AttrStmtList)
	require.NoError(t, err)
	assert.Equal(t, ClassLinePtr, stmtList.Class())

	ranges, err := entry.Val(AttrRanges)
	require.NoError(t, err)
	assert.Equal(t, ClassRangeListPtr, ranges.Class())

	location, err := entry.Val(AttrLocation)
	require.NoError(t, err)
	assert.Equal(t, ClassLocListPtr, location.Class())

	macroInfo, err := entry.Val(AttrMacroInfo)
	require.NoError(t, err)
	assert.Equal(t, ClassMacPtr, macroInfo.Class())
}

// TestSecOffsetUnexpectedAttributeErrors is spec.md §4.8's "else ->
// FormatError": an attribute outside the sec_offset table carrying that
// form is malformed input, not a silently-accepted pointer class.
func TestSecOffsetUnexpectedAttributeErrors(t *testing.T) {
	abbrev := buildAbbrevSection([]abbrevSpec{
		{code: 1, tag: TagCompileUnit, children: false, fields: []abbrevField{
			{Attr: AttrName, Form: FormSecOffset},
		}},
	})
	_, err := decodeAbbrevTable(sectionSlice{data: abbrev}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}

// TestValueTypeMismatchRaises confirms the ValueTypeMismatch taxonomy
// entry (spec.md §7): asking a string-classed value for Bytes() errors.
func TestValueTypeMismatchRaises(t *testing.T) {
	v := Value{Form: FormString, class: ClassString, s: "x"}
	_, err := v.Bytes()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueType)
}

// TestAttrLookupMissRaisesKeyError confirms Entry.Val reports ErrKey
// (spec.md §7 KeyError) on a missing attribute, not a zero Value.
func TestAttrLookupMissRaisesKeyError(t *testing.T) {
	e := &Entry{Tag: TagCompileUnit}
	_, err := e.Val(AttrName)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKey)
}
