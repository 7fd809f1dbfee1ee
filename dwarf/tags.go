package dwarf

import "fmt"

// Tag identifies the kind of a debugging information entry (DW_TAG_*,
// Table 18 of the DWARF standard). Values are grounded on the constant
// table in golang-china-golangdoc.translations/src/cmd/link/internal/ld
// (a translation of the Go linker's own DWARF producer constants).
type Tag uint32

const (
	TagArrayType              Tag = 0x01
	TagClassType              Tag = 0x02
	TagEntryPoint             Tag = 0x03
	TagEnumerationType        Tag = 0x04
	TagFormalParameter        Tag = 0x05
	TagImportedDeclaration    Tag = 0x08
	TagLabel                  Tag = 0x0a
	TagLexicalBlock           Tag = 0x0b
	TagMember                 Tag = 0x0d
	TagPointerType            Tag = 0x0f
	TagReferenceType          Tag = 0x10
	TagCompileUnit            Tag = 0x11
	TagStringType             Tag = 0x12
	TagStructureType          Tag = 0x13
	TagSubroutineType         Tag = 0x15
	TagTypedef                Tag = 0x16
	TagUnionType              Tag = 0x17
	TagUnspecifiedParameters  Tag = 0x18
	TagVariant                Tag = 0x19
	TagCommonBlock            Tag = 0x1a
	TagCommonInclusion        Tag = 0x1b
	TagInheritance            Tag = 0x1c
	TagInlinedSubroutine      Tag = 0x1d
	TagModule                 Tag = 0x1e
	TagPtrToMemberType        Tag = 0x1f
	TagSetType                Tag = 0x20
	TagSubrangeType           Tag = 0x21
	TagWithStmt               Tag = 0x22
	TagAccessDeclaration      Tag = 0x23
	TagBaseType               Tag = 0x24
	TagCatchBlock             Tag = 0x25
	TagConstType              Tag = 0x26
	TagConstant               Tag = 0x27
	TagEnumerator             Tag = 0x28
	TagFileType               Tag = 0x29
	TagFriend                 Tag = 0x2a
	TagNamelist               Tag = 0x2b
	TagNamelistItem           Tag = 0x2c
	TagPackedType             Tag = 0x2d
	TagSubprogram             Tag = 0x2e
	TagTemplateTypeParameter  Tag = 0x2f
	TagTemplateValueParameter Tag = 0x30
	TagThrownType             Tag = 0x31
	TagTryBlock               Tag = 0x32
	TagVariantPart            Tag = 0x33
	TagVariable               Tag = 0x34
	TagVolatileType           Tag = 0x35
	// DWARF3
	TagDwarfProcedure  Tag = 0x36
	TagRestrictType    Tag = 0x37
	TagInterfaceType   Tag = 0x38
	TagNamespace       Tag = 0x39
	TagImportedModule  Tag = 0x3a
	TagUnspecifiedType Tag = 0x3b
	TagPartialUnit     Tag = 0x3c
	TagImportedUnit    Tag = 0x3d
	TagCondition       Tag = 0x3f
	TagSharedType      Tag = 0x40
	// DWARF4
	TagTypeUnit             Tag = 0x41
	TagRvalueReferenceType  Tag = 0x42
	TagTemplateAlias        Tag = 0x43

	TagLoUser Tag = 0x4080
	TagHiUser Tag = 0xffff
)

var tagNames = map[Tag]string{
	TagArrayType:              "array_type",
	TagClassType:              "class_type",
	TagEntryPoint:             "entry_point",
	TagEnumerationType:        "enumeration_type",
	TagFormalParameter:        "formal_parameter",
	TagImportedDeclaration:    "imported_declaration",
	TagLabel:                  "label",
	TagLexicalBlock:           "lexical_block",
	TagMember:                 "member",
	TagPointerType:            "pointer_type",
	TagReferenceType:          "reference_type",
	TagCompileUnit:            "compile_unit",
	TagStringType:             "string_type",
	TagStructureType:          "structure_type",
	TagSubroutineType:         "subroutine_type",
	TagTypedef:                "typedef",
	TagUnionType:              "union_type",
	TagUnspecifiedParameters:  "unspecified_parameters",
	TagVariant:                "variant",
	TagCommonBlock:            "common_block",
	TagCommonInclusion:        "common_inclusion",
	TagInheritance:            "inheritance",
	TagInlinedSubroutine:      "inlined_subroutine",
	TagModule:                 "module",
	TagPtrToMemberType:        "ptr_to_member_type",
	TagSetType:                "set_type",
	TagSubrangeType:           "subrange_type",
	TagWithStmt:               "with_stmt",
	TagAccessDeclaration:      "access_declaration",
	TagBaseType:               "base_type",
	TagCatchBlock:             "catch_block",
	TagConstType:              "const_type",
	TagConstant:               "constant",
	TagEnumerator:             "enumerator",
	TagFileType:               "file_type",
	TagFriend:                 "friend",
	TagNamelist:               "namelist",
	TagNamelistItem:           "namelist_item",
	TagPackedType:             "packed_type",
	TagSubprogram:             "subprogram",
	TagTemplateTypeParameter:  "template_type_parameter",
	TagTemplateValueParameter: "template_value_parameter",
	TagThrownType:             "thrown_type",
	TagTryBlock:               "try_block",
	TagVariantPart:            "variant_part",
	TagVariable:               "variable",
	TagVolatileType:           "volatile_type",
	TagDwarfProcedure:         "dwarf_procedure",
	TagRestrictType:           "restrict_type",
	TagInterfaceType:          "interface_type",
	TagNamespace:              "namespace",
	TagImportedModule:         "imported_module",
	TagUnspecifiedType:        "unspecified_type",
	TagPartialUnit:            "partial_unit",
	TagImportedUnit:           "imported_unit",
	TagCondition:              "condition",
	TagSharedType:             "shared_type",
	TagTypeUnit:               "type_unit",
	TagRvalueReferenceType:    "rvalue_reference_type",
	TagTemplateAlias:          "template_alias",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return "DW_TAG_" + n
	}
	return fmt.Sprintf("DW_TAG_unknown(0x%x)", uint32(t))
}
