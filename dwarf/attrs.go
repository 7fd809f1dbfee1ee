package dwarf

import "fmt"

// Attr identifies an attribute within a DIE (DW_AT_*, Table 20 of the
// DWARF standard), grounded on the same linker constant table as Tag.
type Attr uint32

const (
	AttrSibling             Attr = 0x01
	AttrLocation            Attr = 0x02
	AttrName                Attr = 0x03
	AttrOrdering            Attr = 0x09
	AttrByteSize            Attr = 0x0b
	AttrBitOffset           Attr = 0x0c
	AttrBitSize             Attr = 0x0d
	AttrStmtList            Attr = 0x10
	AttrLowpc               Attr = 0x11
	AttrHighpc              Attr = 0x12
	AttrLanguage            Attr = 0x13
	AttrDiscr               Attr = 0x15
	AttrDiscrValue          Attr = 0x16
	AttrVisibility          Attr = 0x17
	AttrImport              Attr = 0x18
	AttrStringLength        Attr = 0x19
	AttrCommonReference     Attr = 0x1a
	AttrCompDir             Attr = 0x1b
	AttrConstValue          Attr = 0x1c
	AttrContainingType      Attr = 0x1d
	AttrDefaultValue        Attr = 0x1e
	AttrInline              Attr = 0x20
	AttrIsOptional          Attr = 0x21
	AttrLowerBound          Attr = 0x22
	AttrProducer            Attr = 0x25
	AttrPrototyped          Attr = 0x27
	AttrReturnAddr          Attr = 0x2a
	AttrStartScope          Attr = 0x2c
	AttrBitStride           Attr = 0x2e
	AttrUpperBound          Attr = 0x2f
	AttrAbstractOrigin      Attr = 0x31
	AttrAccessibility       Attr = 0x32
	AttrAddrClass           Attr = 0x33
	AttrArtificial          Attr = 0x34
	AttrBaseTypes           Attr = 0x35
	AttrCallingConvention   Attr = 0x36
	AttrCount               Attr = 0x37
	AttrDataMemberLoc       Attr = 0x38
	AttrDeclColumn          Attr = 0x39
	AttrDeclFile            Attr = 0x3a
	AttrDeclLine            Attr = 0x3b
	AttrDeclaration         Attr = 0x3c
	AttrDiscrList           Attr = 0x3d
	AttrEncoding            Attr = 0x3e
	AttrExternal            Attr = 0x3f
	AttrFrameBase           Attr = 0x40
	AttrFriend              Attr = 0x41
	AttrIdentifierCase      Attr = 0x42
	AttrMacroInfo           Attr = 0x43
	AttrNamelistItem        Attr = 0x44
	AttrPriority            Attr = 0x45
	AttrSegment             Attr = 0x46
	AttrSpecification       Attr = 0x47
	AttrStaticLink          Attr = 0x48
	AttrType                Attr = 0x49
	AttrUseLocation         Attr = 0x4a
	AttrVariableParameter   Attr = 0x4b
	AttrVirtuality          Attr = 0x4c
	AttrVtableElemLoc       Attr = 0x4d
	// DWARF3
	AttrAllocated    Attr = 0x4e
	AttrAssociated   Attr = 0x4f
	AttrDataLocation Attr = 0x50
	AttrByteStride   Attr = 0x51
	AttrEntryPc      Attr = 0x52
	AttrUseUTF8      Attr = 0x53
	AttrExtension    Attr = 0x54
	AttrRanges       Attr = 0x55
	AttrTrampoline   Attr = 0x56
	AttrCallColumn   Attr = 0x57
	AttrCallFile     Attr = 0x58
	AttrCallLine     Attr = 0x59
	AttrDescription  Attr = 0x5a
	AttrBinaryScale  Attr = 0x5b
	AttrDecimalScale Attr = 0x5c
	AttrSmall        Attr = 0x5d
	AttrDecimalSign  Attr = 0x5e
	AttrDigitCount   Attr = 0x5f
	AttrPictureStr   Attr = 0x60
	AttrMutable      Attr = 0x61
	AttrThreadsScaled Attr = 0x62
	AttrExplicit     Attr = 0x63
	AttrObjectPointer Attr = 0x64
	AttrEndianity    Attr = 0x65
	AttrElemental    Attr = 0x66
	AttrPure         Attr = 0x67
	AttrRecursive    Attr = 0x68

	AttrLoUser Attr = 0x2000
	AttrHiUser Attr = 0x3fff
)

var attrNames = map[Attr]string{
	AttrSibling: "sibling", AttrLocation: "location", AttrName: "name",
	AttrOrdering: "ordering", AttrByteSize: "byte_size", AttrBitOffset: "bit_offset",
	AttrBitSize: "bit_size", AttrStmtList: "stmt_list", AttrLowpc: "low_pc",
	AttrHighpc: "high_pc", AttrLanguage: "language", AttrDiscr: "discr",
	AttrDiscrValue: "discr_value", AttrVisibility: "visibility", AttrImport: "import",
	AttrStringLength: "string_length", AttrCommonReference: "common_reference",
	AttrCompDir: "comp_dir", AttrConstValue: "const_value", AttrContainingType: "containing_type",
	AttrDefaultValue: "default_value", AttrInline: "inline", AttrIsOptional: "is_optional",
	AttrLowerBound: "lower_bound", AttrProducer: "producer", AttrPrototyped: "prototyped",
	AttrReturnAddr: "return_addr", AttrStartScope: "start_scope", AttrBitStride: "bit_stride",
	AttrUpperBound: "upper_bound", AttrAbstractOrigin: "abstract_origin",
	AttrAccessibility: "accessibility", AttrAddrClass: "address_class", AttrArtificial: "artificial",
	AttrBaseTypes: "base_types", AttrCallingConvention: "calling_convention", AttrCount: "count",
	AttrDataMemberLoc: "data_member_location", AttrDeclColumn: "decl_column",
	AttrDeclFile: "decl_file", AttrDeclLine: "decl_line", AttrDeclaration: "declaration",
	AttrDiscrList: "discr_list", AttrEncoding: "encoding", AttrExternal: "external",
	AttrFrameBase: "frame_base", AttrFriend: "friend", AttrIdentifierCase: "identifier_case",
	AttrMacroInfo: "macro_info", AttrNamelistItem: "namelist_item", AttrPriority: "priority",
	AttrSegment: "segment", AttrSpecification: "specification", AttrStaticLink: "static_link",
	AttrType: "type", AttrUseLocation: "use_location", AttrVariableParameter: "variable_parameter",
	AttrVirtuality: "virtuality", AttrVtableElemLoc: "vtable_elem_location",
	AttrAllocated: "allocated", AttrAssociated: "associated", AttrDataLocation: "data_location",
	AttrByteStride: "byte_stride", AttrEntryPc: "entry_pc", AttrUseUTF8: "use_UTF8",
	AttrExtension: "extension", AttrRanges: "ranges", AttrTrampoline: "trampoline",
	AttrCallColumn: "call_column", AttrCallFile: "call_file", AttrCallLine: "call_line",
	AttrDescription: "description", AttrBinaryScale: "binary_scale", AttrDecimalScale: "decimal_scale",
	AttrSmall: "small", AttrDecimalSign: "decimal_sign", AttrDigitCount: "digit_count",
	AttrPictureStr: "picture_string", AttrMutable: "mutable", AttrThreadsScaled: "threads_scaled",
	AttrExplicit: "explicit", AttrObjectPointer: "object_pointer", AttrEndianity: "endianity",
	AttrElemental: "elemental", AttrPure: "pure", AttrRecursive: "recursive",
}

func (a Attr) String() string {
	if n, ok := attrNames[a]; ok {
		return "DW_AT_" + n
	}
	return fmt.Sprintf("DW_AT_unknown(0x%x)", uint32(a))
}
