package elf

// Class distinguishes 32-bit from 64-bit ELF, the first half of the
// byte-order/class tag spec.md §3 describes.
type Class uint8

const (
	ClassNone Class = 0
	Class32   Class = 1
	Class64   Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "ELFCLASSNONE"
	}
}

// Data distinguishes little- from big-endian encoding, the other half of
// the class/endian tag.
type Data uint8

const (
	DataNone Data = 0
	DataLSB  Data = 1
	DataMSB  Data = 2
)

func (d Data) String() string {
	switch d {
	case DataLSB:
		return "LSB"
	case DataMSB:
		return "MSB"
	default:
		return "ELFDATANONE"
	}
}

const (
	magic0 = 0x7f
	magic1 = 'E'
	magic2 = 'L'
	magic3 = 'F'

	evVersion    = 1
	identSize    = 16
	idxClass     = 4
	idxData      = 5
	idxVersion   = 6
	idxOSABI     = 7
	idxABIVer    = 8
)

// ObjectType is e_type: the kind of ELF object (relocatable, executable,
// shared, core).
type ObjectType uint16

const (
	TypeNone   ObjectType = 0
	TypeRel    ObjectType = 1
	TypeExec   ObjectType = 2
	TypeDyn    ObjectType = 3
	TypeCore   ObjectType = 4
)

// Machine is e_machine: the target instruction set architecture.
type Machine uint16

const (
	MachineNone  Machine = 0
	Machine386   Machine = 3
	MachineARM   Machine = 40
	MachineX8664 Machine = 62
	MachineAARCH64 Machine = 183
	MachineRISCV Machine = 243
)

// SectionType is sh_type.
type SectionType uint32

const (
	SHTNull     SectionType = 0
	SHTProgBits SectionType = 1
	SHTSymTab   SectionType = 2
	SHTStrTab   SectionType = 3
	SHTRela     SectionType = 4
	SHTHash     SectionType = 5
	SHTDynamic  SectionType = 6
	SHTNote     SectionType = 7
	SHTNoBits   SectionType = 8
	SHTRel      SectionType = 9
	SHTShlib    SectionType = 10
	SHTDynSym   SectionType = 11
)

var sectionTypeNames = map[SectionType]string{
	SHTNull: "NULL", SHTProgBits: "PROGBITS", SHTSymTab: "SYMTAB",
	SHTStrTab: "STRTAB", SHTRela: "RELA", SHTHash: "HASH",
	SHTDynamic: "DYNAMIC", SHTNote: "NOTE", SHTNoBits: "NOBITS",
	SHTRel: "REL", SHTShlib: "SHLIB", SHTDynSym: "DYNSYM",
}

func (t SectionType) String() string {
	if n, ok := sectionTypeNames[t]; ok {
		return "SHT_" + n
	}
	return "SHT_UNKNOWN"
}

// SectionFlag is a bit in sh_flags.
type SectionFlag uint64

const (
	SHFWrite     SectionFlag = 0x1
	SHFAlloc     SectionFlag = 0x2
	SHFExecInstr SectionFlag = 0x4
)

// SegmentType is p_type.
type SegmentType uint32

const (
	PTNull    SegmentType = 0
	PTLoad    SegmentType = 1
	PTDynamic SegmentType = 2
	PTInterp  SegmentType = 3
	PTNote    SegmentType = 4
	PTShlib   SegmentType = 5
	PTPhdr    SegmentType = 6
	PTTLS     SegmentType = 7
)

var segmentTypeNames = map[SegmentType]string{
	PTNull: "NULL", PTLoad: "LOAD", PTDynamic: "DYNAMIC", PTInterp: "INTERP",
	PTNote: "NOTE", PTShlib: "SHLIB", PTPhdr: "PHDR", PTTLS: "TLS",
}

func (t SegmentType) String() string {
	if n, ok := segmentTypeNames[t]; ok {
		return "PT_" + n
	}
	return "PT_UNKNOWN"
}

// SegmentFlag is a bit in p_flags.
type SegmentFlag uint32

const (
	PFExec  SegmentFlag = 0x1
	PFWrite SegmentFlag = 0x2
	PFRead  SegmentFlag = 0x4
)

func (f SegmentFlag) String() string {
	var b [3]byte
	b[0], b[1], b[2] = '-', '-', '-'
	if f&PFRead != 0 {
		b[0] = 'R'
	}
	if f&PFWrite != 0 {
		b[1] = 'W'
	}
	if f&PFExec != 0 {
		b[2] = 'E'
	}
	return string(b[:])
}

// SymbolBinding is the high nibble of st_info (STB_*).
type SymbolBinding uint8

const (
	BindLocal  SymbolBinding = 0
	BindGlobal SymbolBinding = 1
	BindWeak   SymbolBinding = 2
)

var symbolBindingNames = map[SymbolBinding]string{
	BindLocal: "LOCAL", BindGlobal: "GLOBAL", BindWeak: "WEAK",
}

func (b SymbolBinding) String() string {
	if n, ok := symbolBindingNames[b]; ok {
		return n
	}
	return "UNKNOWN"
}

// SymbolType is the low nibble of st_info (STT_*).
type SymbolType uint8

const (
	SymTypeNoType  SymbolType = 0
	SymTypeObject  SymbolType = 1
	SymTypeFunc    SymbolType = 2
	SymTypeSection SymbolType = 3
	SymTypeFile    SymbolType = 4
)

var symbolTypeNames = map[SymbolType]string{
	SymTypeNoType: "NOTYPE", SymTypeObject: "OBJECT", SymTypeFunc: "FUNC",
	SymTypeSection: "SECTION", SymTypeFile: "FILE",
}

func (t SymbolType) String() string {
	if n, ok := symbolTypeNames[t]; ok {
		return n
	}
	return "UNKNOWN"
}

// Reserved section-header indices (SHN_*).
const (
	SHNUndef  = 0
	SHNAbs    = 0xfff1
	SHNCommon = 0xfff2
)
