package dwarf

import "github.com/binlens/binlens/elf"

// FromELF opens the DWARF debug information embedded in an already-open
// ELF file, using the file's own byte order, Header.ByteOrder (spec.md §4.4: a
// dwarf.File is always opened against one object file's DWARFLoader).
func FromELF(f *elf.File) (*File, error) {
	return New(f, f.Header.ByteOrder)
}
