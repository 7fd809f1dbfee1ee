package elf

import "github.com/binlens/binlens/loader"

// Load implements loader.DWARFLoader: it maps a DWARF section kind to its
// conventional ELF section name (".debug_info", ".debug_abbrev", ...) and
// hands back that section's data, if present — spec.md §6 "The mapping
// from ELF section names to section_kind is .debug_<kind> (fixed table)."
func (f *File) Load(kind loader.SectionKind) ([]byte, bool) {
	s := f.SectionByName(kind.ELFSectionName())
	if !s.Valid() {
		return nil, false
	}
	data, err := s.Data()
	if err != nil || data == nil {
		return nil, false
	}
	return data, true
}
