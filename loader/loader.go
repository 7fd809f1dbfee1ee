// Package loader specifies the section-loading abstraction that the elf
// and dwarf packages consume. A Loader maps a logical section (by name, by
// offset, or by DWARF section kind) to a contiguous, stable byte slice.
//
// Mapping mechanics (mmap, file descriptors) are deliberately out of
// scope; FileLoader below reads a file fully into memory once, which gives
// the same "valid for the loader's lifetime, never copied again"
// guarantee an mmap-backed loader would, without the platform-specific
// syscalls.
package loader

import (
	"fmt"
	"os"
)

// SectionKind enumerates the DWARF sections a dwarf.File may ask a
// DWARFLoader for, independent of how the underlying object file names or
// stores them.
type SectionKind int

const (
	KindInfo SectionKind = iota
	KindAbbrev
	KindAranges
	KindFrame
	KindLine
	KindLoc
	KindMacinfo
	KindPubnames
	KindPubtypes
	KindRanges
	KindStr
	KindTypes
)

var kindNames = [...]string{
	KindInfo:      "info",
	KindAbbrev:    "abbrev",
	KindAranges:   "aranges",
	KindFrame:     "frame",
	KindLine:      "line",
	KindLoc:       "loc",
	KindMacinfo:   "macinfo",
	KindPubnames:  "pubnames",
	KindPubtypes:  "pubtypes",
	KindRanges:    "ranges",
	KindStr:       "str",
	KindTypes:     "types",
}

// String returns the bare kind name, e.g. "info".
func (k SectionKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("SectionKind(%d)", int(k))
	}
	return kindNames[k]
}

// ELFSectionName returns the conventional ELF section name for this DWARF
// section kind, e.g. ".debug_info". This is the fixed table spec.md §6
// names as the mapping every DWARFLoader built over an ELF file uses.
func (k SectionKind) ELFSectionName() string {
	return ".debug_" + k.String()
}

// DWARFLoader hands out the byte range backing one DWARF section. ok is
// false when the section is absent from the underlying object; that is
// not itself an error; required-ness is a decision the dwarf package
// makes (spec.md §4.1, §4.4).
type DWARFLoader interface {
	Load(kind SectionKind) (data []byte, ok bool)
}

// ELFLoader hands out an arbitrary byte range of the underlying object
// file, addressed the way ELF section/segment headers address their own
// payload: a file offset and a size.
type ELFLoader interface {
	LoadAt(offset, size uint64) ([]byte, error)
}

// FileLoader reads an entire file into memory once at construction and
// serves every subsequent LoadAt as a sub-slice of that one buffer.
// The buffer is never mutated or resized after New returns, so every
// slice handed out remains valid for FileLoader's lifetime — the same
// contract spec.md §4.1 asks of an mmap-backed loader.
type FileLoader struct {
	data []byte
}

// New reads path fully into memory and returns a loader over its bytes.
func New(path string) (*FileLoader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return &FileLoader{data: data}, nil
}

// NewFromBytes wraps an already-resident buffer (e.g. one built by a test,
// or one received over the wire) without copying it.
func NewFromBytes(data []byte) *FileLoader {
	return &FileLoader{data: data}
}

// Bytes returns the whole backing buffer.
func (l *FileLoader) Bytes() []byte {
	return l.data
}

// LoadAt implements ELFLoader: a bounds-checked sub-slice of the backing
// buffer. Short reads are impossible once the whole file is resident, so
// the only failure mode is an out-of-range request.
func (l *FileLoader) LoadAt(offset, size uint64) ([]byte, error) {
	if offset > uint64(len(l.data)) || size > uint64(len(l.data))-offset {
		return nil, fmt.Errorf("loader: range [%d:%d+%d) out of bounds (file size %d)",
			offset, offset, size, len(l.data))
	}
	return l.data[offset : offset+size], nil
}
