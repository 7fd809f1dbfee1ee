package cli

import (
	"fmt"

	"github.com/binlens/binlens/elf"
	"github.com/binlens/binlens/loader"
)

// openELF loads path fully into memory and decodes its ELF header,
// section, and segment tables. Every subcommand in this package starts
// from this one call.
func openELF(path string) (*elf.File, error) {
	l, err := loader.New(path)
	if err != nil {
		return nil, fmt.Errorf("binlens: %w", err)
	}
	f, err := elf.NewFile(l)
	if err != nil {
		return nil, fmt.Errorf("binlens: %s: %w", path, err)
	}
	return f, nil
}
