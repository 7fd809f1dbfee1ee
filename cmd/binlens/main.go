// Command binlens inspects ELF object files and their embedded DWARF
// debugging information: sections, segments, symbols, and the
// compilation-unit/DIE tree.
package main

import "github.com/binlens/binlens/cmd/binlens/internal/cli"

func main() {
	cli.Execute()
}
