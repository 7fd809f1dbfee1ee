package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments <file>",
	Short: "List ELF program header segments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openELF(args[0])
		if err != nil {
			return err
		}
		color.New(color.Bold).Println("IDX  TYPE            OFFSET     VADDR      FILESZ     MEMSZ      FLAGS")
		for i, s := range f.Segments() {
			fmt.Printf("%-4d %-15s 0x%-8x 0x%-8x %-10d %-10d %s\n",
				i, s.Type, s.Offset, s.VAddr, s.FileSize, s.MemSize, s.Flags)
		}
		return nil
	},
}
