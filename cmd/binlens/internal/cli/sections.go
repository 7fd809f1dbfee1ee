package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "List ELF sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openELF(args[0])
		if err != nil {
			return err
		}
		header := color.New(color.Bold)
		header.Println("IDX  NAME                 TYPE            SIZE       ADDR")
		for i, s := range f.Sections() {
			name := color.CyanString("%-20s", s.Name)
			fmt.Printf("%-4d %s %-15s %-10d 0x%x\n", i, name, s.Type, s.Size, s.Addr)
		}
		return nil
	},
}
