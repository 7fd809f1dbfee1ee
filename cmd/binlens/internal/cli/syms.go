package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dynamic bool

var symsCmd = &cobra.Command{
	Use:   "syms <file>",
	Short: "List symbol table entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openELF(args[0])
		if err != nil {
			return err
		}

		symtab, err := f.Symbols()
		if dynamic {
			symtab, err = f.DynamicSymbols()
		}
		if err != nil {
			return fmt.Errorf("binlens: %w", err)
		}
		if symtab == nil {
			fmt.Println("(no symbol table)")
			return nil
		}

		syms, err := symtab.All()
		if err != nil {
			return fmt.Errorf("binlens: %w", err)
		}

		color.New(color.Bold).Println("VALUE              SIZE       BIND     TYPE     NAME")
		for _, s := range syms {
			name := color.GreenString(s.Name)
			if !s.Defined() {
				name = color.YellowString(s.Name)
			}
			fmt.Printf("0x%-16x %-10d %-8s %-8s %s\n", s.Value, s.Size, s.Binding, s.Type, name)
		}
		return nil
	},
}

func init() {
	symsCmd.Flags().BoolVar(&dynamic, "dynamic", false, "list .dynsym instead of .symtab")
}
