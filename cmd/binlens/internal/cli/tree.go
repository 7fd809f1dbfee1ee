package cli

import (
	"fmt"
	"strings"

	"github.com/binlens/binlens/dwarf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var interactive bool

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the DWARF compilation-unit/DIE tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		elfFile, err := openELF(args[0])
		if err != nil {
			return err
		}
		dw, err := dwarf.FromELF(elfFile)
		if err != nil {
			return fmt.Errorf("binlens: %w", err)
		}
		units, err := dw.Units()
		if err != nil {
			return fmt.Errorf("binlens: %w", err)
		}

		if interactive {
			return runInteractiveTree(units)
		}
		for _, u := range units {
			if err := printUnit(u); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&interactive, "interactive", false, "browse the tree in a terminal UI")
}

func printUnit(u *dwarf.Unit) error {
	r := u.Root()
	root, err := r.Next()
	if err != nil {
		return fmt.Errorf("binlens: %w", err)
	}
	if root == nil {
		return nil
	}
	return printEntry(r, root, 0)
}

func printEntry(r *dwarf.Reader, e *dwarf.Entry, depth int) error {
	indent := strings.Repeat("  ", depth)
	tag := color.New(color.FgMagenta).Sprint(e.Tag)
	fmt.Printf("%s%s @0x%x\n", indent, tag, e.Offset)
	for _, field := range e.Fields() {
		fmt.Printf("%s  %s = %s\n", indent, field.Attr, formatValue(field.Val))
	}

	if !e.Children {
		return nil
	}
	return r.Children(e, func(child *dwarf.Entry) (bool, error) {
		if err := printEntry(r, child, depth+1); err != nil {
			return false, err
		}
		return true, nil
	})
}

func formatValue(v dwarf.Value) string {
	switch v.Class() {
	case dwarf.ClassString:
		s, _ := v.String()
		return s
	case dwarf.ClassConstant, dwarf.ClassAddress, dwarf.ClassRangeListPtr,
		dwarf.ClassLinePtr, dwarf.ClassLocListPtr, dwarf.ClassMacPtr:
		n, _ := v.Uint64()
		return fmt.Sprintf("0x%x", n)
	case dwarf.ClassFlag:
		b, _ := v.Bool()
		return fmt.Sprintf("%v", b)
	case dwarf.ClassReference:
		ref, _ := v.Ref()
		return fmt.Sprintf("-> 0x%x", ref)
	case dwarf.ClassBlock, dwarf.ClassExprLoc:
		b, _ := v.Bytes()
		return fmt.Sprintf("<%d bytes>", len(b))
	default:
		return "?"
	}
}
