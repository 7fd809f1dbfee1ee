package cli

import (
	"fmt"
	"strconv"

	"github.com/binlens/binlens/dwarf"
	"github.com/spf13/cobra"
)

var findpcCmd = &cobra.Command{
	Use:   "findpc <file> <address>",
	Short: "Find the subprogram DIE whose address range contains an address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("binlens: invalid address %q: %w", args[1], err)
		}

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

		for _, u := range units {
			found, err := searchUnit(dw, u, pc)
			if err != nil {
				return fmt.Errorf("binlens: %w", err)
			}
			if found != nil {
				name, _ := found.Val(dwarf.AttrName)
				n, _ := name.String()
				fmt.Printf("0x%x is in %s %q @0x%x\n", pc, found.Tag, n, found.Offset)
				return nil
			}
		}
		fmt.Printf("0x%x matches no subprogram in this file\n", pc)
		return nil
	},
}

// searchUnit walks every entry in u looking for one whose DW_AT_low_pc/
// DW_AT_high_pc (or DW_AT_ranges, via dwarf.File.RangesAt) brackets pc.
func searchUnit(dw *dwarf.File, u *dwarf.Unit, pc uint64) (*dwarf.Entry, error) {
	r := u.Root()
	var found *dwarf.Entry
	var cuBase uint64

	var walk func(e *dwarf.Entry) (bool, error)
	walk = func(e *dwarf.Entry) (bool, error) {
		if ok, _ := entryContainsPC(dw, u, e, pc, cuBase); ok {
			found = e
			return false, nil
		}
		if e.Children {
			if err := r.Children(e, walk); err != nil {
				return false, err
			}
		}
		return found == nil, nil
	}

	root, err := r.Next()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	// Range lists are relative to the unit's base address: the root DIE's
	// DW_AT_low_pc, or 0 when it has none.
	if lowVal, err := root.Val(dwarf.AttrLowpc); err == nil && lowVal.Class() == dwarf.ClassAddress {
		cuBase, _ = lowVal.Uint64()
	}
	if _, err := walk(root); err != nil {
		return nil, err
	}
	return found, nil
}

func entryContainsPC(dw *dwarf.File, u *dwarf.Unit, e *dwarf.Entry, pc, cuBase uint64) (bool, error) {
	if e.Tag != dwarf.TagSubprogram && e.Tag != dwarf.TagInlinedSubroutine {
		return false, nil
	}

	lowVal, err := e.Val(dwarf.AttrLowpc)
	if err == nil {
		low, _ := lowVal.Uint64()
		highVal, err := e.Val(dwarf.AttrHighpc)
		if err == nil {
			high, _ := highVal.Uint64()
			// DWARF4 allows DW_AT_high_pc to be an offset from low_pc
			// rather than an absolute address; constant-class values are
			// treated as offsets, address-class values as absolute.
			if highVal.Class() != dwarf.ClassAddress {
				high += low
			}
			return pc >= low && pc < high, nil
		}
	}

	rangesVal, err := e.Val(dwarf.AttrRanges)
	if err != nil {
		return false, nil
	}
	off, err := rangesVal.Uint64()
	if err != nil {
		return false, nil
	}
	ranges, err := dw.RangesAt(u, off, cuBase)
	if err != nil {
		return false, err
	}
	for _, rg := range ranges {
		if pc >= rg.Low && pc < rg.High {
			return true, nil
		}
	}
	return false, nil
}
