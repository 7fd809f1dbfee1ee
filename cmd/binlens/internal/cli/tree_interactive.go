package cli

import (
	"fmt"

	"github.com/binlens/binlens/dwarf"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// runInteractiveTree renders every compilation unit as a collapsible
// tview.TreeView, following rivo/tview's own NewTreeView/SetSelectedFunc
// documentation (no pack example calls this library, per DESIGN.md).
func runInteractiveTree(units []*dwarf.Unit) error {
	root := tview.NewTreeNode("compilation units").SetColor(tcell.ColorYellow)
	treeView := tview.NewTreeView().SetRoot(root).SetCurrentNode(root)

	for i, u := range units {
		r := u.Root()
		entry, err := r.Next()
		if err != nil {
			return fmt.Errorf("binlens: %w", err)
		}
		if entry == nil {
			continue
		}
		label := fmt.Sprintf("CU[%d] %s", i, entry.Tag)
		node := tview.NewTreeNode(label).SetReference(entry).SetSelectable(true)
		if err := addDIEChildren(r, entry, node); err != nil {
			return fmt.Errorf("binlens: %w", err)
		}
		root.AddChild(node)
	}

	detail := tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)
	detail.SetBorder(true).SetTitle("attributes")

	treeView.SetSelectedFunc(func(node *tview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
		entry, ok := node.GetReference().(*dwarf.Entry)
		if !ok {
			return
		}
		detail.Clear()
		for _, field := range entry.Fields() {
			fmt.Fprintf(detail, "[yellow]%s[white] = %s\n", field.Attr, formatValue(field.Val))
		}
	})

	layout := tview.NewFlex().
		AddItem(treeView, 0, 1, true).
		AddItem(detail, 0, 1, false)

	app := tview.NewApplication().SetRoot(layout, true)
	return app.Run()
}

// addDIEChildren decodes entry's direct children and attaches them as
// tview tree nodes, recursing into grandchildren. Matches the same
// Reader.Children contract tree.go's plain-text printer uses.
func addDIEChildren(r *dwarf.Reader, entry *dwarf.Entry, node *tview.TreeNode) error {
	if !entry.Children {
		return nil
	}
	return r.Children(entry, func(child *dwarf.Entry) (bool, error) {
		label := fmt.Sprintf("%s @0x%x", child.Tag, child.Offset)
		childNode := tview.NewTreeNode(label).SetReference(child).SetSelectable(true)
		if err := addDIEChildren(r, child, childNode); err != nil {
			return false, err
		}
		node.AddChild(childNode)
		return true, nil
	})
}
