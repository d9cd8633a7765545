package console

import (
	"errors"

	"github.com/SystemBuilders/datastructs/internal/bst"
	"github.com/rs/zerolog"
)

// NewTreeMenu builds the menu driving a binary search tree. Leaving the
// menu tears the tree down.
func NewTreeMenu(log zerolog.Logger, tree bst.SearchTree, prompter Prompter, printer *Printer) *Menu {
	traversal := func(title string, order func() ([]int, error)) func() error {
		return func() error {
			printer.Title("--- %s ---", title)
			values, err := order()
			if errors.Is(err, bst.ErrEmptyTree) {
				printer.Error("tree is empty")
				return nil
			}
			if err != nil {
				return err
			}
			printer.Info("%s", FormatSequence(values))
			return nil
		}
	}

	items := []Item{
		{Key: 1, Label: "Insert node", Action: func() error {
			v, err := prompter.ReadInt("Value to insert")
			if err != nil {
				return err
			}
			switch err := tree.Insert(v); {
			case errors.Is(err, bst.ErrDuplicateValue):
				printer.Error("value %d already in the tree, insertion ignored", v)
			case err != nil:
				return err
			default:
				printer.Success("value %d inserted", v)
			}
			return nil
		}},
		{Key: 2, Label: "Remove node", Action: func() error {
			v, err := prompter.ReadInt("Value to remove")
			if err != nil {
				return err
			}
			switch err := tree.Delete(v); {
			case errors.Is(err, bst.ErrValueNotFound):
				printer.Error("value %d not found in the tree", v)
			case err != nil:
				return err
			default:
				printer.Success("node %d removed", v)
			}
			return nil
		}},
		{Key: 3, Label: "Pre-order (root, left, right)", Action: traversal("Pre-order", tree.PreOrder)},
		{Key: 4, Label: "In-order (left, root, right)", Action: traversal("In-order", tree.InOrder)},
		{Key: 5, Label: "Post-order (left, right, root)", Action: traversal("Post-order", tree.PostOrder)},
		{Key: 6, Label: "Search", Action: func() error {
			v, err := prompter.ReadInt("Value to search")
			if err != nil {
				return err
			}
			if tree.Contains(v) {
				printer.Success("value %d found", v)
			} else {
				printer.Error("value %d not found", v)
			}
			return nil
		}},
	}

	onExit := func() {
		released := tree.Teardown()
		printer.Dim("released %d nodes, bye", released)
	}

	return NewMenu(log, "Binary search tree operations", items, prompter, printer, onExit)
}
