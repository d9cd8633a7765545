package console

import (
	"errors"

	"github.com/SystemBuilders/datastructs/internal/linkedlist"
	"github.com/rs/zerolog"
)

// NewListMenu builds the menu driving a linked list. Leaving the menu
// tears the list down.
func NewListMenu(log zerolog.Logger, list linkedlist.LinkedList, prompter Prompter, printer *Printer) *Menu {
	items := []Item{
		{Key: 1, Label: "Insert (head)", Action: func() error {
			v, err := prompter.ReadInt("Value to insert")
			if err != nil {
				return err
			}
			list.InsertHead(v)
			printer.Success("value %d inserted at the head", v)
			return nil
		}},
		{Key: 2, Label: "Find", Action: func() error {
			v, err := prompter.ReadInt("Value to find")
			if err != nil {
				return err
			}
			if list.Find(v) != nil {
				printer.Success("value %d found", v)
			} else {
				printer.Error("value %d not found", v)
			}
			return nil
		}},
		{Key: 3, Label: "Update", Action: func() error {
			oldValue, err := prompter.ReadInt("Old value")
			if err != nil {
				return err
			}
			newValue, err := prompter.ReadInt("New value")
			if err != nil {
				return err
			}
			if list.Update(oldValue, newValue) {
				printer.Success("value %d updated to %d", oldValue, newValue)
			} else {
				printer.Error("value %d not found, update failed", oldValue)
			}
			return nil
		}},
		{Key: 4, Label: "Remove", Action: func() error {
			v, err := prompter.ReadInt("Value to remove")
			if err != nil {
				return err
			}
			switch err := list.Remove(v); {
			case errors.Is(err, linkedlist.ErrEmptyList):
				printer.Error("list is empty")
			case errors.Is(err, linkedlist.ErrValueNotFound):
				printer.Error("value %d not found", v)
			case err != nil:
				return err
			default:
				printer.Success("value %d removed", v)
			}
			return nil
		}},
		{Key: 5, Label: "List", Action: func() error {
			values, err := list.Traverse()
			if errors.Is(err, linkedlist.ErrEmptyList) {
				printer.Error("list is empty")
				return nil
			}
			if err != nil {
				return err
			}
			printer.Info("[LIST]: %s", FormatChain(values))
			return nil
		}},
	}

	onExit := func() {
		released := list.Teardown()
		printer.Dim("released %d nodes, bye", released)
	}

	return NewMenu(log, "Linked list operations", items, prompter, printer, onExit)
}
