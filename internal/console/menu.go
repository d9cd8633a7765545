package console

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// ExitKey is the menu key that ends the loop.
const ExitKey = 0

// Item is a single action of a menu.
type Item struct {
	Key    int
	Label  string
	Action func() error
}

// Menu runs a numbered, menu driven loop on top of a Prompter.
//
// The loop ends when the user picks ExitKey or input runs out. Invalid
// choices and values are reported and the loop carries on. OnExit runs
// exactly once when the loop ends.
type Menu struct {
	log      zerolog.Logger
	title    string
	items    []Item
	prompter Prompter
	printer  *Printer
	onExit   func()
}

// NewMenu creates a menu with the given items. onExit may be nil.
func NewMenu(log zerolog.Logger, title string, items []Item, prompter Prompter, printer *Printer, onExit func()) *Menu {
	return &Menu{
		log:      log,
		title:    title,
		items:    items,
		prompter: prompter,
		printer:  printer,
		onExit:   onExit,
	}
}

// Options returns the options shown to the user, ending with the exit
// option.
func (m *Menu) Options() []Option {
	options := make([]Option, 0, len(m.items)+1)
	for _, item := range m.items {
		options = append(options, Option{Key: item.Key, Label: item.Label})
	}
	return append(options, Option{Key: ExitKey, Label: "Exit"})
}

// Run loops until the user exits. The returned error is nil on a normal
// exit.
func (m *Menu) Run() error {
	defer m.exit()

	for {
		key, err := m.prompter.Choose(m.title, m.Options())
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrInvalidInput):
			m.printer.Error("invalid option, try again")
			continue
		case err != nil:
			return err
		}

		if key == ExitKey {
			m.log.Debug().Msg("exit chosen")
			return nil
		}

		item, ok := m.lookup(key)
		if !ok {
			m.
				log.
				Debug().
				Int("key", key).
				Msg("unknown option")
			m.printer.Error("invalid option, try again")
			continue
		}

		m.
			log.
			Debug().
			Int("key", key).
			Str("action", item.Label).
			Msg("running action")

		err = item.Action()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrInvalidInput):
			m.printer.Error("invalid input, an integer is required")
		case err != nil:
			return err
		}
	}
}

func (m *Menu) lookup(key int) (Item, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item, true
		}
	}
	return Item{}, false
}

func (m *Menu) exit() {
	if m.onExit != nil {
		m.onExit()
	}
}
