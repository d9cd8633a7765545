package main

import (
	"os"

	"github.com/SystemBuilders/datastructs/internal/cmdutil"
	"github.com/SystemBuilders/datastructs/internal/console"
	"github.com/SystemBuilders/datastructs/internal/linkedlist"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(cmdutil.Main("linkedlist", func(log zerolog.Logger, p console.Prompter, pr *console.Printer) *console.Menu {
		return console.NewListMenu(log, linkedlist.New(log), p, pr)
	}))
}
