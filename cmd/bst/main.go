package main

import (
	"os"

	"github.com/SystemBuilders/datastructs/internal/bst"
	"github.com/SystemBuilders/datastructs/internal/cmdutil"
	"github.com/SystemBuilders/datastructs/internal/console"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(cmdutil.Main("bst", func(log zerolog.Logger, p console.Prompter, pr *console.Printer) *console.Menu {
		return console.NewTreeMenu(log, bst.New(log), p, pr)
	}))
}
