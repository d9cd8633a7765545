package cmdutil

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SystemBuilders/datastructs/internal/config"
	"github.com/SystemBuilders/datastructs/internal/console"
	"github.com/SystemBuilders/datastructs/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// MenuFactory builds the menu of a front end from its wiring.
type MenuFactory func(log zerolog.Logger, prompter console.Prompter, printer *console.Printer) *console.Menu

// Env is the process environment a front end runs in.
type Env struct {
	Args   []string
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Main runs the named front end against the process environment and
// returns its exit code.
func Main(structure string, build MenuFactory) int {
	return Run(structure, Env{
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, build)
}

// Run parses flags, loads the configuration and runs the menu until the
// user exits. It returns 0 on a normal exit and 1 otherwise.
func Run(structure string, env Env, build MenuFactory) int {
	fs := flag.NewFlagSet(structure, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	envFile := fs.String("env", ".env", "path to .env file (ignored if missing)")
	logLevel := fs.String("log-level", "", "log level, overrides the configuration")
	prompt := fs.String("prompt", "", "prompt mode: auto, form or line; overrides the configuration")
	if err := fs.Parse(env.Args); err != nil {
		return 1
	}

	cfg, err := loadConfig(*envFile, *configPath, *logLevel, *prompt)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	sess := session.NewSession(structure)
	log := sess.Logger(config.NewLogger(env.Stderr, level, isTerminal(env.Stderr)))

	interactive := isTerminal(env.Stdin) && isTerminal(env.Stdout)
	printer := console.NewPrinter(env.Stdout, cfg.Color && interactive)
	prompter := newPrompter(cfg.Prompt, interactive, env.Stdin, env.Stdout)

	log.Info().Str("prompt", cfg.Prompt).Msg("session started")
	printer.Dim("session %s", sess.SessionID())

	if err := build(log, prompter, printer).Run(); err != nil {
		log.Error().Err(err).Msg("session failed")
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return 1
	}
	log.Info().Msg("session ended")
	return 0
}

// loadConfig applies, in order, the .env file, the configuration file
// and the flag overrides.
func loadConfig(envFile, configPath, logLevel, prompt string) (config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if prompt != "" {
		cfg.Prompt = prompt
	}
	return cfg, cfg.Validate()
}

func newPrompter(mode string, interactive bool, in io.Reader, out io.Writer) console.Prompter {
	switch mode {
	case config.PromptForm:
		return console.NewFormPrompter(!interactive)
	case config.PromptAuto:
		if interactive {
			return console.NewFormPrompter(false)
		}
	}
	return console.NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
