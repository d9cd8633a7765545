package cmdutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SystemBuilders/datastructs/internal/config"
	"github.com/SystemBuilders/datastructs/internal/console"
	"github.com/SystemBuilders/datastructs/internal/linkedlist"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, name, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readAll(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return string(data)
}

func listMenu(log zerolog.Logger, prompter console.Prompter, printer *console.Printer) *console.Menu {
	return console.NewListMenu(log, linkedlist.New(log), prompter, printer)
}

func newEnv(t *testing.T, stdin string, args ...string) Env {
	return Env{
		Args:   append([]string{"-env", filepath.Join(t.TempDir(), ".env")}, args...),
		Stdin:  tempFile(t, "stdin", stdin),
		Stdout: tempFile(t, "stdout", ""),
		Stderr: tempFile(t, "stderr", ""),
	}
}

func TestRun(t *testing.T) {
	t.Run("runs the menu until exit", func(t *testing.T) {
		env := newEnv(t, "1\n4\n5\n0\n", "-log-level", "debug")

		assert.Equal(t, 0, Run("linkedlist", env, listMenu))

		out := readAll(t, env.Stdout)
		assert.Contains(t, out, "session ")
		assert.Contains(t, out, "[LIST]: [4]")
		assert.Contains(t, out, "released 1 nodes, bye")

		logs := readAll(t, env.Stderr)
		assert.Contains(t, logs, `"structure":"linkedlist"`)
		assert.Contains(t, logs, `"message":"inserted at head"`)
	})

	t.Run("configuration file", func(t *testing.T) {
		cfg := tempFile(t, "config.yaml", "log_level: error\nprompt: line\n")
		env := newEnv(t, "0\n", "-config", cfg.Name())

		assert.Equal(t, 0, Run("linkedlist", env, listMenu))
		assert.Empty(t, readAll(t, env.Stderr))
	})

	t.Run("bad flag", func(t *testing.T) {
		env := newEnv(t, "", "-nope")
		assert.Equal(t, 1, Run("linkedlist", env, listMenu))
	})

	t.Run("bad prompt mode", func(t *testing.T) {
		env := newEnv(t, "", "-prompt", "psychic")
		assert.Equal(t, 1, Run("linkedlist", env, listMenu))
		assert.True(t, strings.Contains(readAll(t, env.Stderr), "unknown prompt mode"))
	})
}

func TestNewPrompter(t *testing.T) {
	in := strings.NewReader("")

	assert.IsType(t, &console.LinePrompter{}, newPrompter(config.PromptLine, true, in, os.Stdout))
	assert.IsType(t, &console.LinePrompter{}, newPrompter(config.PromptAuto, false, in, os.Stdout))
	assert.IsType(t, &console.FormPrompter{}, newPrompter(config.PromptAuto, true, in, os.Stdout))
	assert.IsType(t, &console.FormPrompter{}, newPrompter(config.PromptForm, false, in, os.Stdout))
}
