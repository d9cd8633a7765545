package console

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

var _ Prompter = (*FormPrompter)(nil)

// FormPrompter implements Prompter with interactive terminal forms. The
// menu is a selectable list and values are typed into a validated input,
// so ErrInvalidInput never reaches the caller. Aborting a form (ctrl+c)
// is reported as io.EOF.
type FormPrompter struct {
	accessible bool
}

// NewFormPrompter returns a FormPrompter. Accessible forms fall back to
// plain prompts, which suits screen readers.
func NewFormPrompter(accessible bool) *FormPrompter {
	return &FormPrompter{accessible: accessible}
}

// Choose shows the options as a select field.
func (fp *FormPrompter) Choose(title string, options []Option) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Key)
	}

	var key int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&key),
	)).WithAccessible(fp.accessible)

	if err := form.Run(); err != nil {
		return 0, formError(err)
	}
	return key, nil
}

// ReadInt shows a single input field accepting integers only.
func (fp *FormPrompter) ReadInt(prompt string) (int, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(prompt).
			Validate(validateInt).
			Value(&raw),
	)).WithAccessible(fp.accessible)

	if err := form.Run(); err != nil {
		return 0, formError(err)
	}
	return parseInt(raw)
}

func validateInt(raw string) error {
	_, err := parseInt(raw)
	return err
}

func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidInput
	}
	return v, nil
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}
