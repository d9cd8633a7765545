package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Option is a single numbered entry of a menu.
type Option struct {
	Key   int
	Label string
}

// Prompter reads the user's menu choices and integer values.
//
// Both methods return io.EOF once the user can't or won't provide any
// more input, and ErrInvalidInput when the input isn't an integer.
type Prompter interface {
	// Choose presents the options under the title and returns the key
	// picked by the user. The key is not guaranteed to be one of the
	// options.
	Choose(title string, options []Option) (int, error)
	// ReadInt asks for a single integer.
	ReadInt(prompt string) (int, error)
}

var _ Prompter = (*LinePrompter)(nil)

// LinePrompter implements Prompter over a plain line oriented stream.
// Each answer is the first field of a line, the rest of the line is
// discarded. Blank lines are skipped.
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLinePrompter returns a LinePrompter reading answers from in and
// writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Choose prints the numbered options and reads the choice.
func (lp *LinePrompter) Choose(title string, options []Option) (int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n*** %s ***\n", title)
	for _, o := range options {
		fmt.Fprintf(&b, "%d. %s\n", o.Key, o.Label)
	}
	b.WriteString("Choose an option: ")
	if _, err := io.WriteString(lp.out, b.String()); err != nil {
		return 0, err
	}
	return lp.readInt()
}

// ReadInt prints the prompt and reads an integer.
func (lp *LinePrompter) ReadInt(prompt string) (int, error) {
	if _, err := io.WriteString(lp.out, prompt+": "); err != nil {
		return 0, err
	}
	return lp.readInt()
}

func (lp *LinePrompter) readInt() (int, error) {
	for lp.in.Scan() {
		fields := strings.Fields(lp.in.Text())
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, ErrInvalidInput
		}
		return v, nil
	}
	if err := lp.in.Err(); err != nil {
		return 0, fmt.Errorf("console: read input: %w", err)
	}
	return 0, io.EOF
}
