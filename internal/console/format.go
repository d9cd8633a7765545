package console

import (
	"strconv"
	"strings"
)

// FormatChain renders values as linked cells, e.g. "[1] -> [2] -> [3]".
func FormatChain(values []int) string {
	return join(values, " -> ")
}

// FormatSequence renders values as space separated cells, e.g.
// "[5] [3] [1]".
func FormatSequence(values []int) string {
	return join(values, " ")
}

func join(values []int, sep string) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = "[" + strconv.Itoa(v) + "]"
	}
	return strings.Join(cells, sep)
}
