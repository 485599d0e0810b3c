package pretty

import (
	"io"

	"golang.org/x/term"
)

const defaultTermWidth = 120

// TerminalWidth returns the width of the terminal behind the writer,
// or a default when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
