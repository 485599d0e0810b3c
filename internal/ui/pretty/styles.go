// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Section listing
	SectionName lipgloss.Style
	Deprecated  lipgloss.Style
	Description lipgloss.Style
	Location    lipgloss.Style

	// Span rendering
	LineNumber  lipgloss.Style
	SourceLine  lipgloss.Style
	Highlight   lipgloss.Style
	SpanSection lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableTitle  lipgloss.Style

	// Misc
	Dim lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		SectionName: lipgloss.NewStyle().Bold(true),
		Deprecated:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Location:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		LineNumber:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SourceLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		SpanSection: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableTitle:  lipgloss.NewStyle().Bold(true),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		SectionName: plain,
		Deprecated:  plain,
		Description: plain,
		Location:    plain,
		LineNumber:  plain,
		SourceLine:  plain,
		Highlight:   plain,
		SpanSection: plain,
		TableHeader: plain,
		TableTitle:  plain,
		Dim:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
