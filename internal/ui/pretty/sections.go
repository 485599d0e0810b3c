package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/topview/pkg/model"
)

// FormatSections renders the section listing, one flag per line with
// its line range and description.
func FormatSections(w io.Writer, styles *Styles, sections []model.SectionInfo) {
	for _, section := range sections {
		name := styles.SectionName.Render(section.Name)
		if section.Deprecated {
			name += " " + styles.Deprecated.Render("(deprecated)")
		}
		location := styles.Location.Render(
			fmt.Sprintf("lines %d-%d", section.Line+1, section.EndLine+1))
		fmt.Fprintf(w, "%s  %s", name, location)
		if section.Description != "" {
			fmt.Fprintf(w, "  %s", styles.Description.Render(section.Description))
		}
		fmt.Fprintln(w)
	}
}
