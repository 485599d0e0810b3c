package pretty

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/yaklabco/topview/pkg/tables"
)

// FormatTable renders one summary table with a title line and an
// ASCII grid.
func FormatTable(w io.Writer, styles *Styles, name string, table *tables.Table) {
	fmt.Fprintln(w, styles.TableTitle.Render(name))
	if table == nil || len(table.Rows) == 0 {
		fmt.Fprintln(w, styles.Dim.Render("(empty)"))
		return
	}

	headers := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		headers[i] = styles.TableHeader.Render(column)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetColWidth(TerminalWidth(w) / 2)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(true)
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = FormatCell(cell)
		}
		tw.Append(cells)
	}
	tw.Render()
}

// FormatCell renders one table cell. Nil cells (missing parameters)
// render empty.
func FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', 6, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
