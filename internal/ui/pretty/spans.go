package pretty

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yaklabco/topview/pkg/highlight"
)

// FormatSpans renders highlighted source lines: each line that carries
// at least one span is printed once with its spans emphasized, followed
// by the section names the spans belong to.
func FormatSpans(w io.Writer, styles *Styles, lines []string, spans []highlight.Span) {
	byLine := make(map[int][]highlight.Span)
	for _, span := range spans {
		byLine[span.Line] = append(byLine[span.Line], span)
	}
	lineNumbers := make([]int, 0, len(byLine))
	for line := range byLine {
		lineNumbers = append(lineNumbers, line)
	}
	sort.Ints(lineNumbers)

	for _, lineNo := range lineNumbers {
		if lineNo < 0 || lineNo >= len(lines) {
			continue
		}
		lineSpans := byLine[lineNo]
		sort.Slice(lineSpans, func(i, j int) bool { return lineSpans[i].Start < lineSpans[j].Start })
		fmt.Fprintf(w, "%s %s  %s\n",
			styles.LineNumber.Render(fmt.Sprintf("%6d |", lineNo+1)),
			renderLine(styles, lines[lineNo], lineSpans),
			styles.SpanSection.Render(sectionList(lineSpans)),
		)
	}
}

// renderLine rebuilds one source line with span ranges styled.
// Overlapping or unsorted ranges degrade to plain text for the
// overlapped portion.
func renderLine(styles *Styles, line string, spans []highlight.Span) string {
	var b strings.Builder
	cursor := 0
	for _, span := range spans {
		start, end := span.Start, span.End
		if start < cursor {
			start = cursor
		}
		if end > len(line) {
			end = len(line)
		}
		if start >= end {
			continue
		}
		b.WriteString(styles.SourceLine.Render(line[cursor:start]))
		b.WriteString(styles.Highlight.Render(line[start:end]))
		cursor = end
	}
	if cursor < len(line) {
		b.WriteString(styles.SourceLine.Render(line[cursor:]))
	}
	return b.String()
}

func sectionList(spans []highlight.Span) string {
	seen := make(map[string]bool)
	var names []string
	for _, span := range spans {
		if span.Section == "" || seen[span.Section] {
			continue
		}
		seen[span.Section] = true
		names = append(names, span.Section)
	}
	return strings.Join(names, ", ")
}
