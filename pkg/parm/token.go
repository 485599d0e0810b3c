// Package parm parses AMBER parm7 topology files into addressable,
// position-preserving tokens and decodes the POINTERS length contract.
package parm

// Token is a single fixed-width field sliced out of a section body line.
// Line is the 0-based line index in the source text; Start and End are
// character offsets within that line. Tokens are created once during
// tokenization and never mutated; each identifies exactly one
// highlightable span of the raw file.
type Token struct {
	// Value is the raw field text, untrimmed.
	Value string `json:"value"`

	// Line is the 0-based source line index.
	Line int `json:"line"`

	// Start is the field's first character offset within the line.
	Start int `json:"start"`

	// End is one past the field's last character offset, clamped to the
	// line length for short trailing lines.
	End int `json:"end"`
}

// Section is one %FLAG block of a parm7 file. Sections off the token
// allow-list keep their name and line range but collect no tokens.
type Section struct {
	// Name is the flag name, e.g. "ATOM_NAME".
	Name string `json:"name"`

	// Count is the declared per-line token count from %FORMAT.
	Count int `json:"count"`

	// Width is the declared token width from %FORMAT.
	Width int `json:"width"`

	// FlagLine is the 0-based line index of the %FLAG line.
	FlagLine int `json:"flag_line"`

	// EndLine is the 0-based line index of the section's last line.
	EndLine int `json:"end_line"`

	// Tokens are the sliced fields, in file order.
	Tokens []Token `json:"tokens"`
}

// File is the tokenized form of one parm7 file: raw text, its line
// table, and sections keyed by flag name in file order.
type File struct {
	// Text is the raw file content with invalid UTF-8 replaced.
	Text string

	// Lines is Text split on newlines, without terminators.
	Lines []string

	// Order lists section names in their order of appearance.
	Order []string

	// Sections maps flag name to section. Keys are unique; a repeated
	// flag overwrites the earlier entry, matching last-wins semantics.
	Sections map[string]*Section
}

// Section returns the named section, or nil when absent.
func (f *File) Section(name string) *Section {
	if f == nil {
		return nil
	}
	return f.Sections[name]
}

// HasTokens reports whether the named section exists and carries tokens.
func (f *File) HasTokens(name string) bool {
	s := f.Section(name)
	return s != nil && len(s.Tokens) > 0
}

// LineContent returns the content of the 0-based line index, or an
// empty string when out of range.
func (f *File) LineContent(line int) string {
	if f == nil || line < 0 || line >= len(f.Lines) {
		return ""
	}
	return f.Lines[line]
}
