// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldSource = "source"
	FieldOutput = "output"

	// Topology fields.
	FieldSection  = "section"
	FieldSections = "sections"
	FieldAtoms    = "atoms"
	FieldResidues = "residues"
	FieldSerial   = "serial"
	FieldSerials  = "serials"
	FieldTable    = "table"
	FieldRows     = "rows"
	FieldMode     = "mode"
	FieldRowIndex = "row_index"
	FieldCursor   = "cursor"
	FieldTotal    = "total"
	FieldSpans    = "spans"
	FieldGzip     = "gzip"
	FieldRestart  = "restart"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
