package parm

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt decodes one integer token. Malformed fields recover to zero
// rather than aborting an otherwise usable load; fields written in
// float form (e.g. "12.0") are truncated.
func ParseInt(tok Token) int {
	raw := strings.TrimSpace(tok.Value)
	if raw == "" {
		return 0
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// ParseFloat decodes one float token, accepting Fortran D-notation
// exponents. Malformed fields recover to zero.
func ParseFloat(tok Token) float64 {
	raw := strings.TrimSpace(tok.Value)
	if raw == "" {
		return 0
	}
	raw = strings.NewReplacer("D", "E", "d", "e").Replace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInts decodes a token slice with ParseInt semantics.
func ParseInts(tokens []Token) []int {
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		values[i] = ParseInt(tok)
	}
	return values
}

// ParseFloats decodes a token slice with ParseFloat semantics.
func ParseFloats(tokens []Token) []float64 {
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		values[i] = ParseFloat(tok)
	}
	return values
}

func atoiLoose(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// checkSectionLength validates a section's token count against the
// expected count derived from POINTERS.
func (f *File) checkSectionLength(name string, expected int) (*Section, error) {
	section := f.Section(name)
	if expected == 0 {
		if section != nil && len(section.Tokens) > 0 {
			return nil, FormatErrorf(
				"%s length %d does not match expected %d", name, len(section.Tokens), expected)
		}
		return nil, nil
	}
	if section == nil || len(section.Tokens) == 0 {
		return nil, FormatErrorf("%s section missing (expected %d values)", name, expected)
	}
	if len(section.Tokens) != expected {
		return nil, FormatErrorf(
			"%s length %d does not match expected %d", name, len(section.Tokens), expected)
	}
	return section, nil
}

// IntSection decodes a required integer section, validating its length
// against the POINTERS-derived expectation. An expectation of zero
// requires the section to be absent or empty.
func (f *File) IntSection(name string, expected int) ([]int, error) {
	section, err := f.checkSectionLength(name, expected)
	if err != nil || section == nil {
		return nil, err
	}
	return ParseInts(section.Tokens), nil
}

// FloatSection decodes a required float section, validating its length.
func (f *File) FloatSection(name string, expected int) ([]float64, error) {
	section, err := f.checkSectionLength(name, expected)
	if err != nil || section == nil {
		return nil, err
	}
	return ParseFloats(section.Tokens), nil
}

// StringSection decodes a required section as trimmed strings,
// validating its length.
func (f *File) StringSection(name string, expected int) ([]string, error) {
	section, err := f.checkSectionLength(name, expected)
	if err != nil || section == nil {
		return nil, err
	}
	values := make([]string, len(section.Tokens))
	for i, tok := range section.Tokens {
		values[i] = strings.TrimSpace(tok.Value)
	}
	return values, nil
}

// OptionalFloatSection decodes a float section that whole files may
// legitimately omit (scaling factors). Absent sections yield NaN fill
// so downstream columns render as "no value"; a present section with
// the wrong length is still a format error.
func (f *File) OptionalFloatSection(name string, expected int) ([]float64, error) {
	section := f.Section(name)
	if section == nil {
		if expected <= 0 {
			return nil, nil
		}
		fill := make([]float64, expected)
		for i := range fill {
			fill[i] = math.NaN()
		}
		return fill, nil
	}
	if expected == 0 {
		if len(section.Tokens) > 0 {
			return nil, FormatErrorf(
				"%s length %d does not match expected %d", name, len(section.Tokens), expected)
		}
		return nil, nil
	}
	if len(section.Tokens) == 0 {
		return nil, FormatErrorf("%s section present but empty (expected %d values)", name, expected)
	}
	return f.FloatSection(name, expected)
}
