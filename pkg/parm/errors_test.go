package parm_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/topview/pkg/parm"
)

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := parm.NewError(parm.CodeNotFound, "Atom serial 9 not found")
	if err.Error() != "not_found: Atom serial 9 not found" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want parm.Code
	}{
		{"tagged", parm.FormatErrorf("bad section"), parm.CodeFormat},
		{"wrapped", fmt.Errorf("load: %w", parm.NotFoundf("missing")), parm.CodeNotFound},
		{"untagged defaults to io", errors.New("disk on fire"), parm.CodeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parm.CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	err := parm.Errorf(parm.CodeInvalidInput, "row %d out of range", 12)
	if !parm.IsCode(err, parm.CodeInvalidInput) {
		t.Error("expected IsCode to match the tagged code")
	}
	if parm.IsCode(err, parm.CodeFormat) {
		t.Error("expected IsCode to reject a different code")
	}
	if parm.IsCode(errors.New("plain"), parm.CodeIO) {
		t.Error("expected IsCode to reject untagged errors")
	}
}
