package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/topview/internal/cli"
	"github.com/yaklabco/topview/pkg/fsutil"
	"github.com/yaklabco/topview/pkg/parm"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, cli.ExitSuccess},
		{"missing file", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitNoInput},
		{"corrupt gzip", fmt.Errorf("read: %w", fsutil.ErrBadGzip), cli.ExitDataError},
		{"invalid input", parm.Errorf(parm.CodeInvalidInput, "bad serial"), cli.ExitInvalidUsage},
		{"format error", parm.Errorf(parm.CodeFormat, "bad section"), cli.ExitDataError},
		{"not found", parm.Errorf(parm.CodeNotFound, "no such atom"), cli.ExitNotFound},
		{"not loaded", parm.Errorf(parm.CodeNotLoaded, "no topology"), cli.ExitInternalError},
		{"wrapped format error", fmt.Errorf("load: %w", parm.Errorf(parm.CodeFormat, "bad")), cli.ExitDataError},
		{"plain error", errors.New("boom"), cli.ExitIOError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
