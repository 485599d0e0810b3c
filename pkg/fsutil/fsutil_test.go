package fsutil_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/yaklabco/topview/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.parm7")
		content := []byte("%VERSION\n%FLAG TITLE\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("returns ErrNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns ErrIsDirectory for directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fsutil.ReadFile(ctx, "irrelevant")
		if err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestReadText(t *testing.T) {
	t.Parallel()

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "plain.parm7")
		if err := os.WriteFile(path, []byte("%FLAG POINTERS\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		text, compressed, err := fsutil.ReadText(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadText() error = %v", err)
		}
		if compressed {
			t.Error("plain file reported as compressed")
		}
		if text != "%FLAG POINTERS\n" {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("gzip input is decompressed", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "packed.parm7.gz")
		original := "%FLAG TITLE\n%FORMAT(20a4)\ntest\n"

		var buf bytes.Buffer
		writer := gzip.NewWriter(&buf)
		if _, err := writer.Write([]byte(original)); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		text, compressed, err := fsutil.ReadText(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadText() error = %v", err)
		}
		if !compressed {
			t.Error("gzip file not reported as compressed")
		}
		if text != original {
			t.Errorf("text = %q, want %q", text, original)
		}
	})

	t.Run("corrupt gzip returns ErrBadGzip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "broken.gz")
		if err := os.WriteFile(path, []byte{0x1f, 0x8b, 0x00, 0x01}, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, _, err := fsutil.ReadText(context.Background(), path)
		if !errors.Is(err, fsutil.ErrBadGzip) {
			t.Errorf("error = %v, want ErrBadGzip", err)
		}
	})
}

func TestIsGzip(t *testing.T) {
	t.Parallel()

	if fsutil.IsGzip([]byte("%FLAG")) {
		t.Error("plain text detected as gzip")
	}
	if !fsutil.IsGzip([]byte{0x1f, 0x8b, 0x08}) {
		t.Error("gzip magic not detected")
	}
	if fsutil.IsGzip([]byte{0x1f}) {
		t.Error("single byte detected as gzip")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdb")
		content := []byte("ATOM      1\nEND\n")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode(), fsutil.DefaultFileMode)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdb")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdb")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})
}

func TestWriteGzipRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.parm7.gz")
	content := []byte("%FLAG POINTERS\n%FORMAT(10I8)\n")

	if err := fsutil.WriteGzip(context.Background(), path, content, 0); err != nil {
		t.Fatalf("WriteGzip() error = %v", err)
	}

	text, compressed, err := fsutil.ReadText(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if !compressed {
		t.Error("written file not detected as gzip")
	}
	if text != string(content) {
		t.Errorf("round trip = %q, want %q", text, content)
	}
}
