// Package fsutil provides file system utilities for topview.
// It handles topology input (including gzip-compressed files) and
// atomic output writes.
package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrBadGzip indicates a file with a gzip magic that failed to
	// decompress.
	ErrBadGzip = errors.New("corrupt gzip input")
)

// gzipMagic is the two-byte header of every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile reads a file's raw bytes with categorized errors.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}

// IsGzip reports whether the content starts with the gzip magic bytes.
func IsGzip(content []byte) bool {
	return len(content) >= len(gzipMagic) && bytes.Equal(content[:len(gzipMagic)], gzipMagic)
}

// ReadText reads a file and transparently decompresses gzip input.
// The second return reports whether the file was compressed.
func ReadText(ctx context.Context, path string) (string, bool, error) {
	content, err := ReadFile(ctx, path)
	if err != nil {
		return "", false, err
	}
	if !IsGzip(content) {
		return string(content), false, nil
	}
	reader, err := gzip.NewReader(bytes.NewReader(content))
	if err != nil {
		return "", true, fmt.Errorf("%w: %s: %w", ErrBadGzip, path, err)
	}
	defer reader.Close()
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return "", true, fmt.Errorf("%w: %s: %w", ErrBadGzip, path, err)
	}
	return string(decompressed), true, nil
}

// WriteGzip compresses content and writes it atomically.
func WriteGzip(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	var buf bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return fmt.Errorf("gzip writer: %w", err)
	}
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("gzip write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("gzip close: %w", err)
	}
	return WriteAtomic(ctx, path, buf.Bytes(), mode)
}
