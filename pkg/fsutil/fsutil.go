// Package fsutil reads Markdown sources and writes HTML sinks.
// A path of "-" selects the standard stream instead of a file.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// StdioPath selects standard input or standard output.
const StdioPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Resource operations reported by ResourceError.
const (
	OpOpen  = "open"
	OpRead  = "read"
	OpWrite = "write"
)

// ResourceError reports a source that could not be opened or read, or a
// sink that could not be written.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("error while trying to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
}

// ReadFile reads a file and returns its content along with metadata.
// Failures are *ResourceError values wrapping one of the sentinel errors
// where one applies.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &ResourceError{Op: OpOpen, Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		}
		if os.IsPermission(err) {
			return nil, nil, &ResourceError{Op: OpOpen, Path: path, Err: fmt.Errorf("%w: %w", ErrPermissionDenied, err)}
		}
		return nil, nil, &ResourceError{Op: OpOpen, Path: path, Err: err}
	}

	if stat.IsDir() {
		return nil, nil, &ResourceError{Op: OpOpen, Path: path, Err: ErrIsDirectory}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, &ResourceError{Op: OpOpen, Path: path, Err: fmt.Errorf("%w: %w", ErrPermissionDenied, err)}
		}
		return nil, nil, &ResourceError{Op: OpRead, Path: path, Err: err}
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}

	return content, info, nil
}
