package fsutil

import (
	"context"
	"fmt"
	"io"
)

// ReadSource reads the whole Markdown source named by path.
// StdioPath reads from stdin instead of the filesystem.
func ReadSource(ctx context.Context, path string, stdin io.Reader) (string, error) {
	if path != StdioPath {
		content, _, err := ReadFile(ctx, path)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read source: %w", ctx.Err())
	default:
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", &ResourceError{Op: OpRead, Path: "standard input", Err: err}
	}
	return string(content), nil
}

// WriteSink writes content to the file named by path, or to stdout when
// path is StdioPath.
func WriteSink(ctx context.Context, path, content string, stdout io.Writer) error {
	if path == StdioPath {
		if _, err := io.WriteString(stdout, content); err != nil {
			return &ResourceError{Op: OpWrite, Path: "standard output", Err: err}
		}
		return nil
	}

	if err := WriteAtomic(ctx, path, []byte(content), DefaultFileMode); err != nil {
		return &ResourceError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}
