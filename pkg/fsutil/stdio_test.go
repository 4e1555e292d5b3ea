package fsutil_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/fsutil"
)

func TestReadSource(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		got, err := fsutil.ReadSource(context.Background(), fsutil.StdioPath, strings.NewReader("# From stdin\n"))
		require.NoError(t, err)
		assert.Equal(t, "# From stdin\n", got)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("body"), 0644))

		got, err := fsutil.ReadSource(context.Background(), path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "body", got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadSource(context.Background(), filepath.Join(t.TempDir(), "nope.md"), nil)

		var resErr *fsutil.ResourceError
		require.True(t, errors.As(err, &resErr))
		assert.Equal(t, fsutil.OpOpen, resErr.Op)
		assert.Contains(t, err.Error(), "error while trying to open")
	})
}

func TestWriteSink(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, fsutil.WriteSink(context.Background(), fsutil.StdioPath, "<hr/>\n", &out))
		assert.Equal(t, "<hr/>\n", out.String())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.html")
		var out bytes.Buffer

		require.NoError(t, fsutil.WriteSink(context.Background(), path, "<hr/>\n", &out))
		assert.Empty(t, out.String())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<hr/>\n", string(got))
	})

	t.Run("unwritable path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.html")
		err := fsutil.WriteSink(context.Background(), path, "x", nil)

		var resErr *fsutil.ResourceError
		require.True(t, errors.As(err, &resErr))
		assert.Equal(t, fsutil.OpWrite, resErr.Op)
		assert.Equal(t, path, resErr.Path)
	})
}
