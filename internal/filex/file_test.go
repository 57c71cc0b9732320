package filex

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRegular(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "me.png")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o600))

	f, size, ctype, err := OpenRegular(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(6), size)
	assert.Equal(t, "image/png", ctype)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(b))
}

func TestOpenRegular_Errors(t *testing.T) {
	tmp := t.TempDir()

	_, _, _, err := OpenRegular(filepath.Join(tmp, "missing.jpg"))
	assert.Error(t, err)

	_, _, _, err = OpenRegular(tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}
