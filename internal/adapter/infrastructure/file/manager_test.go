//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAdapter_ReadFile(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	t.Run("ExistingFile", func(t *testing.T) {
		path := filepath.Join(tempDir, "resolv.conf")
		err := os.WriteFile(path, []byte("nameserver 8.8.8.8\n"), 0644)
		require.NoError(t, err)

		data, err := adapter.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "nameserver 8.8.8.8\n", string(data))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := adapter.ReadFile(filepath.Join(tempDir, "missing"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestManagerAdapter_FileExists(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, adapter.FileExists(path))
	assert.False(t, adapter.FileExists(filepath.Join(tempDir, "absent")))
}
