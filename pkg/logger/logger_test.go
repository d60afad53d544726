package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	original := L
	t.Cleanup(func() { L = original })

	t.Run("Writes rotated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "ledger.log")
		require.NoError(t, Init(Options{Level: "debug", FilePath: path, MaxSizeMB: 1}))

		WithComponent("service").Debug("seat movement recorded")
		Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"component":"service"`)
		assert.Contains(t, string(data), "seat movement recorded")
	})

	t.Run("Level filters debug", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.log")
		require.NoError(t, Init(Options{Level: "warn", FilePath: path}))

		L.Info("hidden")
		L.Warn("shown")
		Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), "shown")
	})

	t.Run("Failed - unknown level", func(t *testing.T) {
		assert.Error(t, Init(Options{Level: "loud"}))
	})
}
