package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesFileUnderPrefixAndDate(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	content := "contrat de maintenance"
	path, err := storage.Save(strings.NewReader(content), "contrat.pdf", "purchase-orders")
	require.NoError(t, err)

	datePath := time.Now().Format("2006/01/02")
	assert.True(t, strings.HasPrefix(path, "purchase-orders/"+datePath+"/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	written, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestSaveKeepsExtensionlessNames(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	path, err := storage.Save(strings.NewReader("x"), "sans-extension", "photos")
	require.NoError(t, err)
	assert.False(t, strings.Contains(filepath.Base(path), "."))
}

func TestDeleteRemovesSavedFile(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	path, err := storage.Save(strings.NewReader("pièce jointe"), "photo.png", "reclamations")
	require.NoError(t, err)

	require.NoError(t, storage.Delete("/uploads/"+path))

	_, statErr := os.Stat(filepath.Join(base, filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("/uploads/photos/2026/01/01/inexistant.png"))
}

func TestNewLocalFileStorageCreatesBaseDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")
	_, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
