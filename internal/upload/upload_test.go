package upload

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveDataURL(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	payload := []byte("fake image bytes")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	path, err := store.SaveDataURL(dataURL)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, PublicPrefix+"/"))

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, PublicPrefix+"/")))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestStore_SaveDataURLAcceptsBarePayload(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.SaveDataURL(base64.StdEncoding.EncodeToString([]byte("raw")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, PublicPrefix+"/"))
}

func TestStore_SaveDataURLRejectsGarbage(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.SaveDataURL("data:image/png;base64,not-base64!!!")
	assert.Error(t, err)
}

func TestStore_SaveDataURLCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewStore(dir)

	_, err := store.SaveDataURL(base64.StdEncoding.EncodeToString([]byte("x")))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
