package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)
	return fh
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "/static/uploads")

	path, err := store.Save(fileHeader(t, "team photo.png", pngBytes), 42)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/static/uploads/42_\d{8}_\d{6}_[0-9a-f-]{8}\.png$`), path)
	assert.True(t, store.Exists(path))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "/static/uploads")

	path, err := store.Save(fileHeader(t, "notes.txt", []byte("plain text, not an image")), 1)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written for a rejected upload")
}

func TestSaveRejectsEmptyFile(t *testing.T) {
	store := NewStore(t.TempDir(), "/static/uploads")
	_, err := store.Save(fileHeader(t, "empty.png", nil), 1)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestSaveDistinctNames(t *testing.T) {
	store := NewStore(t.TempDir(), "/static/uploads")

	first, err := store.Save(fileHeader(t, "logo.png", pngBytes), 7)
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "logo.png", pngBytes), 7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same original filename must not overwrite")
	assert.True(t, store.Exists(first))
	assert.True(t, store.Exists(second))
}

func TestIsStoredPath(t *testing.T) {
	store := NewStore(t.TempDir(), "/static/uploads")

	assert.True(t, store.IsStoredPath("/static/uploads/1_20250101_000000_abcd1234.png"))
	assert.False(t, store.IsStoredPath("https://example.com/static/uploads/x.png"))
	assert.False(t, store.IsStoredPath("/etc/passwd"))
	assert.False(t, store.IsStoredPath("static/uploads/x.png"))
	assert.False(t, store.IsStoredPath(""))
}

func TestRemoveIdempotent(t *testing.T) {
	store := NewStore(t.TempDir(), "/static/uploads")

	path, err := store.Save(fileHeader(t, "gone.gif", []byte("GIF89a  trailer")), 3)
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))

	// Removing again (already gone) is not an error.
	require.NoError(t, store.Remove(path))

	// Paths outside the store are ignored.
	require.NoError(t, store.Remove("/etc/passwd"))
}
