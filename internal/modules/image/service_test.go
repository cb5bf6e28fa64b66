package image

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketingsite/internal/database"
	"marketingsite/internal/domain"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)

func setupService(t *testing.T) (*Service, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:image_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Image{}))

	dir := t.TempDir()
	store := storage.NewStore(dir, "/static/uploads")
	return NewService(repository.NewImageRepository(db), store), dir
}

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

func TestCreateStoresFileAndRow(t *testing.T) {
	svc, dir := setupService(t)

	img, err := svc.Create(t.Context(), 7, fileHeader(t, "logo.png", pngBytes))
	require.NoError(t, err)

	assert.Equal(t, int64(7), img.UserID)
	assert.Equal(t, "logo.png", img.ImageName)
	require.NotNil(t, img.Image)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(*img.Image)))
	require.NoError(t, err)
}

func TestCreateRejectsNonImage(t *testing.T) {
	svc, dir := setupService(t)

	_, err := svc.Create(t.Context(), 7, fileHeader(t, "notes.txt", []byte("plain text, not an image")))
	require.ErrorIs(t, err, storage.ErrUnsupportedType)

	// Neither bytes nor a row may survive a rejected upload.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	images, err := svc.List(t.Context(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc, dir := setupService(t)
	ctx := t.Context()

	img, err := svc.Create(ctx, 7, fileHeader(t, "logo.png", pngBytes))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 8, img.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, 7, img.ID))

	_, err = svc.Get(ctx, img.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(*img.Image)))
	assert.True(t, os.IsNotExist(err))
}

func TestListByUser(t *testing.T) {
	svc, _ := setupService(t)
	ctx := t.Context()

	_, err := svc.Create(ctx, 1, fileHeader(t, "a.png", pngBytes))
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, fileHeader(t, "b.png", pngBytes))
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].UserID)
}
