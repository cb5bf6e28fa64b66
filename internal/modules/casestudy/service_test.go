package casestudy

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

	dsn := fmt.Sprintf("file:casestudy_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.CaseStudy{}))

	dir := t.TempDir()
	store := storage.NewStore(dir, "/static/uploads")
	return NewService(repository.NewCaseStudyRepository(db), store), dir
}

func pngHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "study.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)
	return fh
}

func studyForm() CreateCaseStudyForm {
	return CreateCaseStudyForm{
		Heading:          "Clinic Rollout",
		ShortDescription: "short",
		Content:          "full write-up",
	}
}

func TestAnyAuthenticatedUserMayMutate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := t.Context()

	created, err := svc.Create(ctx, 1, studyForm(), nil)
	require.NoError(t, err)

	// A different user than the creator can update and delete.
	heading := "Renamed Rollout"
	updated, err := svc.Update(ctx, 2, created.ID, UpdateCaseStudyForm{Heading: &heading}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Rollout", updated.Heading)
	assert.Equal(t, created.Content, updated.Content)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	svc, dir := setupService(t)
	ctx := t.Context()

	created, err := svc.Create(ctx, 1, studyForm(), pngHeader(t))
	require.NoError(t, err)
	require.NotNil(t, created.Image)

	onDisk := filepath.Join(dir, filepath.Base(*created.Image))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateReplacingImageRemovesOldFile(t *testing.T) {
	svc, dir := setupService(t)
	ctx := t.Context()

	created, err := svc.Create(ctx, 1, studyForm(), pngHeader(t))
	require.NoError(t, err)
	require.NotNil(t, created.Image)
	oldOnDisk := filepath.Join(dir, filepath.Base(*created.Image))

	updated, err := svc.Update(ctx, 1, created.ID, UpdateCaseStudyForm{}, pngHeader(t))
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	require.NotEqual(t, *created.Image, *updated.Image)

	_, err = os.Stat(oldOnDisk)
	assert.True(t, os.IsNotExist(err), "replaced image must not stay on disk")
	_, err = os.Stat(filepath.Join(dir, filepath.Base(*updated.Image)))
	assert.NoError(t, err)
}

func TestUpdateResendingSamePathKeepsFile(t *testing.T) {
	svc, dir := setupService(t)
	ctx := t.Context()

	created, err := svc.Create(ctx, 1, studyForm(), pngHeader(t))
	require.NoError(t, err)
	require.NotNil(t, created.Image)

	// The frontend re-sends the stored path instead of re-uploading.
	updated, err := svc.Update(ctx, 1, created.ID, UpdateCaseStudyForm{ImagePath: created.Image}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.Equal(t, *created.Image, *updated.Image)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(*created.Image)))
	assert.NoError(t, err)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	svc, dir := setupService(t)
	ctx := t.Context()

	created, err := svc.Create(ctx, 1, studyForm(), pngHeader(t))
	require.NoError(t, err)
	require.NotNil(t, created.Image)

	// File removed out-of-band; the row delete still succeeds.
	require.NoError(t, os.Remove(filepath.Join(dir, filepath.Base(*created.Image))))
	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := setupService(t)
	assert.ErrorIs(t, svc.Delete(t.Context(), 9999), ErrNotFound)
}
