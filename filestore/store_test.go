package filestore

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wansing/chronik/upload"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return store
}

func TestAccept(t *testing.T) {

	var store = newTestStore(t)

	stored, err := store.Accept("../photo one.PNG", strings.NewReader("image bytes"))
	require.NoError(t, err)
	require.Equal(t, "photo_one.PNG", stored)

	content, err := os.ReadFile(filepath.Join(store.Dir, stored))
	require.NoError(t, err)
	require.Equal(t, "image bytes", string(content))

	has, err := store.Has(stored)
	require.NoError(t, err)
	require.True(t, has)
}

func TestAcceptRejectsNonImages(t *testing.T) {

	var store = newTestStore(t)

	for _, filename := range []string{"shell.exe", "noextension", ""} {
		_, err := store.Accept(filename, strings.NewReader("payload"))
		assert.ErrorIs(t, err, upload.ErrInvalidAttachment, filename)
	}

	// nothing was written
	files, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestReplace(t *testing.T) {

	var store = newTestStore(t)

	_, err := store.Accept("old.png", strings.NewReader("old"))
	require.NoError(t, err)

	stored, err := store.Replace("old.png", "new.jpg", strings.NewReader("new"))
	require.NoError(t, err)
	require.Equal(t, "new.jpg", stored)

	has, err := store.Has("old.png")
	require.NoError(t, err)
	require.False(t, has)

	has, err = store.Has("new.jpg")
	require.NoError(t, err)
	require.True(t, has)
}

// Replacing an attachment whose file was never written must still store the new file.
func TestReplaceMissingOldFile(t *testing.T) {

	var store = newTestStore(t)

	stored, err := store.Replace("never-existed.png", "new.png", strings.NewReader("new"))
	require.NoError(t, err)
	require.Equal(t, "new.png", stored)

	has, err := store.Has("new.png")
	require.NoError(t, err)
	require.True(t, has)
}

// An invalid new upload must leave the existing file untouched.
func TestReplaceInvalidUpload(t *testing.T) {

	var store = newTestStore(t)

	_, err := store.Accept("old.png", strings.NewReader("old"))
	require.NoError(t, err)

	_, err = store.Replace("old.png", "shell.exe", strings.NewReader("payload"))
	require.ErrorIs(t, err, upload.ErrInvalidAttachment)

	has, err := store.Has("old.png")
	require.NoError(t, err)
	require.True(t, has)
}

func TestRemoveIdempotent(t *testing.T) {

	var store = newTestStore(t)

	_, err := store.Accept("photo.png", strings.NewReader("image"))
	require.NoError(t, err)

	require.NoError(t, store.Remove("photo.png"))
	require.NoError(t, store.Remove("photo.png"))
}

func TestServeHTTP(t *testing.T) {

	var store = newTestStore(t)

	_, err := store.Accept("photo.png", strings.NewReader("image bytes"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	store.ServeHTTP(rec, httptest.NewRequest("GET", "/photo.png", nil))
	require.Equal(t, 200, rec.Code)
	require.Equal(t, "image bytes", rec.Body.String())

	rec = httptest.NewRecorder()
	store.ServeHTTP(rec, httptest.NewRequest("GET", "/missing.png", nil))
	require.Equal(t, 404, rec.Code)
}
