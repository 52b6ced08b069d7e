package repository

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeckDev-RC/hubapps/internal/assets"
)

// fileHeader builds a real multipart.FileHeader the way fiber hands one to
// the repositories.
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func newAssetStore(t *testing.T) *assets.Store {
	t.Helper()
	store, err := assets.New(t.TempDir(), assets.Limits{
		Logo:      1 << 20,
		Installer: 1 << 20,
		Doc:       1 << 20,
	})
	require.NoError(t, err)
	return store
}

func assertOnDisk(t *testing.T, files *assets.Store, relPath string) {
	t.Helper()
	_, err := os.Stat(files.FullPath(relPath))
	require.NoError(t, err, "expected %s on disk", relPath)
}

func assertGone(t *testing.T, files *assets.Store, relPath string) {
	t.Helper()
	_, err := os.Stat(files.FullPath(relPath))
	require.True(t, os.IsNotExist(err), "expected %s gone", relPath)
}

func strptr(s string) *string { return &s }
