package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	store, err := New(root, Limits{Logo: 1 << 10, Installer: 4 << 10, Doc: 1 << 10})
	require.NoError(t, err)
	return store, root
}

func TestNewCreatesCategoryDirs(t *testing.T) {
	_, root := newStore(t)
	for _, dir := range []string{"logos", "uploads", "docs/markdown", "docs/pdfs"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveWritesUnderCategoryPrefix(t *testing.T) {
	store, root := newStore(t)

	rel, err := store.Save(Installer, ".exe", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "/uploads/"))
	assert.True(t, strings.HasSuffix(rel, ".exe"))

	raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(raw))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, _ := newStore(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		rel, err := store.Save(Logo, ".png", strings.NewReader("x"))
		require.NoError(t, err)
		require.False(t, seen[rel], "duplicate path %s", rel)
		seen[rel] = true
	}
}

func TestSaveRejectsOversizedPayload(t *testing.T) {
	store, root := newStore(t)

	_, err := store.Save(Logo, ".png", bytes.NewReader(make([]byte, (1<<10)+1)))
	require.ErrorIs(t, err, ErrTooLarge)

	// No partial file may survive the rejection.
	entries, err := os.ReadDir(filepath.Join(root, "logos"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAtCapSucceeds(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Save(Logo, ".png", bytes.NewReader(make([]byte, 1<<10)))
	assert.NoError(t, err)
}

func TestSaveIgnoresSuspiciousExtension(t *testing.T) {
	store, _ := newStore(t)
	rel, err := store.Save(Logo, ".png/../..", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, rel, "..")
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, root := newStore(t)

	rel, err := store.Save(Logo, ".png", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(rel))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op, not an error.
	assert.NoError(t, store.Delete(rel))
}

func TestDeleteRejectsTraversal(t *testing.T) {
	store, _ := newStore(t)
	assert.Error(t, store.Delete("/logos/../../etc/passwd"))
	assert.Error(t, store.Delete("/"))
}

func TestMarkdownRoundTrip(t *testing.T) {
	store, _ := newStore(t)

	rel, err := store.CreateMarkdown("doc-1", "# Title\n\nbody")
	require.NoError(t, err)
	assert.Equal(t, "/docs/markdown/doc-1.md", rel)

	content, err := store.ReadMarkdown(rel)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody", content)

	require.NoError(t, store.UpdateMarkdown(rel, "rewritten"))
	content, err = store.ReadMarkdown(rel)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", content)
}
