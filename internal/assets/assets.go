// Package assets persists the binary files referenced by catalog records:
// app logos, installers, and documentation files. Names are generated, never
// taken from the upload, so stored paths cannot collide or traverse.
package assets

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Category selects the directory and size cap for a stored file.
type Category string

const (
	Logo        Category = "logo"
	Installer   Category = "installer"
	DocMarkdown Category = "doc-markdown"
	DocPDF      Category = "doc-pdf"
)

// ErrTooLarge is returned when an upload exceeds its category's cap. No
// partial file remains on disk when it is returned.
var ErrTooLarge = errors.New("file exceeds size limit")

// Limits are the per-category byte caps.
type Limits struct {
	Logo      int64
	Installer int64
	Doc       int64
}

// Store writes and deletes asset files under a root directory. Paths handed
// out are the public relative paths the HTTP layer serves statically.
type Store struct {
	root   string
	limits Limits
}

// Subdirectories per category; these double as the public URL prefixes.
var categoryDirs = map[Category]string{
	Logo:        "logos",
	Installer:   "uploads",
	DocMarkdown: "docs/markdown",
	DocPDF:      "docs/pdfs",
}

func New(root string, limits Limits) (*Store, error) {
	for _, dir := range categoryDirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			return nil, fmt.Errorf("create asset dir %s: %w", dir, err)
		}
	}
	return &Store{root: root, limits: limits}, nil
}

func (s *Store) cap(cat Category) int64 {
	switch cat {
	case Installer:
		return s.limits.Installer
	case Logo:
		return s.limits.Logo
	default:
		return s.limits.Doc
	}
}

// Save streams r into a freshly named file and returns its public relative
// path. The category cap is enforced during the copy; on overflow the partial
// file is removed and ErrTooLarge returned.
func (s *Store) Save(cat Category, ext string, r io.Reader) (string, error) {
	dir, ok := categoryDirs[cat]
	if !ok {
		return "", fmt.Errorf("unknown asset category %q", cat)
	}
	name := uuid.NewString() + sanitizeExt(ext)
	full := filepath.Join(s.root, filepath.FromSlash(dir), name)

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	limit := s.cap(cat)
	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write asset file: %w", err)
	}
	if n > limit {
		os.Remove(full)
		return "", fmt.Errorf("%w (%d byte cap)", ErrTooLarge, limit)
	}
	return "/" + path.Join(dir, name), nil
}

// SaveUpload stores a multipart file, rejecting it before any write if its
// declared size already exceeds the cap.
func (s *Store) SaveUpload(cat Category, fh *multipart.FileHeader) (string, error) {
	if limit := s.cap(cat); fh.Size > limit {
		return "", fmt.Errorf("%w (%d byte cap)", ErrTooLarge, limit)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return s.Save(cat, filepath.Ext(fh.Filename), src)
}

// Delete removes the file behind a public relative path. A missing file is a
// no-op. The returned error is for logging only; record mutations must not
// fail because cleanup did.
func (s *Store) Delete(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// CreateMarkdown writes doc content to docs/markdown/<id>.md and returns the
// public relative path.
func (s *Store) CreateMarkdown(id, content string) (string, error) {
	rel := "/" + path.Join(categoryDirs[DocMarkdown], id+".md")
	if err := s.UpdateMarkdown(rel, content); err != nil {
		return "", err
	}
	return rel, nil
}

// UpdateMarkdown rewrites the content file behind an existing markdown path.
func (s *Store) UpdateMarkdown(relPath, content string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// ReadMarkdown returns the content behind a markdown path.
func (s *Store) ReadMarkdown(relPath string) (string, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read markdown: %w", err)
	}
	return string(raw), nil
}

// FullPath maps a public relative path to its location on disk.
func (s *Store) FullPath(relPath string) string {
	full, err := s.resolve(relPath)
	if err != nil {
		return ""
	}
	return full
}

// resolve maps a public relative path onto disk, admitting only paths inside
// a category directory.
func (s *Store) resolve(relPath string) (string, error) {
	clean := path.Clean("/" + strings.TrimPrefix(relPath, "/"))
	for _, dir := range categoryDirs {
		if strings.HasPrefix(clean, "/"+dir+"/") {
			return filepath.Join(s.root, filepath.FromSlash(clean)), nil
		}
	}
	return "", fmt.Errorf("invalid asset path %q", relPath)
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" || ext == "." || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
