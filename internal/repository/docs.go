package repository

import (
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/DeckDev-RC/hubapps/internal/assets"
	"github.com/DeckDev-RC/hubapps/internal/models"
	"github.com/DeckDev-RC/hubapps/internal/storage"
)

// Docs is the record store for the documentation library. A doc's type is
// fixed at creation: markdown docs keep their content in a .md file rewritten
// in place on update, pdf docs reference an uploaded binary.
type Docs struct {
	mu    sync.Mutex
	store storage.Collection[models.Doc]
	files *assets.Store
}

func NewDocs(store storage.Collection[models.Doc], files *assets.Store) *Docs {
	return &Docs{store: store, files: files}
}

type DocInput struct {
	Title       string
	Category    string
	Description string
	Type        models.DocType
	Content     string // markdown docs only
}

// DocUpdate carries a partial update; nil fields are left untouched. The
// type cannot be changed after creation and has no field here.
type DocUpdate struct {
	Title       *string
	Category    *string
	Description *string
	Content     *string // markdown docs only
}

// List returns metadata only; content is never attached here.
func (r *Docs) List() ([]models.Doc, error) {
	docs, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.Doc{}
	}
	return docs, nil
}

// Get resolves markdown content from disk and attaches it to the record. A
// content file that went missing leaves the record readable without content.
func (r *Docs) Get(id string) (models.Doc, error) {
	docs, err := r.store.Load()
	if err != nil {
		return models.Doc{}, err
	}
	for _, d := range docs {
		if d.ID != id {
			continue
		}
		if d.Type == models.DocMarkdown && d.FileURL != "" {
			content, err := r.files.ReadMarkdown(d.FileURL)
			if err != nil {
				log.Warn("doc content unreadable", "id", d.ID, "path", d.FileURL, "err", err)
			} else {
				d.Content = content
			}
		}
		return d, nil
	}
	return models.Doc{}, ErrNotFound
}

func (r *Docs) Create(in DocInput, file *multipart.FileHeader) (models.Doc, error) {
	switch {
	case in.Title == "":
		return models.Doc{}, validationf("title is required")
	case !in.Type.Valid():
		return models.Doc{}, validationf("type must be %q or %q", models.DocMarkdown, models.DocPDF)
	case in.Type == models.DocPDF && file == nil:
		return models.Doc{}, validationf("pdf docs require a file")
	}

	id := uuid.NewString()
	var fileURL string
	var err error
	switch in.Type {
	case models.DocMarkdown:
		fileURL, err = r.files.CreateMarkdown(id, in.Content)
		if err != nil {
			return models.Doc{}, fmt.Errorf("store content: %w", err)
		}
	case models.DocPDF:
		fileURL, err = r.files.SaveUpload(assets.DocPDF, file)
		if err != nil {
			return models.Doc{}, fmt.Errorf("store file: %w", err)
		}
	}

	now := time.Now().UTC()
	doc := models.Doc{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Type:        in.Type,
		FileURL:     fileURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	docs, err := r.store.Load()
	if err != nil {
		r.cleanup(fileURL)
		return models.Doc{}, err
	}
	docs = append(docs, doc)
	if err := r.store.Save(docs); err != nil {
		r.cleanup(fileURL)
		return models.Doc{}, err
	}
	return doc, nil
}

func (r *Docs) Update(id string, in DocUpdate, file *multipart.FileHeader) (models.Doc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.store.Load()
	if err != nil {
		return models.Doc{}, err
	}
	idx := -1
	for i := range docs {
		if docs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Doc{}, ErrNotFound
	}
	doc := docs[idx]

	if doc.Type == models.DocMarkdown && in.Content != nil {
		if err := r.files.UpdateMarkdown(doc.FileURL, *in.Content); err != nil {
			return models.Doc{}, fmt.Errorf("rewrite content: %w", err)
		}
	}
	if doc.Type == models.DocPDF && file != nil {
		newFile, err := r.files.SaveUpload(assets.DocPDF, file)
		if err != nil {
			return models.Doc{}, fmt.Errorf("store file: %w", err)
		}
		r.cleanup(doc.FileURL)
		doc.FileURL = newFile
	}

	setIf(&doc.Title, in.Title)
	setIf(&doc.Category, in.Category)
	setIf(&doc.Description, in.Description)

	doc.UpdatedAt = time.Now().UTC()
	docs[idx] = doc
	if err := r.store.Save(docs); err != nil {
		return models.Doc{}, err
	}
	return doc, nil
}

func (r *Docs) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.store.Load()
	if err != nil {
		return err
	}
	kept := docs[:0:0]
	found := false
	for _, d := range docs {
		if d.ID == id {
			found = true
			r.cleanup(d.FileURL)
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return ErrNotFound
	}
	return r.store.Save(kept)
}

func (r *Docs) cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := r.files.Delete(p); err != nil {
			log.Warn("asset cleanup failed", "path", p, "err", err)
		}
	}
}
