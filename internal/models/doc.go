package models

import "time"

// DocType discriminates how a document's content is stored and served.
// It is fixed at creation and never changed by updates.
type DocType string

const (
	DocMarkdown DocType = "markdown" // content lives in a .md file, resolved on read
	DocPDF      DocType = "pdf"      // binary served as-is, never parsed
)

func (t DocType) Valid() bool {
	return t == DocMarkdown || t == DocPDF
}

// Doc is one documentation entry. Content is not persisted in the record:
// for markdown docs it is read from FileURL on single-doc fetches only.
type Doc struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Type        DocType   `json:"type"`
	FileURL     string    `json:"fileUrl"`
	Content     string    `json:"content,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
