package core

import "io"

type RegisterMessage struct {
	Name     string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

// Upload is a file received from a client, before it gets a storage name.
type Upload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Content      io.Reader
}

type StoredFile struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

type IngestReport struct {
	Uploaded int          `json:"uploaded"`
	Files    []StoredFile `json:"files"`
}

type CatalogEntry struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Catalog maps a category name to the files it holds.
type Catalog map[string][]CatalogEntry
