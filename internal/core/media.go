package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"avatarhub/internal/storage"

	"go.uber.org/zap"
)

// Media ingests uploaded and remote files into storage and lists what is
// stored.
type Media struct {
	logs    *zap.SugaredLogger
	store   FileStore
	fetcher RemoteFetcher
	naming  storage.Naming
}

func NewMedia(logger *zap.SugaredLogger, store FileStore, fetcher RemoteFetcher, naming storage.Naming) *Media {
	return &Media{
		logs:    logger,
		store:   store,
		fetcher: fetcher,
		naming:  naming,
	}
}

// IngestMultiple stores every upload in the user uploads area. Storage names
// are derived for all files first, so a single bad name rejects the whole
// batch before anything is written.
func (m *Media) IngestMultiple(ctx context.Context, baseURL string, uploads []Upload) (IngestReport, error) {
	if len(uploads) == 0 {
		return IngestReport{}, fmt.Errorf("%w: no files", ErrInvalidInput)
	}

	names := make([]string, 0, len(uploads))
	for _, u := range uploads {
		name := m.naming.Multi.StorageName(u.OriginalName)
		if name == "" {
			return IngestReport{}, fmt.Errorf("%w: unusable filename %q", ErrInvalidInput, u.OriginalName)
		}
		names = append(names, name)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	files := make([]StoredFile, 0, len(uploads))
	for i, u := range uploads {
		p, written, err := m.store.Save(ctx, storage.UserUploads, names[i], u.Content)
		if err != nil {
			return IngestReport{}, fmt.Errorf("save %q: %w", u.OriginalName, err)
		}

		files = append(files, StoredFile{
			Filename:     names[i],
			Path:         p,
			URL:          baseURL + "/" + string(storage.UserUploads) + "/" + url.PathEscape(names[i]),
			OriginalName: u.OriginalName,
			Size:         written,
			ContentType:  u.ContentType,
		})
	}

	m.logs.Infow("files ingested", "area", storage.UserUploads, "count", len(files))

	return IngestReport{
		Uploaded: len(files),
		Files:    files,
	}, nil
}

// IngestSingle stores one upload in the uploads area and returns its storage
// path.
func (m *Media) IngestSingle(ctx context.Context, upload Upload) (string, error) {
	if upload.Content == nil || upload.OriginalName == "" {
		return "", fmt.Errorf("%w: no file", ErrInvalidInput)
	}

	name := m.naming.Single.StorageName(upload.OriginalName)
	if name == "" {
		return "", fmt.Errorf("%w: unusable filename %q", ErrInvalidInput, upload.OriginalName)
	}

	p, _, err := m.store.Save(ctx, storage.Uploads, name, upload.Content)
	if err != nil {
		return "", fmt.Errorf("save %q: %w", upload.OriginalName, err)
	}

	m.logs.Infow("file ingested", "area", storage.Uploads, "path", p)
	return p, nil
}

// FetchAvatar downloads rawURL and stores the body verbatim in the uploads
// area under a name derived from the last path segment. It returns the
// storage path.
func (m *Media) FetchAvatar(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: missing url", ErrInvalidInput)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidInput, rawURL)
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" {
		base = ""
	}

	name := m.naming.Remote.StorageName(base)
	if name == "" {
		return "", fmt.Errorf("%w: no usable file name in %q", ErrInvalidInput, rawURL)
	}

	resource, err := m.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	p, _, err := m.store.Save(ctx, storage.Uploads, name, bytes.NewReader(resource.Body))
	if err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}

	m.logs.Infow("avatar fetched", "url", rawURL, "path", p, "bytes", len(resource.Body))
	return p, nil
}

// ListByCategory builds the catalog of the uploads area. Every entry URL is
// rooted at baseURL.
func (m *Media) ListByCategory(ctx context.Context, baseURL string) (Catalog, error) {
	categories, err := m.store.Categories(storage.Uploads)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	catalog := make(Catalog, len(categories))
	for _, c := range categories {
		entries := make([]CatalogEntry, 0, len(c.Files))
		for _, f := range c.Files {
			entries = append(entries, CatalogEntry{
				Filename: f,
				URL: baseURL + "/" + string(storage.Uploads) + "/" +
					url.PathEscape(c.Name) + "/" + url.PathEscape(f),
			})
		}
		catalog[c.Name] = entries
	}

	return catalog, nil
}

// OpenFile opens a stored file for serving.
func (m *Media) OpenFile(ctx context.Context, area storage.Area, name string) (*os.File, error) {
	file, err := m.store.Open(area, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("open %s file: %w", area, err)
	}

	return file, nil
}
