package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    error = errors.New("file not found")
	ErrUnknownArea error = errors.New("unknown storage area")
	ErrInvalidName error = errors.New("invalid file name")
)

// Area names a storage root.
type Area string

const (
	Uploads     Area = "uploads"
	UserUploads Area = "useruploads"
	Generated   Area = "generated"
)

// Category is a first level directory of an area together with the regular
// files it holds.
type Category struct {
	Name  string
	Files []string
}

// Disk keeps every area in its own directory on the local filesystem.
type Disk struct {
	roots map[Area]string
}

// NewDisk creates any missing area directory.
func NewDisk(roots map[Area]string) (*Disk, error) {
	disk := &Disk{roots: make(map[Area]string, len(roots))}
	for area, root := range roots {
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("create %s directory %q: %w", area, root, err)
		}
		disk.roots[area] = root
	}

	return disk, nil
}

// Save writes content to area/name, replacing any file with the same name.
// The file is written to a temporary sibling first and renamed into place so
// readers never observe a partial file. It returns the storage path and the
// number of bytes written.
func (d *Disk) Save(ctx context.Context, area Area, name string, content io.Reader) (string, int64, error) {
	root, err := d.root(area)
	if err != nil {
		return "", 0, err
	}

	if name == "" || strings.ContainsAny(name, `/\`) || !filepath.IsLocal(name) {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	tmp, err := os.CreateTemp(root, ".incoming-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmp.Name())
	}()

	written, err := io.Copy(tmp, content)
	if err != nil {
		_ = tmp.Close()
		return "", 0, fmt.Errorf("write %q: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("close %q: %w", name, err)
	}

	path := filepath.Join(root, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", 0, fmt.Errorf("move %q into place: %w", name, err)
	}

	return path, written, nil
}

// Open opens a stored file for reading. name may point into a category
// ("cats/tom.png") but must stay inside the area root.
func (d *Disk) Open(area Area, name string) (*os.File, error) {
	root, err := d.root(area)
	if err != nil {
		return nil, err
	}

	name = filepath.FromSlash(name)
	if name == "" || !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	file, err := os.Open(filepath.Join(root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("open %q: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat %q: %w", name, err)
	}

	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, name)
	}

	return file, nil
}

// Categories lists the first level directories of an area and the regular
// files directly inside each of them, both sorted by name.
func (d *Disk) Categories(area Area) ([]Category, error) {
	root, err := d.root(area)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s directory: %w", area, err)
	}

	categories := make([]Category, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		files, err := os.ReadDir(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read category %q: %w", entry.Name(), err)
		}

		names := make([]string, 0, len(files))
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			names = append(names, f.Name())
		}

		categories = append(categories, Category{
			Name:  entry.Name(),
			Files: names,
		})
	}

	return categories, nil
}

func (d *Disk) root(area Area) (string, error) {
	root, ok := d.roots[area]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownArea, area)
	}
	return root, nil
}
