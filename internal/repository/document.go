package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrUserExists   error = errors.New("user already exists")
)

// DocumentRepository keeps every user in a single JSON array on disk. Each
// write reads the whole document, changes it in memory and rewrites it. The
// cycle runs under a mutex, so writers in the same process never lose each
// other's records.
type DocumentRepository struct {
	mu   sync.Mutex
	path string
}

// NewDocumentRepository opens the document at path, creating it (and its
// directory) as an empty list when it does not exist yet.
func NewDocumentRepository(path string) (*DocumentRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create credentials directory: %w", err)
	}

	repo := &DocumentRepository{path: path}

	_, err := os.Stat(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if err := repo.write([]User{}); err != nil {
			return nil, fmt.Errorf("initialize credentials document: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat credentials document: %w", err)
	}

	return repo, nil
}

func (r *DocumentRepository) CreateUser(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return fmt.Errorf("read users: %w", err)
	}

	for _, u := range users {
		if u.Email == user.Email {
			return ErrUserExists
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	users = append(users, user)
	if err := r.write(users); err != nil {
		return fmt.Errorf("write users: %w", err)
	}

	return nil
}

func (r *DocumentRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return User{}, fmt.Errorf("read users: %w", err)
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return User{}, ErrUserNotFound
}

func (r *DocumentRepository) read() ([]User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode %q: %w", r.path, err)
	}

	return users, nil
}

func (r *DocumentRepository) write(users []User) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}
