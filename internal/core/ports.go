package core

import (
	"context"
	"io"
	"os"

	"avatarhub/internal/remote"
	"avatarhub/internal/repository"
	"avatarhub/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialRepository . CredentialRepository
type CredentialRepository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name FileStore . FileStore
type FileStore interface {
	Save(ctx context.Context, area storage.Area, name string, content io.Reader) (string, int64, error)
	Open(area storage.Area, name string) (*os.File, error)
	Categories(area storage.Area) ([]storage.Category, error)
}

//counterfeiter:generate -o fake -fake-name RemoteFetcher . RemoteFetcher
type RemoteFetcher interface {
	Fetch(ctx context.Context, rawURL string) (remote.Resource, error)
}
