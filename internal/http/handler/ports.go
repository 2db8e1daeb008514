package handler

import (
	"context"
	"net/http"
	"os"

	"avatarhub/internal/core"
	"avatarhub/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.LoginMessage) error
}

//counterfeiter:generate -o fake -fake-name MediaService . MediaService
type MediaService interface {
	IngestMultiple(ctx context.Context, baseURL string, uploads []core.Upload) (core.IngestReport, error)
	IngestSingle(ctx context.Context, upload core.Upload) (string, error)
	FetchAvatar(ctx context.Context, rawURL string) (string, error)
	ListByCategory(ctx context.Context, baseURL string) (core.Catalog, error)
	OpenFile(ctx context.Context, area storage.Area, name string) (*os.File, error)
}
