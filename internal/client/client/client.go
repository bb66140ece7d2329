package client

import (
	"context"

	"github.com/dmitrijs2005/diary/internal/client/models"
)

type Client interface {
	SetToken(token string)
	Register(ctx context.Context, username, email, password string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Ping(ctx context.Context) error
	ListEntries(ctx context.Context, page, pageSize int) (*models.EntryPage, error)
	GetEntry(ctx context.Context, id int64) (*models.Entry, error)
	CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, in models.EntryInput) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	Export(ctx context.Context) (*models.ExportResult, error)
}
