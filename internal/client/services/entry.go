package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/diary/internal/client/client"
	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/filex"
	"github.com/dmitrijs2005/diary/internal/netx"
)

type EntryService interface {
	List(ctx context.Context, page, pageSize int) (*models.EntryPage, error)
	Get(ctx context.Context, id int64) (*models.Entry, error)
	Create(ctx context.Context, in models.EntryInput) (*models.Entry, error)
	Update(ctx context.Context, id int64, in models.EntryInput) (*models.Entry, error)
	Delete(ctx context.Context, id int64) error
	// Export asks the server for a snapshot and downloads it into the export
	// directory, returning the local file path.
	Export(ctx context.Context) (string, error)
}

// download is a seam for netx.DownloadPresignedURL.
var download = netx.DownloadPresignedURL

type entryService struct {
	client    client.Client
	exportDir string
}

func NewEntryService(c client.Client, exportDir string) EntryService {
	return &entryService{client: c, exportDir: exportDir}
}

func (s *entryService) List(ctx context.Context, page, pageSize int) (*models.EntryPage, error) {
	return s.client.ListEntries(ctx, page, pageSize)
}

func (s *entryService) Get(ctx context.Context, id int64) (*models.Entry, error) {
	return s.client.GetEntry(ctx, id)
}

func (s *entryService) Create(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	return s.client.CreateEntry(ctx, in)
}

func (s *entryService) Update(ctx context.Context, id int64, in models.EntryInput) (*models.Entry, error) {
	return s.client.UpdateEntry(ctx, id, in)
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteEntry(ctx, id)
}

func (s *entryService) Export(ctx context.Context) (string, error) {
	result, err := s.client.Export(ctx)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(s.exportDir)
	if err != nil {
		return "", err
	}

	f, err := filex.CreateNew(dir, filepath.Base(result.Key))
	if err != nil {
		return "", err
	}

	if err := saveTo(ctx, result.URL, f); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("error downloading export: %w", err)
	}
	return f.Name(), nil
}

func saveTo(ctx context.Context, url string, f io.WriteCloser) error {
	err := download(ctx, url, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
