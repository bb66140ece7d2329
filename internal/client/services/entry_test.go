package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/diary/internal/client/client"
	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_Delegates(t *testing.T) {
	fc := &fakeClient{entry: &models.Entry{ID: 3}, page: &models.EntryPage{Page: 2}}
	s := NewEntryService(fc, t.TempDir())
	ctx := context.Background()

	p, err := s.List(ctx, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, [2]int{2, 20}, fc.gotPage)

	_, err = s.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fc.gotID)

	in := models.EntryInput{Title: "t", Content: "c", Mood: "m"}
	_, err = s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, fc.gotInput)

	_, err = s.Update(ctx, 4, in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), fc.gotID)

	require.NoError(t, s.Delete(ctx, 5))
	assert.Equal(t, int64(5), fc.gotID)
}

func stubDownload(t *testing.T, fn func(ctx context.Context, url string, w io.Writer) error) {
	t.Helper()
	orig := download
	download = fn
	t.Cleanup(func() { download = orig })
}

func TestExport_DownloadsIntoExportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	fc := &fakeClient{export: &models.ExportResult{Key: "users/1/exports/2024/05/07/abc.json", URL: "https://s3.local/abc"}}
	s := NewEntryService(fc, dir)

	var gotURL string
	stubDownload(t, func(ctx context.Context, url string, w io.Writer) error {
		gotURL = url
		_, err := w.Write([]byte(`{"entries":[]}`))
		return err
	})

	path, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/abc", gotURL)
	assert.Equal(t, filepath.Join(dir, "abc.json"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(b))
}

func TestExport_DownloadFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeClient{export: &models.ExportResult{Key: "users/1/exports/x.json", URL: "u"}}
	s := NewEntryService(fc, dir)

	stubDownload(t, func(ctx context.Context, url string, w io.Writer) error {
		return errors.New("403")
	})

	_, err := s.Export(context.Background())
	require.ErrorContains(t, err, "error downloading export")

	_, statErr := os.Stat(filepath.Join(dir, "x.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_ServerDisabled(t *testing.T) {
	fc := &fakeClient{err: &client.APIError{Status: 503, Message: "export storage is not configured"}}
	s := NewEntryService(fc, t.TempDir())

	_, err := s.Export(context.Background())
	require.ErrorIs(t, err, client.ErrExportDisabled)
}
