package services

import (
	"context"

	"github.com/dmitrijs2005/diary/internal/client/models"
)

type fakeClient struct {
	token string

	session *models.Session
	entry   *models.Entry
	page    *models.EntryPage
	export  *models.ExportResult
	err     error
	pingErr error

	gotPassword string
	gotID       int64
	gotInput    models.EntryInput
	gotPage     [2]int
}

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	f.gotPassword = password
	return f.session, f.err
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.gotPassword = password
	return f.session, f.err
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) ListEntries(ctx context.Context, page, pageSize int) (*models.EntryPage, error) {
	f.gotPage = [2]int{page, pageSize}
	return f.page, f.err
}

func (f *fakeClient) GetEntry(ctx context.Context, id int64) (*models.Entry, error) {
	f.gotID = id
	return f.entry, f.err
}

func (f *fakeClient) CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	f.gotInput = in
	return f.entry, f.err
}

func (f *fakeClient) UpdateEntry(ctx context.Context, id int64, in models.EntryInput) (*models.Entry, error) {
	f.gotID, f.gotInput = id, in
	return f.entry, f.err
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id int64) error {
	f.gotID = id
	return f.err
}

func (f *fakeClient) Export(ctx context.Context) (*models.ExportResult, error) {
	return f.export, f.err
}
