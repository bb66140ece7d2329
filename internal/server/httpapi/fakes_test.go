package httpapi

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/server/auth"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeUsers struct {
	bundle *services.TokenBundle
	err    error

	gotUsername, gotEmail, gotPassword string
}

func (f *fakeUsers) Register(ctx context.Context, username, email, password string) (*services.TokenBundle, error) {
	f.gotUsername, f.gotEmail, f.gotPassword = username, email, password
	return f.bundle, f.err
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.TokenBundle, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.bundle, f.err
}

type fakeEntries struct {
	entry *models.Entry
	page  *models.EntryPage
	err   error

	gotID, gotUserID    int64
	gotPage, gotSize    int
	gotTitle, gotMood   string
	gotContent          string
	deleted, listCalled bool
}

func (f *fakeEntries) List(ctx context.Context, userID int64, page, pageSize int) (*models.EntryPage, error) {
	f.listCalled = true
	f.gotUserID, f.gotPage, f.gotSize = userID, page, pageSize
	return f.page, f.err
}

func (f *fakeEntries) Get(ctx context.Context, id, userID int64) (*models.Entry, error) {
	f.gotID, f.gotUserID = id, userID
	return f.entry, f.err
}

func (f *fakeEntries) Create(ctx context.Context, userID int64, title, content, mood string) (*models.Entry, error) {
	f.gotUserID, f.gotTitle, f.gotContent, f.gotMood = userID, title, content, mood
	return f.entry, f.err
}

func (f *fakeEntries) Update(ctx context.Context, id, userID int64, title, content, mood string) (*models.Entry, error) {
	f.gotID, f.gotUserID, f.gotTitle, f.gotContent, f.gotMood = id, userID, title, content, mood
	return f.entry, f.err
}

func (f *fakeEntries) Delete(ctx context.Context, id, userID int64) error {
	f.gotID, f.gotUserID, f.deleted = id, userID, true
	return f.err
}

type fakeExports struct {
	result *services.ExportResult
	err    error
}

func (f *fakeExports) Export(ctx context.Context, userID int64) (*services.ExportResult, error) {
	return f.result, f.err
}

func newTestServer(us UserService, es EntryService, xs ExportService) *HTTPServer {
	return NewHTTPServer("127.0.0.1:0", logging.Nop{}, us, es, xs, testSecret, time.Second)
}

func tokenFor(t *testing.T, userID int64, issuedAt time.Time) string {
	t.Helper()
	tok, _, err := auth.GenerateToken(&models.User{ID: userID, UserName: "alice", Email: "alice@example.com"}, []byte(testSecret), issuedAt)
	require.NoError(t, err)
	return tok
}
