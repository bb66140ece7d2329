package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/entries"
	"github.com/dmitrijs2005/diary/internal/server/repositories/users"
)

// memStore is an in-memory stand-in for the two tables. It enforces the same
// uniqueness and ordering rules as the PostgreSQL repositories.
type memStore struct {
	mu sync.Mutex

	users   []*models.User
	entries []*models.Entry

	nextUserID  int64
	nextEntryID int64

	usersErr        error
	entriesErr      error
	createUserErr   error
	listCalls       int
	existsChecked   []string
	lastListLimits  []int
	lastListOffsets []int
}

func newMemStore() *memStore { return &memStore{} }

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createUserErr != nil {
		return nil, r.s.createUserErr
	}
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
		if x.UserName == u.UserName {
			return nil, common.ErrDuplicateUsername
		}
	}
	r.s.nextUserID++
	c := *u
	c.ID = r.s.nextUserID
	c.CreatedAt = time.Now().UTC()
	r.s.users = append(r.s.users, &c)
	out := c
	return &out, nil
}

func (r *memUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	for _, x := range r.s.users {
		if x.Email == email {
			out := *x
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.existsChecked = append(r.s.existsChecked, "email")
	if r.s.usersErr != nil {
		return false, r.s.usersErr
	}
	for _, x := range r.s.users {
		if x.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUsers) ExistsByUsername(ctx context.Context, userName string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.existsChecked = append(r.s.existsChecked, "username")
	if r.s.usersErr != nil {
		return false, r.s.usersErr
	}
	for _, x := range r.s.users {
		if x.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

type memEntries struct{ s *memStore }

func (r *memEntries) find(id, userID int64) *models.Entry {
	for _, e := range r.s.entries {
		if e.ID == id && e.UserID == userID {
			return e
		}
	}
	return nil
}

func (r *memEntries) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.entriesErr != nil {
		return nil, r.s.entriesErr
	}
	r.s.nextEntryID++
	c := *e
	c.ID = r.s.nextEntryID
	r.s.entries = append(r.s.entries, &c)
	out := c
	return &out, nil
}

func (r *memEntries) Get(ctx context.Context, id, userID int64) (*models.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.entriesErr != nil {
		return nil, r.s.entriesErr
	}
	e := r.find(id, userID)
	if e == nil {
		return nil, common.ErrorNotFound
	}
	out := *e
	return &out, nil
}

func (r *memEntries) Update(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.entriesErr != nil {
		return nil, r.s.entriesErr
	}
	cur := r.find(e.ID, e.UserID)
	if cur == nil {
		return nil, common.ErrorNotFound
	}
	cur.Title, cur.Content, cur.Mood, cur.UpdatedAt = e.Title, e.Content, e.Mood, e.UpdatedAt
	out := *cur
	return &out, nil
}

func (r *memEntries) Delete(ctx context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.entriesErr != nil {
		return r.s.entriesErr
	}
	for i, e := range r.s.entries {
		if e.ID == id && e.UserID == userID {
			r.s.entries = append(r.s.entries[:i], r.s.entries[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *memEntries) owned(userID int64) []*models.Entry {
	var out []*models.Entry
	for _, e := range r.s.entries {
		if e.UserID == userID {
			c := *e
			out = append(out, &c)
		}
	}
	return out
}

func (r *memEntries) Count(ctx context.Context, userID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.entriesErr != nil {
		return 0, r.s.entriesErr
	}
	return len(r.owned(userID)), nil
}

func (r *memEntries) List(ctx context.Context, userID int64, limit, offset int) ([]*models.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.listCalls++
	r.s.lastListLimits = append(r.s.lastListLimits, limit)
	r.s.lastListOffsets = append(r.s.lastListOffsets, offset)
	if offset < 0 {
		return nil, fmt.Errorf("negative offset %d", offset)
	}
	if r.s.entriesErr != nil {
		return nil, r.s.entriesErr
	}
	all := r.owned(userID)
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	out := make([]*models.Entry, 0)
	if offset >= len(all) {
		return out, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return append(out, all[offset:end]...), nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return &memUsers{m.s} }
func (m *fakeRepoManager) Entries(db dbx.DBTX) entries.Repository       { return &memEntries{m.s} }

// stepClock returns t and advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
