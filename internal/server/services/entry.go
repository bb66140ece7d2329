package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
)

// Pagination bounds applied by EntryService.List.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*pageSize within int for any clamped pageSize.
	MaxPage = math.MaxInt/MaxPageSize + 1
)

// EntryService manages diary entries. Every operation is scoped to the
// owner passed in; another owner's entries behave as if they did not exist.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEntryService(db *sql.DB, repomanager repomanager.RepositoryManager) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		now:         time.Now,
	}
}

// timestamp returns the current time at the precision PostgreSQL stores.
func (s *EntryService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// ClampPage corrects out-of-range pagination input instead of rejecting it.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// List returns one page of userID's entries, newest first.
func (s *EntryService) List(ctx context.Context, userID int64, page, pageSize int) (*models.EntryPage, error) {
	page, pageSize = ClampPage(page, pageSize)
	repo := s.repomanager.Entries(s.db)

	total, err := repo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting entries: %w", err)
	}

	items, err := repo.List(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	return &models.EntryPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *EntryService) Get(ctx context.Context, id, userID int64) (*models.Entry, error) {
	entry, err := s.repomanager.Entries(s.db).Get(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, "error getting entry")
	}
	return entry, nil
}

func (s *EntryService) Create(ctx context.Context, userID int64, title, content, mood string) (*models.Entry, error) {
	now := s.timestamp()
	entry, err := s.repomanager.Entries(s.db).Create(ctx, &models.Entry{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return entry, nil
}

// Update replaces title, content and mood wholesale and bumps UpdatedAt.
func (s *EntryService) Update(ctx context.Context, id, userID int64, title, content, mood string) (*models.Entry, error) {
	entry, err := s.repomanager.Entries(s.db).Update(ctx, &models.Entry{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		UpdatedAt: s.timestamp(),
	})
	if err != nil {
		return nil, notFound(err, "error updating entry")
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repomanager.Entries(s.db).Delete(ctx, id, userID); err != nil {
		return notFound(err, "error deleting entry")
	}
	return nil
}

// notFound turns the repository's not-found into ErrEntryNotFound and wraps
// anything else.
func notFound(err error, msg string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrEntryNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
