package entries

import (
	"context"

	"github.com/dmitrijs2005/diary/internal/server/models"
)

// Repository is the owner-partitioned entry store. Every read and write
// filters on the owner in the store itself; rows that are missing or owned
// by someone else are reported as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Get(ctx context.Context, id, userID int64) (*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, id, userID int64) error
	Count(ctx context.Context, userID int64) (int, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]*models.Entry, error)
}
