package users

import (
	"context"

	"github.com/dmitrijs2005/diary/internal/server/models"
)

// Repository is the credential store. Implementations must enforce
// uniqueness of username and email themselves and report violations as
// common.ErrDuplicateEmail / common.ErrDuplicateUsername.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, userName string) (bool, error)
}
