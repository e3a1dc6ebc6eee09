package repository

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	UpdateRoles(ctx context.Context, id int64, roles model.RoleSet) error
	Delete(ctx context.Context, username string) (*model.User, error)
}
