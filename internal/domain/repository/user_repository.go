package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the persistence operations for users.
// Implementations return ErrNotFound for missing or malformed ids and
// ErrDuplicateEmail when the unique email constraint is violated.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs returns the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	SetCookingLevel(ctx context.Context, id string, level entity.CookingLevel) error
	Delete(ctx context.Context, id string) error
}
