package application

import (
	"context"
	"io"
	"time"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

type TokenIssuer interface {
	Issue(userID, email string) (token string, expiresAt time.Time, err error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

// LevelTrigger schedules a cooking level recalculation for userID.
type LevelTrigger interface {
	Trigger(ctx context.Context, userID string)
}

// RecipeIndexer mirrors recipes into a full-text index.
type RecipeIndexer interface {
	Index(ctx context.Context, r *entity.Recipe) error
	Remove(ctx context.Context, ids ...string) error
	Search(ctx context.Context, q string, size int) ([]string, error)
}

// AccountNotifier is told about account lifecycle events (welcome email).
type AccountNotifier interface {
	AccountCreated(ctx context.Context, u *entity.User) error
}

type ImageStore interface {
	Upload(ctx context.Context, recipeID, filename, contentType string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}
