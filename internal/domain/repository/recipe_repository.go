package repository

import (
	"context"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

// RecipeFilter is a conjunction of the non-zero fields.
type RecipeFilter struct {
	Ingredient string // case-insensitive substring of any ingredient
	Difficulty string // exact match
	MaxTime    *int   // inclusive upper bound on preparation time
	AuthorID   string // exact match
}

type RecipeRepository interface {
	Create(ctx context.Context, r *entity.Recipe) error
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	// Find returns matching recipes; when sortByTitle is false, store order is kept.
	Find(ctx context.Context, f RecipeFilter, sortByTitle bool) ([]*entity.Recipe, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Recipe, error)
	Update(ctx context.Context, r *entity.Recipe) error
	// DeleteOwned removes the recipe if it belongs to authorID, returning ErrNotFound otherwise.
	DeleteOwned(ctx context.Context, id, authorID string) (*entity.Recipe, error)
	DeleteByAuthor(ctx context.Context, authorID string) ([]string, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}
