package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

type RecipeRepository struct {
	s *Store
}

func NewRecipeRepository(s *Store) *RecipeRepository {
	return &RecipeRepository{s: s}
}

func (r *RecipeRepository) Create(_ context.Context, rec *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt, rec.UpdatedAt = now, now
	r.s.recipes[rec.ID] = cloneRecipe(rec)
	r.s.recipeOrder = append(r.s.recipeOrder, rec.ID)
	return nil
}

func (r *RecipeRepository) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneRecipe(rec), nil
}

func matches(rec *entity.Recipe, f repository.RecipeFilter) bool {
	if f.AuthorID != "" && rec.AuthorID != f.AuthorID {
		return false
	}
	if f.Difficulty != "" && rec.DifficultyLevel != f.Difficulty {
		return false
	}
	if f.MaxTime != nil && rec.PreparationTime > *f.MaxTime {
		return false
	}
	if f.Ingredient != "" {
		needle := strings.ToLower(f.Ingredient)
		for _, ing := range rec.Ingredients {
			if strings.Contains(strings.ToLower(ing), needle) {
				return true
			}
		}
		return false
	}
	return true
}

func (r *RecipeRepository) Find(_ context.Context, f repository.RecipeFilter, sortByTitle bool) ([]*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Recipe, 0)
	for _, id := range r.s.recipeOrder {
		rec := r.s.recipes[id]
		if matches(rec, f) {
			out = append(out, cloneRecipe(rec))
		}
	}
	if sortByTitle {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	}
	return out, nil
}

func (r *RecipeRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Recipe, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.s.recipes[id]; ok {
			out = append(out, cloneRecipe(rec))
		}
	}
	return out, nil
}

func (r *RecipeRepository) Update(_ context.Context, rec *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.recipes[rec.ID]
	if !ok {
		return repository.ErrNotFound
	}
	rec.AuthorID = cur.AuthorID
	rec.CreatedAt = cur.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	r.s.recipes[rec.ID] = cloneRecipe(rec)
	return nil
}

func (r *RecipeRepository) DeleteOwned(_ context.Context, id, authorID string) (*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.recipes[id]
	if !ok || rec.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	r.removeLocked(id)
	return rec, nil
}

func (r *RecipeRepository) DeleteByAuthor(_ context.Context, authorID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var ids []string
	for _, id := range r.s.recipeOrder {
		if r.s.recipes[id].AuthorID == authorID {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		r.removeLocked(id)
	}
	return ids, nil
}

func (r *RecipeRepository) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, rec := range r.s.recipes {
		if rec.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *RecipeRepository) removeLocked(id string) {
	delete(r.s.recipes, id)
	for i, v := range r.s.recipeOrder {
		if v == id {
			r.s.recipeOrder = append(r.s.recipeOrder[:i], r.s.recipeOrder[i+1:]...)
			break
		}
	}
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
