package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	u := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "h"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	err := repo.Create(ctx, &entity.User{Name: "Other", Email: "ana@example.com", Password: "h"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	other := &entity.User{Name: "Bea", Email: "bea@example.com", Password: "h"}
	require.NoError(t, repo.Create(ctx, other))
	other.Email = "ana@example.com"
	assert.ErrorIs(t, repo.Update(ctx, other), repository.ErrDuplicateEmail)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	u := &entity.User{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	got.Name = "changed"

	again, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Name)
}

func TestUserRepository_DeleteFreesEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	u := &entity.User{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID))

	_, err := repo.GetByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), repository.ErrNotFound)
}

func TestUserRepository_UpdateKeepsCookingLevel(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	u := &entity.User{Name: "Ana", Email: "ana@example.com", CookingLevel: entity.LevelBeginner}
	require.NoError(t, repo.Create(ctx, u))

	loaded, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, repo.SetCookingLevel(ctx, u.ID, entity.LevelIntermediate))

	loaded.Name = "Ana Maria"
	require.NoError(t, repo.Update(ctx, loaded))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, entity.LevelIntermediate, got.CookingLevel)
}

func seedRecipes(t *testing.T, repo *RecipeRepository) {
	t.Helper()
	ctx := context.Background()
	recipes := []*entity.Recipe{
		{Title: "Tortilla", Ingredients: []string{"Eggs", "Potato"}, Instructions: []string{"fry"}, PreparationTime: 30, DifficultyLevel: "beginner", AuthorID: "u1"},
		{Title: "Flan", Ingredients: []string{"egg yolk", "milk"}, Instructions: []string{"bake"}, PreparationTime: 60, DifficultyLevel: "advanced", AuthorID: "u2"},
		{Title: "Omelette", Ingredients: []string{"EGG"}, Instructions: []string{"cook"}, PreparationTime: 10, DifficultyLevel: "beginner", AuthorID: "u2"},
		{Title: "Salad", Ingredients: []string{"lettuce"}, Instructions: []string{"mix"}, PreparationTime: 5, DifficultyLevel: "beginner", AuthorID: "u1"},
	}
	for _, r := range recipes {
		require.NoError(t, repo.Create(ctx, r))
	}
}

func titles(rs []*entity.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}

func TestRecipeRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(NewStore())
	seedRecipes(t, repo)
	thirty := 30

	tests := []struct {
		name   string
		filter repository.RecipeFilter
		sorted bool
		want   []string
	}{
		{"all in store order", repository.RecipeFilter{}, false, []string{"Tortilla", "Flan", "Omelette", "Salad"}},
		{"all sorted", repository.RecipeFilter{}, true, []string{"Flan", "Omelette", "Salad", "Tortilla"}},
		{"ingredient and max time", repository.RecipeFilter{Ingredient: "egg", MaxTime: &thirty}, true, []string{"Omelette", "Tortilla"}},
		{"difficulty", repository.RecipeFilter{Difficulty: "advanced"}, true, []string{"Flan"}},
		{"author", repository.RecipeFilter{AuthorID: "u1"}, true, []string{"Salad", "Tortilla"}},
		{"no match", repository.RecipeFilter{Ingredient: "tofu"}, true, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter, tt.sorted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestRecipeRepository_Ownership(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(NewStore())
	rec := &entity.Recipe{Title: "Soup", Ingredients: []string{"water"}, Instructions: []string{"boil"}, PreparationTime: 20, AuthorID: "owner"}
	require.NoError(t, repo.Create(ctx, rec))

	_, err := repo.DeleteOwned(ctx, rec.ID, "intruder")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := repo.DeleteOwned(ctx, rec.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, deleted.ID)

	n, err := repo.CountByAuthor(ctx, "owner")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecipeRepository_DeleteByAuthor(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(NewStore())
	seedRecipes(t, repo)

	ids, err := repo.DeleteByAuthor(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	left, err := repo.Find(ctx, repository.RecipeFilter{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tortilla", "Salad"}, titles(left))
}
