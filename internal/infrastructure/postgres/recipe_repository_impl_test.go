package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

func TestBuildWhere(t *testing.T) {
	thirty := 30
	author := "7f1d0c5e-8f4a-4c55-9d3c-1c1f2f7f9a10"

	where, args, ok := buildWhere(repository.RecipeFilter{})
	assert.True(t, ok)
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args, ok = buildWhere(repository.RecipeFilter{Ingredient: "50%_egg", MaxTime: &thirty, AuthorID: author})
	assert.True(t, ok)
	assert.Equal(t, ` WHERE EXISTS (SELECT 1 FROM unnest(ingredients) AS i WHERE i ILIKE $1) AND preparation_time <= $2 AND author_id = $3`, where)
	assert.Equal(t, []any{`%50\%\_egg%`, 30, author}, args)

	_, _, ok = buildWhere(repository.RecipeFilter{AuthorID: "not-a-uuid"})
	assert.False(t, ok)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
}
