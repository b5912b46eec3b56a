package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

func TestBuildFilter(t *testing.T) {
	q, ok := buildFilter(repository.RecipeFilter{})
	require.True(t, ok)
	assert.Empty(t, q)

	author := primitive.NewObjectID()
	ten := 10
	q, ok = buildFilter(repository.RecipeFilter{Ingredient: "a.b", Difficulty: "hard", MaxTime: &ten, AuthorID: author.Hex()})
	require.True(t, ok)
	assert.Equal(t, primitive.Regex{Pattern: `a\.b`, Options: "i"}, q["ingredientes"])
	assert.Equal(t, "hard", q["nivelDeDificultad"])
	assert.Equal(t, bson.M{"$lte": 10}, q["tiempoDePreparacion"])
	assert.Equal(t, author, q["autor"])

	_, ok = buildFilter(repository.RecipeFilter{AuthorID: "nope"})
	assert.False(t, ok)
}

func TestObjectIDsSkipsMalformed(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, []primitive.ObjectID{id}, objectIDs([]string{"bad", id.Hex()}))
}
