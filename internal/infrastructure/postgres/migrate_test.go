package postgres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipesMigration_CascadesAuthorDelete(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("..", "..", "..", "db", "migrations", "000002_create_recipes.up.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "REFERENCES users (id) ON DELETE CASCADE")
}
