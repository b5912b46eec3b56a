package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/recetario-api/internal/infrastructure/memory"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

type fixture struct {
	accounts *AccountService
	recipes  *RecipeService
	levels   *LevelRecalculator
	tokens   *helpers.JWTManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	recipes := memory.NewRecipeRepository(store)
	tokens := helpers.NewJWTManager("test-secret", time.Hour)

	levels := NewLevelRecalculator(users, recipes, logger)
	return &fixture{
		accounts: NewAccountService(users, recipes, helpers.NewPasswordHasher(bcrypt.MinCost), tokens, logger),
		recipes:  NewRecipeService(recipes, users, levels, logger),
		levels:   levels,
		tokens:   tokens,
	}
}

func (f *fixture) register(t *testing.T, name, email string) string {
	t.Helper()
	res, err := f.accounts.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "secret123"})
	require.NoError(t, err)
	return res.UserID
}

func (f *fixture) createRecipe(t *testing.T, authorID, title string, ingredients []string, minutes int) string {
	t.Helper()
	r, err := f.recipes.Create(context.Background(), authorID, RecipeInput{
		Title:           title,
		Ingredients:     ingredients,
		Instructions:    []string{"mix", "cook"},
		PreparationTime: minutes,
	})
	require.NoError(t, err)
	return r.ID
}
