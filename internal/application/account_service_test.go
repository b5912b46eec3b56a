package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestAccountService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.accounts.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.UserID)
	assert.Equal(t, "ana@example.com", res.Email)

	claims, err := f.tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)

	u, err := f.accounts.GetProfile(ctx, res.UserID, res.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.LevelBeginner, u.CookingLevel)
	assert.NotEqual(t, "secret123", u.Password)

	login, err := f.accounts.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, res.UserID, login.UserID)
	claims, err = f.tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ana", "ana@example.com")

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "x@example.com", Password: "p"}},
		{"missing email", RegisterInput{Name: "X", Password: "p"}},
		{"bad email", RegisterInput{Name: "X", Email: "not-an-email", Password: "p"}},
		{"missing password", RegisterInput{Name: "X", Email: "x@example.com"}},
		{"bad level", RegisterInput{Name: "X", Email: "x@example.com", Password: "p", CookingLevel: "chef"}},
		{"duplicate email", RegisterInput{Name: "X", Email: "ana@example.com", Password: "p"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.accounts.Register(ctx, tc.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAccountService_LoginFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ana", "ana@example.com")

	_, err := f.accounts.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = f.accounts.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrUnknownUser)
	assert.Equal(t, ErrUnknownUser.Error(), ErrInvalidCredentials.Error())
}

func TestAccountService_OwnershipChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "Ana", "ana@example.com")
	b := f.register(t, "Bea", "bea@example.com")

	_, err := f.accounts.GetProfile(ctx, b, a)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.accounts.UpdateProfile(ctx, b, a, ProfilePatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.accounts.DeleteAccount(ctx, b, a), ErrForbidden)

	// the ownership check runs before the lookup
	_, err = f.accounts.GetProfile(ctx, "missing", a)
	assert.ErrorIs(t, err, ErrForbidden)

	bea, err := f.accounts.GetProfile(ctx, b, b)
	require.NoError(t, err)
	assert.Equal(t, "Bea", bea.Name)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "Ana", "ana@example.com")
	f.register(t, "Bea", "bea@example.com")

	u, err := f.accounts.UpdateProfile(ctx, a, a, ProfilePatch{
		Name:     strPtr("Ana María"),
		Password: strPtr("newpass"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = f.accounts.Login(ctx, "ana@example.com", "newpass")
	require.NoError(t, err)
	_, err = f.accounts.Login(ctx, "ana@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.accounts.UpdateProfile(ctx, a, a, ProfilePatch{Email: strPtr("bea@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
	_, err = f.accounts.UpdateProfile(ctx, a, a, ProfilePatch{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAccountService_DeleteAccountCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "Ana", "ana@example.com")
	b := f.register(t, "Bea", "bea@example.com")
	f.createRecipe(t, a, "Tortilla", []string{"egg", "potato"}, 30)
	f.createRecipe(t, a, "Flan", []string{"egg", "milk"}, 60)
	keep := f.createRecipe(t, b, "Gazpacho", []string{"tomato"}, 15)
	f.levels.Wait()

	require.NoError(t, f.accounts.DeleteAccount(ctx, a, a))

	left, err := f.recipes.ListByAuthor(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, left)

	all, err := f.recipes.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep, all[0].ID)

	_, err = f.accounts.Login(ctx, "ana@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.ErrorIs(t, f.accounts.DeleteAccount(ctx, a, a), ErrUserNotFound)
}
