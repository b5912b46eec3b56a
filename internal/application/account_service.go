package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	repo "github.com/oksasatya/recetario-api/internal/domain/repository"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

// AccountService handles registration, login and profile management.
// Index and Notifier are optional.
type AccountService struct {
	Users    repo.UserRepository
	Recipes  repo.RecipeRepository
	Hasher   PasswordHasher
	Tokens   TokenIssuer
	Index    RecipeIndexer
	Notifier AccountNotifier
	Logger   *logrus.Logger
}

func NewAccountService(users repo.UserRepository, recipes repo.RecipeRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *AccountService {
	return &AccountService{
		Users:   users,
		Recipes: recipes,
		Hasher:  hasher,
		Tokens:  tokens,
		Logger:  logger,
	}
}

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	CookingLevel entity.CookingLevel // optional, defaults to beginner
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// ProfilePatch carries the fields a user may change on their own profile.
// Nil fields are left untouched. The cooking level is derived and cannot be patched.
type ProfilePatch struct {
	Name     *string
	Email    *string
	Password *string
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", validationf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", validationf("email is invalid")
	}
	return email, nil
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationf("name is required")
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, validationf("password is required")
	}
	level := in.CookingLevel
	if level == "" {
		level = entity.LevelBeginner
	}
	if !level.Valid() {
		return nil, validationf("cooking level %q is not one of beginner, intermediate, advanced", level)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Name: name, Email: email, Password: hash, CookingLevel: level}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.Notifier != nil {
		if nErr := s.Notifier.AccountCreated(ctx, u); nErr != nil {
			helpers.LogWarn(s.Logger, "account created notification failed", nErr, logrus.Fields{"user_id": u.ID})
		}
	}
	return s.issue(u)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	ok, err := s.Hasher.Verify(password, u.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AccountService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		helpers.LogError(s.Logger, "issue token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{UserID: u.ID, Email: u.Email, Token: token, ExpiresAt: exp}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, targetID, callerID string) (*entity.User, error) {
	if err := authorizeOwner(callerID, ownerRef(targetID)); err != nil {
		return nil, err
	}
	return s.loadUser(ctx, targetID)
}

func (s *AccountService) loadUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, targetID, callerID string, patch ProfilePatch) (*entity.User, error) {
	if err := authorizeOwner(callerID, ownerRef(targetID)); err != nil {
		return nil, err
	}
	u, err := s.loadUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name cannot be empty")
		}
		u.Name = name
	}
	if patch.Email != nil {
		email, err := normalizeEmail(*patch.Email)
		if err != nil {
			return nil, err
		}
		u.Email = email
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, validationf("password cannot be empty")
		}
		hash, err := s.Hasher.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hash
	}

	if err := s.Users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes every recipe authored by targetID and then the user.
func (s *AccountService) DeleteAccount(ctx context.Context, targetID, callerID string) error {
	if err := authorizeOwner(callerID, ownerRef(targetID)); err != nil {
		return err
	}
	removed, err := s.Recipes.DeleteByAuthor(ctx, targetID)
	if err != nil {
		return fmt.Errorf("delete recipes: %w", err)
	}
	if s.Index != nil && len(removed) > 0 {
		if iErr := s.Index.Remove(ctx, removed...); iErr != nil {
			helpers.LogWarn(s.Logger, "recipe index cleanup failed", iErr, logrus.Fields{"user_id": targetID})
		}
	}
	if err := s.Users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
