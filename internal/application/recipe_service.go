package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	repo "github.com/oksasatya/recetario-api/internal/domain/repository"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

const (
	MaxImageBytes       = 5 << 20
	defaultFullTextSize = 20
	maxFullTextSize     = 100
)

// RecipeService implements recipe browsing and author-only mutations.
// Levels, Index and Images are optional.
type RecipeService struct {
	Recipes repo.RecipeRepository
	Users   repo.UserRepository
	Levels  LevelTrigger
	Index   RecipeIndexer
	Images  ImageStore
	Logger  *logrus.Logger
}

func NewRecipeService(recipes repo.RecipeRepository, users repo.UserRepository, levels LevelTrigger, logger *logrus.Logger) *RecipeService {
	return &RecipeService{Recipes: recipes, Users: users, Levels: levels, Logger: logger}
}

// SearchParams holds the optional search filters; zero values are ignored.
type SearchParams struct {
	Ingredient string
	Level      string
	MaxTime    *int
	UserID     string
}

type RecipeInput struct {
	Title           string
	Ingredients     []string
	Instructions    []string
	PreparationTime int
	DifficultyLevel string
}

// RecipePatch changes only the non-nil fields.
type RecipePatch struct {
	Title           *string
	Ingredients     []string
	Instructions    []string
	PreparationTime *int
	DifficultyLevel *string
}

func (p RecipePatch) empty() bool {
	return p.Title == nil && p.Ingredients == nil && p.Instructions == nil &&
		p.PreparationTime == nil && p.DifficultyLevel == nil
}

func cleanList(field string, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, validationf("%s must contain at least one entry", field)
	}
	return out, nil
}

func (s *RecipeService) Search(ctx context.Context, p SearchParams) ([]*entity.RecipeWithAuthor, error) {
	if p.MaxTime != nil && *p.MaxTime < 0 {
		return nil, validationf("maxTiempo must not be negative")
	}
	list, err := s.Recipes.Find(ctx, repo.RecipeFilter{
		Ingredient: strings.TrimSpace(p.Ingredient),
		Difficulty: strings.TrimSpace(p.Level),
		MaxTime:    p.MaxTime,
		AuthorID:   strings.TrimSpace(p.UserID),
	}, true)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, list)
}

func (s *RecipeService) ListAll(ctx context.Context) ([]*entity.RecipeWithAuthor, error) {
	list, err := s.Recipes.Find(ctx, repo.RecipeFilter{}, false)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, list)
}

func (s *RecipeService) Get(ctx context.Context, id string) (*entity.RecipeWithAuthor, error) {
	r, err := s.Recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	out, err := s.withAuthors(ctx, []*entity.Recipe{r})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (s *RecipeService) ListByAuthor(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	return s.Recipes.Find(ctx, repo.RecipeFilter{AuthorID: userID}, false)
}

// withAuthors expands the author of each recipe with a single lookup.
func (s *RecipeService) withAuthors(ctx context.Context, list []*entity.Recipe) ([]*entity.RecipeWithAuthor, error) {
	seen := make(map[string]struct{}, len(list))
	ids := make([]string, 0, len(list))
	for _, r := range list {
		if _, ok := seen[r.AuthorID]; ok {
			continue
		}
		seen[r.AuthorID] = struct{}{}
		ids = append(ids, r.AuthorID)
	}

	authors := map[string]*entity.AuthorSummary{}
	if len(ids) > 0 {
		users, err := s.Users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load authors: %w", err)
		}
		for _, u := range users {
			authors[u.ID] = &entity.AuthorSummary{ID: u.ID, Name: u.Name, CookingLevel: u.CookingLevel}
		}
	}

	out := make([]*entity.RecipeWithAuthor, 0, len(list))
	for _, r := range list {
		out = append(out, &entity.RecipeWithAuthor{Recipe: *r, Author: authors[r.AuthorID]})
	}
	return out, nil
}

func (s *RecipeService) Create(ctx context.Context, callerID string, in RecipeInput) (*entity.Recipe, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("titulo is required")
	}
	ingredients, err := cleanList("ingredientes", in.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := cleanList("instrucciones", in.Instructions)
	if err != nil {
		return nil, err
	}
	if in.PreparationTime <= 0 {
		return nil, validationf("tiempoDePreparacion must be a positive number of minutes")
	}
	difficulty := strings.TrimSpace(in.DifficultyLevel)
	if difficulty == "" {
		difficulty = entity.DefaultDifficulty
	}

	if _, err := s.Users.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	r := &entity.Recipe{
		Title:           title,
		Ingredients:     ingredients,
		Instructions:    instructions,
		PreparationTime: in.PreparationTime,
		DifficultyLevel: difficulty,
		AuthorID:        callerID,
	}
	if err := s.Recipes.Create(ctx, r); err != nil {
		return nil, err
	}
	s.index(ctx, r)
	s.recalculate(ctx, callerID)
	return r, nil
}

// loadOwned returns the recipe if callerID authored it. Missing and foreign
// recipes both yield ErrRecipeUnavailable.
func (s *RecipeService) loadOwned(ctx context.Context, id, callerID string) (*entity.Recipe, error) {
	r, err := s.Recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeUnavailable
		}
		return nil, err
	}
	if err := authorizeOwner(callerID, r); err != nil {
		return nil, ErrRecipeUnavailable
	}
	return r, nil
}

func (s *RecipeService) Update(ctx context.Context, id, callerID string, patch RecipePatch) (*entity.Recipe, error) {
	r, err := s.loadOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if patch.empty() {
		return r, nil
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, validationf("titulo cannot be empty")
		}
		r.Title = title
	}
	if patch.Ingredients != nil {
		if r.Ingredients, err = cleanList("ingredientes", patch.Ingredients); err != nil {
			return nil, err
		}
	}
	if patch.Instructions != nil {
		if r.Instructions, err = cleanList("instrucciones", patch.Instructions); err != nil {
			return nil, err
		}
	}
	if patch.PreparationTime != nil {
		if *patch.PreparationTime <= 0 {
			return nil, validationf("tiempoDePreparacion must be a positive number of minutes")
		}
		r.PreparationTime = *patch.PreparationTime
	}
	if patch.DifficultyLevel != nil {
		d := strings.TrimSpace(*patch.DifficultyLevel)
		if d == "" {
			d = entity.DefaultDifficulty
		}
		r.DifficultyLevel = d
	}

	if err := s.Recipes.Update(ctx, r); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeUnavailable
		}
		return nil, err
	}
	s.index(ctx, r)
	return r, nil
}

func (s *RecipeService) Delete(ctx context.Context, id, callerID string) error {
	r, err := s.Recipes.DeleteOwned(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecipeUnavailable
		}
		return err
	}
	if s.Index != nil {
		if iErr := s.Index.Remove(ctx, r.ID); iErr != nil {
			helpers.LogWarn(s.Logger, "recipe unindex failed", iErr, logrus.Fields{"recipe_id": r.ID})
		}
	}
	if s.Images != nil && r.ImageURL != "" {
		if dErr := s.Images.Delete(ctx, r.ImageURL); dErr != nil {
			helpers.LogWarn(s.Logger, "recipe image cleanup failed", dErr, logrus.Fields{"recipe_id": r.ID})
		}
	}
	s.recalculate(ctx, callerID)
	return nil
}

// FullText queries the search mirror and resolves hits against the store,
// keeping the relevance order. Hits missing from the store are skipped.
func (s *RecipeService) FullText(ctx context.Context, q string, size int) ([]*entity.RecipeWithAuthor, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, validationf("q is required")
	}
	if s.Index == nil {
		return []*entity.RecipeWithAuthor{}, nil
	}
	if size <= 0 {
		size = defaultFullTextSize
	}
	if size > maxFullTextSize {
		size = maxFullTextSize
	}

	ids, err := s.Index.Search(ctx, q, size)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	if len(ids) == 0 {
		return []*entity.RecipeWithAuthor{}, nil
	}
	found, err := s.Recipes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.SliceStable(found, func(i, j int) bool { return rank[found[i].ID] < rank[found[j].ID] })
	return s.withAuthors(ctx, found)
}

// UploadImage stores a photo for a recipe owned by callerID and records its URL.
// A previous photo is removed from storage after the new URL is saved.
func (s *RecipeService) UploadImage(ctx context.Context, id, callerID, filename, contentType string, size int64, body io.Reader) (*entity.Recipe, error) {
	if s.Images == nil {
		return nil, ErrImagesUnavailable
	}
	r, err := s.loadOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, validationf("imagen must be an image")
	}
	if size <= 0 || size > MaxImageBytes {
		return nil, validationf("imagen must be between 1 byte and %d bytes", MaxImageBytes)
	}

	url, err := s.Images.Upload(ctx, r.ID, filename, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	previous := r.ImageURL
	r.ImageURL = url
	if err := s.Recipes.Update(ctx, r); err != nil {
		return nil, err
	}
	if previous != "" && previous != url {
		if dErr := s.Images.Delete(ctx, previous); dErr != nil {
			helpers.LogWarn(s.Logger, "previous recipe image cleanup failed", dErr, logrus.Fields{"recipe_id": r.ID})
		}
	}
	s.index(ctx, r)
	return r, nil
}

func (s *RecipeService) index(ctx context.Context, r *entity.Recipe) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, r); err != nil {
		helpers.LogWarn(s.Logger, "recipe index failed", err, logrus.Fields{"recipe_id": r.ID})
	}
}

func (s *RecipeService) recalculate(ctx context.Context, userID string) {
	if s.Levels != nil {
		s.Levels.Trigger(ctx, userID)
	}
}
