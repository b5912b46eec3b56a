package application

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	repo "github.com/oksasatya/recetario-api/internal/domain/repository"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

const defaultRecalcTimeout = 10 * time.Second

// LevelRecalculator keeps each user's cooking level in line with their
// recipe count. Triggered runs happen in the background and never report
// failures to the caller; errors are only logged.
type LevelRecalculator struct {
	Users   repo.UserRepository
	Recipes repo.RecipeRepository
	Logger  *logrus.Logger
	Timeout time.Duration

	wg sync.WaitGroup
}

func NewLevelRecalculator(users repo.UserRepository, recipes repo.RecipeRepository, logger *logrus.Logger) *LevelRecalculator {
	return &LevelRecalculator{Users: users, Recipes: recipes, Logger: logger, Timeout: defaultRecalcTimeout}
}

// Trigger recalculates userID's level on a new goroutine. The request's
// cancellation does not propagate; its values (request id) do.
func (l *LevelRecalculator) Trigger(ctx context.Context, userID string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		timeout := l.Timeout
		if timeout <= 0 {
			timeout = defaultRecalcTimeout
		}
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := l.Recalculate(c, userID); err != nil {
			helpers.LogError(l.Logger, "cooking level recalculation failed", err, logrus.Fields{"user_id": userID})
		}
	}()
}

// Recalculate counts userID's recipes and stores the derived level. When
// the count falls in the unmapped range the stored level is left alone.
func (l *LevelRecalculator) Recalculate(ctx context.Context, userID string) error {
	n, err := l.Recipes.CountByAuthor(ctx, userID)
	if err != nil {
		return err
	}
	level, ok := entity.LevelForRecipeCount(n)
	if !ok {
		return nil
	}
	return l.Users.SetCookingLevel(ctx, userID, level)
}

// Wait blocks until every triggered recalculation has finished.
func (l *LevelRecalculator) Wait() {
	l.wg.Wait()
}
