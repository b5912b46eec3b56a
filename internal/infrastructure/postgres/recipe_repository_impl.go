package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

const recipeColumns = `id, title, ingredients, instructions, preparation_time, difficulty_level, author_id, image_url, created_at, updated_at`

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	rec := &entity.Recipe{}
	err := row.Scan(&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions, &rec.PreparationTime,
		&rec.DifficultyLevel, &rec.AuthorID, &rec.ImageURL, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *RecipeRepository) query(ctx context.Context, sql string, args ...any) ([]*entity.Recipe, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecipeRepository) Create(ctx context.Context, rec *entity.Recipe) error {
	if !validID(rec.AuthorID) {
		return repository.ErrNotFound
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO recipes (title, ingredients, instructions, preparation_time, difficulty_level, author_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, rec.Title, rec.Ingredients, rec.Instructions, rec.PreparationTime, rec.DifficultyLevel, rec.AuthorID, rec.ImageURL).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanRecipe(r.pool.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
}

// buildWhere renders the filter as a WHERE clause with positional args.
func buildWhere(f repository.RecipeFilter) (string, []any, bool) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.Ingredient != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM unnest(ingredients) AS i WHERE i ILIKE `+arg(containsPattern(f.Ingredient))+`)`)
	}
	if f.Difficulty != "" {
		conds = append(conds, `difficulty_level = `+arg(f.Difficulty))
	}
	if f.MaxTime != nil {
		conds = append(conds, `preparation_time <= `+arg(*f.MaxTime))
	}
	if f.AuthorID != "" {
		if !validID(f.AuthorID) {
			return "", nil, false
		}
		conds = append(conds, `author_id = `+arg(f.AuthorID))
	}
	if len(conds) == 0 {
		return "", nil, true
	}
	return " WHERE " + strings.Join(conds, " AND "), args, true
}

func (r *RecipeRepository) Find(ctx context.Context, f repository.RecipeFilter, sortByTitle bool) ([]*entity.Recipe, error) {
	where, args, ok := buildWhere(f)
	if !ok {
		return []*entity.Recipe{}, nil
	}
	sql := `SELECT ` + recipeColumns + ` FROM recipes` + where
	if sortByTitle {
		sql += ` ORDER BY title ASC`
	} else {
		sql += ` ORDER BY created_at ASC`
	}
	return r.query(ctx, sql, args...)
}

func (r *RecipeRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Recipe, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.Recipe{}, nil
	}
	return r.query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ANY($1::uuid[])`, ids)
}

func (r *RecipeRepository) Update(ctx context.Context, rec *entity.Recipe) error {
	if !validID(rec.ID) {
		return repository.ErrNotFound
	}
	err := r.pool.QueryRow(ctx, `
		UPDATE recipes
		SET title = $1, ingredients = $2, instructions = $3, preparation_time = $4,
		    difficulty_level = $5, image_url = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, rec.Title, rec.Ingredients, rec.Instructions, rec.PreparationTime, rec.DifficultyLevel, rec.ImageURL, rec.ID).
		Scan(&rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *RecipeRepository) DeleteOwned(ctx context.Context, id, authorID string) (*entity.Recipe, error) {
	if !validID(id) || !validID(authorID) {
		return nil, repository.ErrNotFound
	}
	return scanRecipe(r.pool.QueryRow(ctx,
		`DELETE FROM recipes WHERE id = $1 AND author_id = $2 RETURNING `+recipeColumns, id, authorID))
}

func (r *RecipeRepository) DeleteByAuthor(ctx context.Context, authorID string) ([]string, error) {
	if !validID(authorID) {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `DELETE FROM recipes WHERE author_id = $1 RETURNING id`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	if !validID(authorID) {
		return 0, nil
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM recipes WHERE author_id = $1`, authorID).Scan(&n)
	return n, err
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
