package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/internal/domain/repository"
)

type recipeDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"titulo"`
	Ingredients     []string           `bson:"ingredientes"`
	Instructions    []string           `bson:"instrucciones"`
	PreparationTime int                `bson:"tiempoDePreparacion"`
	DifficultyLevel string             `bson:"nivelDeDificultad"`
	Author          primitive.ObjectID `bson:"autor"`
	ImageURL        string             `bson:"imagenUrl,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d *recipeDocument) toEntity() *entity.Recipe {
	return &entity.Recipe{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Ingredients:     d.Ingredients,
		Instructions:    d.Instructions,
		PreparationTime: d.PreparationTime,
		DifficultyLevel: d.DifficultyLevel,
		AuthorID:        d.Author.Hex(),
		ImageURL:        d.ImageURL,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type RecipeRepository struct {
	coll *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{coll: db.Collection(recipesCollection)}
}

func (r *RecipeRepository) Create(ctx context.Context, rec *entity.Recipe) error {
	author, err := primitive.ObjectIDFromHex(rec.AuthorID)
	if err != nil {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	doc := recipeDocument{
		ID:              primitive.NewObjectID(),
		Title:           rec.Title,
		Ingredients:     rec.Ingredients,
		Instructions:    rec.Instructions,
		PreparationTime: rec.PreparationTime,
		DifficultyLevel: rec.DifficultyLevel,
		Author:          author,
		ImageURL:        rec.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	rec.ID = doc.ID.Hex()
	rec.CreatedAt, rec.UpdatedAt = now, now
	return nil
}

func (r *RecipeRepository) findOne(ctx context.Context, filter bson.M) (*entity.Recipe, error) {
	var doc recipeDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func ownedFilter(id, authorID string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid, "autor": author}, true
}

// buildFilter translates a RecipeFilter into a query document. It reports
// false when the filter can never match (malformed author id).
func buildFilter(f repository.RecipeFilter) (bson.M, bool) {
	q := bson.M{}
	if f.Ingredient != "" {
		q["ingredientes"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Ingredient), Options: "i"}
	}
	if f.Difficulty != "" {
		q["nivelDeDificultad"] = f.Difficulty
	}
	if f.MaxTime != nil {
		q["tiempoDePreparacion"] = bson.M{"$lte": *f.MaxTime}
	}
	if f.AuthorID != "" {
		author, err := primitive.ObjectIDFromHex(f.AuthorID)
		if err != nil {
			return nil, false
		}
		q["autor"] = author
	}
	return q, true
}

func (r *RecipeRepository) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]*entity.Recipe, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []recipeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*entity.Recipe, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

func (r *RecipeRepository) Find(ctx context.Context, f repository.RecipeFilter, sortByTitle bool) ([]*entity.Recipe, error) {
	q, ok := buildFilter(f)
	if !ok {
		return []*entity.Recipe{}, nil
	}
	opts := options.Find()
	if sortByTitle {
		opts.SetSort(bson.D{{Key: "titulo", Value: 1}})
	}
	return r.find(ctx, q, opts)
}

func (r *RecipeRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Recipe, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*entity.Recipe{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *RecipeRepository) Update(ctx context.Context, rec *entity.Recipe) error {
	oid, err := primitive.ObjectIDFromHex(rec.ID)
	if err != nil {
		return repository.ErrNotFound
	}
	rec.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"titulo":              rec.Title,
		"ingredientes":        rec.Ingredients,
		"instrucciones":       rec.Instructions,
		"tiempoDePreparacion": rec.PreparationTime,
		"nivelDeDificultad":   rec.DifficultyLevel,
		"imagenUrl":           rec.ImageURL,
		"updatedAt":           rec.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) DeleteOwned(ctx context.Context, id, authorID string) (*entity.Recipe, error) {
	filter, ok := ownedFilter(id, authorID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	var doc recipeDocument
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *RecipeRepository) DeleteByAuthor(ctx context.Context, authorID string) ([]string, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, nil
	}
	filter := bson.M{"autor": author}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.Hex())
	}
	return ids, nil
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, bson.M{"autor": author})
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
