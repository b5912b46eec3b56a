package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// RecipeIndex mirrors recipes into an Elasticsearch index for full-text
// queries over title, ingredients and instructions.
type RecipeIndex struct {
	ES   *elasticsearch.Client
	Name string
}

func NewRecipeIndex(es *elasticsearch.Client, name string) *RecipeIndex {
	return &RecipeIndex{ES: es, Name: name}
}

var recipeMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"id":                  map[string]any{"type": "keyword"},
			"titulo":              map[string]any{"type": "text", "analyzer": "spanish"},
			"ingredientes":        map[string]any{"type": "text", "analyzer": "spanish"},
			"instrucciones":       map[string]any{"type": "text", "analyzer": "spanish"},
			"tiempoDePreparacion": map[string]any{"type": "integer"},
			"nivelDeDificultad":   map[string]any{"type": "keyword"},
			"autor":               map[string]any{"type": "keyword"},
			"updated_at":          map[string]any{"type": "date"},
		},
	},
}

// EnsureIndex creates the index with the recipe mapping when it does not
// exist yet.
func (x *RecipeIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.ES.Indices.Exists([]string{x.Name}, x.ES.Indices.Exists.WithContext(c))
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	b, err := json.Marshal(recipeMapping)
	if err != nil {
		return err
	}
	res, err = x.ES.Indices.Create(x.Name, x.ES.Indices.Create.WithContext(c), x.ES.Indices.Create.WithBody(bytes.NewReader(b)))
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es create index %s: %s", x.Name, res.Status())
	}
	return nil
}

type recipeDoc struct {
	ID           string   `json:"id"`
	Title        string   `json:"titulo"`
	Ingredients  []string `json:"ingredientes"`
	Instructions []string `json:"instrucciones"`
	Time         int      `json:"tiempoDePreparacion"`
	Difficulty   string   `json:"nivelDeDificultad"`
	AuthorID     string   `json:"autor"`
	UpdatedAt    string   `json:"updated_at"`
}

func toDoc(r *entity.Recipe) recipeDoc {
	return recipeDoc{
		ID:           r.ID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Time:         r.PreparationTime,
		Difficulty:   r.DifficultyLevel,
		AuthorID:     r.AuthorID,
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (x *RecipeIndex) Index(ctx context.Context, r *entity.Recipe) error {
	b, err := json.Marshal(toDoc(r))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.Name, DocumentID: r.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index %s: %s", r.ID, res.Status())
	}
	return nil
}

// Remove deletes the given ids; ids that are not indexed are ignored.
func (x *RecipeIndex) Remove(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	body, err := json.Marshal(map[string]any{
		"query": map[string]any{"ids": map[string]any{"values": ids}},
	})
	if err != nil {
		return err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.ES.DeleteByQuery([]string{x.Name}, bytes.NewReader(body),
		x.ES.DeleteByQuery.WithContext(c),
		x.ES.DeleteByQuery.WithConflicts("proceed"),
	)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search returns the ids of the best matching recipes, most relevant first.
func (x *RecipeIndex) Search(ctx context.Context, q string, size int) ([]string, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"titulo^3", "ingredientes^2", "instrucciones"},
				"fuzziness": "AUTO",
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.ES.Search(x.ES.Search.WithContext(c), x.ES.Search.WithIndex(x.Name), x.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode == 404 {
		return []string{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.ID)
	}
	return out, nil
}
