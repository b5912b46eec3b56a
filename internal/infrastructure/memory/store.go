// Package memory provides process-local repositories used by tests and by
// STORE_DRIVER=memory for local development.
package memory

import (
	"sync"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

// Store keeps users and recipes in insertion order.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*entity.User
	emails      map[string]string // email -> user id
	recipes     map[string]*entity.Recipe
	recipeOrder []string
}

func NewStore() *Store {
	return &Store{
		users:   map[string]*entity.User{},
		emails:  map[string]string{},
		recipes: map[string]*entity.Recipe{},
	}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneRecipe(r *entity.Recipe) *entity.Recipe {
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	return &c
}
