package entity

import "time"

// DefaultDifficulty is applied when a recipe is created without a difficulty.
// Difficulty is free text and not tied to CookingLevel.
const DefaultDifficulty = "beginner"

type Recipe struct {
	ID              string
	Title           string
	Ingredients     []string
	Instructions    []string
	PreparationTime int // minutes
	DifficultyLevel string
	AuthorID        string
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *Recipe) OwnerID() string { return r.AuthorID }

// AuthorSummary is the public slice of a user embedded in recipe listings.
type AuthorSummary struct {
	ID           string
	Name         string
	CookingLevel CookingLevel
}

// RecipeWithAuthor pairs a recipe with its expanded author.
// Author is nil when the author no longer exists.
type RecipeWithAuthor struct {
	Recipe
	Author *AuthorSummary
}
