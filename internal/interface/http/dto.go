package handlers

import (
	"time"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
)

type registerRequest struct {
	Name         string `json:"nombre" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	CookingLevel string `json:"nivelDeCocina" binding:"omitempty,cooklevel"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name     *string `json:"nombre" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}

type authResponse struct {
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

type userResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	CookingLevel string `json:"nivelDeCocina"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CookingLevel: string(u.CookingLevel)}
}

type updateProfileResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"usuario"`
}

type createRecipeRequest struct {
	Title           string   `json:"titulo" binding:"required"`
	Ingredients     []string `json:"ingredientes" binding:"required,min=1,dive,required"`
	Instructions    []string `json:"instrucciones" binding:"required,min=1,dive,required"`
	PreparationTime int      `json:"tiempoDePreparacion" binding:"required,minutes"`
	DifficultyLevel string   `json:"nivelDeDificultad"`
}

type updateRecipeRequest struct {
	Title           *string  `json:"titulo" binding:"omitempty,min=1"`
	Ingredients     []string `json:"ingredientes" binding:"omitempty,dive,required"`
	Instructions    []string `json:"instrucciones" binding:"omitempty,dive,required"`
	PreparationTime *int     `json:"tiempoDePreparacion" binding:"omitempty,minutes"`
	DifficultyLevel *string  `json:"nivelDeDificultad"`
}

type authorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nombre"`
	CookingLevel string `json:"nivelDeCocina"`
}

// recipeResponse.Author holds either the author id or an *authorResponse.
type recipeResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"titulo"`
	Ingredients     []string  `json:"ingredientes"`
	Instructions    []string  `json:"instrucciones"`
	PreparationTime int       `json:"tiempoDePreparacion"`
	DifficultyLevel string    `json:"nivelDeDificultad"`
	Author          any       `json:"autor"`
	ImageURL        string    `json:"imagenUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toRecipeResponse(r *entity.Recipe) recipeResponse {
	return recipeResponse{
		ID:              r.ID,
		Title:           r.Title,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		PreparationTime: r.PreparationTime,
		DifficultyLevel: r.DifficultyLevel,
		Author:          r.AuthorID,
		ImageURL:        r.ImageURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toExpandedResponse(r *entity.RecipeWithAuthor) recipeResponse {
	out := toRecipeResponse(&r.Recipe)
	if r.Author == nil {
		out.Author = nil
		return out
	}
	out.Author = &authorResponse{ID: r.Author.ID, Name: r.Author.Name, CookingLevel: string(r.Author.CookingLevel)}
	return out
}

func toRecipeList(list []*entity.Recipe) []recipeResponse {
	out := make([]recipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRecipeResponse(r))
	}
	return out
}

func toExpandedList(list []*entity.RecipeWithAuthor) []recipeResponse {
	out := make([]recipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toExpandedResponse(r))
	}
	return out
}
