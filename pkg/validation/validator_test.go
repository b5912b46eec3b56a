package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name        string   `json:"nombre" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Level       string   `json:"nivelDeCocina" binding:"omitempty,cooklevel"`
	Minutes     int      `json:"tiempoDePreparacion" binding:"minutes"`
	Ingredients []string `json:"ingredientes" binding:"required,min=1,dive,required"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()
	err := binding.Validator.ValidateStruct(&sample{
		Email:       "nope",
		Level:       "chef",
		Ingredients: []string{"egg", ""},
	})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"nombre":              "is required",
		"email":               "must be a valid email",
		"nivelDeCocina":       "must be one of: beginner, intermediate, advanced",
		"tiempoDePreparacion": "must be a positive number of minutes",
		"ingredientes[1]":     "is required",
	}, ToDetails(err))
}

func TestToDetails_DecodeErrors(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"tiempoDePreparacion":"diez"}`), &s)
	assert.Equal(t, map[string]string{"tiempoDePreparacion": "must be of type int"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{`), &s)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Nil(t, ToDetails(nil))
}
