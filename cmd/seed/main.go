package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/recetario-api/config"
	"github.com/oksasatya/recetario-api/internal/application"
	"github.com/oksasatya/recetario-api/internal/container"
	"github.com/oksasatya/recetario-api/internal/router"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

var demoRecipes = []application.RecipeInput{
	{
		Title:           "Tortilla de patatas",
		Ingredients:     []string{"4 huevos", "3 patatas", "1 cebolla", "aceite de oliva", "sal"},
		Instructions:    []string{"Pelar y cortar las patatas y la cebolla", "Freír a fuego lento", "Batir los huevos y mezclar", "Cuajar por ambos lados"},
		PreparationTime: 40,
		DifficultyLevel: "intermediate",
	},
	{
		Title:           "Gazpacho andaluz",
		Ingredients:     []string{"1 kg de tomates", "1 pepino", "1 pimiento verde", "1 diente de ajo", "aceite de oliva", "vinagre"},
		Instructions:    []string{"Trocear las verduras", "Triturar con aceite y vinagre", "Enfriar antes de servir"},
		PreparationTime: 15,
	},
	{
		Title:           "Huevos rotos con jamón",
		Ingredients:     []string{"2 huevos", "2 patatas", "jamón serrano"},
		Instructions:    []string{"Freír las patatas", "Freír los huevos", "Servir con el jamón por encima"},
		PreparationTime: 25,
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	container.SetConfig(cfg)
	container.SetLogger(logger)
	closeStore, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()
	container.SetJWT(helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL))

	deps, err := router.BuildDeps()
	if err != nil {
		log.Fatalf("failed to build services: %v", err)
	}

	email := "demo@recetario.local"
	password := "password123"
	res, err := deps.Accounts.Register(ctx, application.RegisterInput{Name: "Demo", Email: email, Password: password})
	if errors.Is(err, application.ErrEmailTaken) {
		res, err = deps.Accounts.Login(ctx, email, password)
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", res.UserID, email, password)

	existing, err := deps.Recipes.ListByAuthor(ctx, res.UserID)
	if err != nil {
		log.Fatalf("failed to list recipes: %v", err)
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.Title] = true
	}
	for _, in := range demoRecipes {
		if have[in.Title] {
			continue
		}
		r, err := deps.Recipes.Create(ctx, res.UserID, in)
		if err != nil {
			log.Fatalf("failed to seed recipe %q: %v", in.Title, err)
		}
		fmt.Printf("seeded recipe: id=%s titulo=%s\n", r.ID, r.Title)
	}
	deps.Levels.Wait()

	u, err := deps.Accounts.GetProfile(ctx, res.UserID, res.UserID)
	if err != nil {
		log.Fatalf("failed to load profile: %v", err)
	}
	fmt.Printf("cooking level: %s\n", u.CookingLevel)
}
