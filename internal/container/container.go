package container

import (
	"fmt"

	gcs "cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/recetario-api/config"
	"github.com/oksasatya/recetario-api/internal/application"
	repo "github.com/oksasatya/recetario-api/internal/domain/repository"
	"github.com/oksasatya/recetario-api/internal/infrastructure/memory"
	mongoinfra "github.com/oksasatya/recetario-api/internal/infrastructure/mongo"
	pginfra "github.com/oksasatya/recetario-api/internal/infrastructure/postgres"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	mongoDB     *mongo.Database
	memStore    *memory.Store
	redisClient *redis.Client
	gcsClient   *gcs.Client

	jwtManager *helpers.JWTManager
	levels     *application.LevelRecalculator

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)                 { cfg = c }
func GetConfig() *config.Config                  { return cfg }
func SetLogger(l *logrus.Logger)                 { logger = l }
func GetLogger() *logrus.Logger                  { return logger }
func SetPGPool(p *pgxpool.Pool)                  { pgPool = p }
func GetPGPool() *pgxpool.Pool                   { return pgPool }
func SetMongoDB(db *mongo.Database)              { mongoDB = db }
func GetMongoDB() *mongo.Database                { return mongoDB }
func SetRedis(r *redis.Client)                   { redisClient = r }
func GetRedis() *redis.Client                    { return redisClient }
func SetGCS(s *gcs.Client)                       { gcsClient = s }
func GetGCS() *gcs.Client                        { return gcsClient }
func SetLevels(l *application.LevelRecalculator) { levels = l }
func GetLevels() *application.LevelRecalculator  { return levels }
func SetRabbitPub(p *helpers.RabbitPublisher)    { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher     { return rabbitPub }
func SetES(c *elasticsearch.Client)              { esClient = c }
func GetES() *elasticsearch.Client               { return esClient }
func SetJWT(m *helpers.JWTManager)               { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

// Repositories returns the user and recipe repositories for the configured
// store driver. The matching client must have been set beforehand.
func Repositories() (repo.UserRepository, repo.RecipeRepository, error) {
	driver := config.StoreMongo
	if cfg != nil {
		driver = cfg.StoreDriver
	}
	switch driver {
	case config.StoreMongo:
		if mongoDB == nil {
			return nil, nil, fmt.Errorf("store driver %q: mongo database not set", driver)
		}
		return mongoinfra.NewUserRepository(mongoDB), mongoinfra.NewRecipeRepository(mongoDB), nil
	case config.StorePostgres:
		if pgPool == nil {
			return nil, nil, fmt.Errorf("store driver %q: postgres pool not set", driver)
		}
		return pginfra.NewUserRepository(pgPool), pginfra.NewRecipeRepository(pgPool), nil
	case config.StoreMemory:
		if memStore == nil {
			memStore = memory.NewStore()
		}
		return memory.NewUserRepository(memStore), memory.NewRecipeRepository(memStore), nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
