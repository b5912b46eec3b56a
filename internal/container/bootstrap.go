package container

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/config"
	mongoinfra "github.com/oksasatya/recetario-api/internal/infrastructure/mongo"
	pginfra "github.com/oksasatya/recetario-api/internal/infrastructure/postgres"
)

// OpenStore connects the configured store driver, prepares its schema
// (mongo indexes or postgres migrations) and registers the client. The
// returned func releases the connection.
func OpenStore(ctx context.Context, c *config.Config, logger *logrus.Logger) (func(), error) {
	switch c.StoreDriver {
	case config.StoreMongo:
		client, err := mongoinfra.Connect(ctx, c.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(c.MongoDB)
		if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		SetMongoDB(db)
		logger.WithField("db", c.MongoDB).Info("mongo store ready")
		return func() { _ = client.Disconnect(context.Background()) }, nil

	case config.StorePostgres:
		pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
			DSN:             c.PostgresDSN(),
			MaxConns:        c.DBMaxConns,
			MinConns:        c.DBMinConns,
			MaxConnLifetime: c.DBMaxConnLife,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.RunMigrations(c.PostgresDSN(), c.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		SetPGPool(pool)
		logger.WithField("db", c.DBName).Info("postgres store ready")
		return pool.Close, nil

	case config.StoreMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return func() {}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
}
