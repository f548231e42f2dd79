package commands

import (
	"context"
	"fmt"

	"github.com/niveshlabs/nivesh/internal/external/yahoo"
	"github.com/niveshlabs/nivesh/internal/marketdata"
	"github.com/niveshlabs/nivesh/internal/securities"
	"github.com/niveshlabs/nivesh/pkg/config"
	"github.com/niveshlabs/nivesh/pkg/database"
	"github.com/niveshlabs/nivesh/pkg/logger"
	"github.com/niveshlabs/nivesh/pkg/redis"
)

// deps is the shared wiring for commands that need the store and the
// market-data providers.
type deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        *database.DB
	Redis     *redis.Client
	Store     *securities.Repository
	Yahoo     *yahoo.Client
	Refresher *marketdata.Refresher
}

// buildDeps loads config and connects everything the data path needs
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	store := securities.NewRepository(db.Pool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	yahooClient := yahoo.New(cfg, log, redisClient)
	refresher := marketdata.New(store, yahooClient, log)

	return &deps{
		Config:    cfg,
		Logger:    log,
		DB:        db,
		Redis:     redisClient,
		Store:     store,
		Yahoo:     yahooClient,
		Refresher: refresher,
	}, nil
}

// Close releases the connections
func (d *deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
