package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/profiler/internal/config"
	"github.com/jonesrussell/profiler/internal/database"
	"github.com/jonesrussell/profiler/internal/logging"
)

// DatabaseComponents holds the database connection and the feedback store.
type DatabaseComponents struct {
	DB           *sqlx.DB
	FeedbackRepo *database.FeedbackRepository
}

// SetupDatabase connects the feedback store and applies migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, logger logging.Logger) (*DatabaseComponents, error) {
	dbConfig := database.Config{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	}

	logger.Info("connecting to feedback database",
		logging.String("driver", dbConfig.Driver),
		logging.String("host", dbConfig.Host),
		logging.String("database", dbConfig.DBName),
	)

	db, err := database.Connect(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("feedback database ready")

	return &DatabaseComponents{
		DB:           db,
		FeedbackRepo: database.NewFeedbackRepository(db),
	}, nil
}
