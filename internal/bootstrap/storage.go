package bootstrap

import (
	"context"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	"github.com/jonesrussell/profiler/internal/cache"
	"github.com/jonesrussell/profiler/internal/config"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/sources"
)

// SetupElasticsearch creates the conversation analysis store. The cluster
// being temporarily unreachable is not fatal; profile requests fail until
// it recovers.
func SetupElasticsearch(ctx context.Context, cfg *config.Config, logger logging.Logger) (*sources.ConversationStore, error) {
	client, err := es.NewClient(es.Config{
		Addresses: []string{cfg.Elasticsearch.URL},
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	store := sources.NewConversationStore(client, cfg.Elasticsearch.ConversationIndex)
	if err := store.Ping(ctx); err != nil {
		logger.Warn("Elasticsearch not reachable at startup", logging.Error(err))
		return store, nil
	}

	logger.Info("Elasticsearch connected successfully")
	if err := store.EnsureIndex(ctx); err != nil {
		logger.Warn("failed to ensure conversation analysis index", logging.Error(err))
	}
	return store, nil
}

// SetupCache creates the Redis-backed profile cache.
func SetupCache(ctx context.Context, cfg *config.Config, logger logging.Logger) *cache.ProfileCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	profileCache := cache.New(client, cfg.Redis.ProfileCacheTTL)
	if err := profileCache.Ping(ctx); err != nil {
		logger.Warn("Redis not reachable at startup", logging.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}
	return profileCache
}
