package bootstrap

import (
	"github.com/jonesrussell/profiler/internal/catalog"
	"github.com/jonesrussell/profiler/internal/collector"
	"github.com/jonesrussell/profiler/internal/config"
	"github.com/jonesrussell/profiler/internal/database"
	"github.com/jonesrussell/profiler/internal/engine"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/recommend"
	"github.com/jonesrussell/profiler/internal/sources"
	"github.com/jonesrussell/profiler/internal/telemetry"
)

// EngineComponents holds the engine and the catalog client it fans out to.
type EngineComponents struct {
	Engine  *engine.Engine
	Catalog *catalog.Client
}

// SetupEngine assembles the collector, scorer, fetcher, and engine.
// feedbackRepo may be nil when the feedback store is disabled.
func SetupEngine(
	cfg *config.Config,
	conversationStore *sources.ConversationStore,
	feedbackRepo *database.FeedbackRepository,
	tp *telemetry.Provider,
	logger logging.Logger,
) *EngineComponents {
	declaredSource := sources.NewFileProfileSource(cfg.Profile.DeclaredProfilePath)

	var socialSource collector.SocialSource
	if cfg.Social.Enabled && cfg.Social.URL != "" {
		socialSource = sources.NewSocialClient(cfg.Social.URL)
	}

	var feedbackReader collector.FeedbackReader
	if feedbackRepo != nil {
		feedbackReader = feedbackRepo
	}

	signalCollector := collector.New(
		conversationStore,
		declaredSource,
		feedbackReader,
		socialSource,
		logger,
	)

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:   cfg.Catalog.URL,
		RPS:       cfg.Catalog.RequestsPerSec,
		Telemetry: tp,
	})

	eng := engine.New(
		signalCollector,
		recommend.NewScorer(logger),
		recommend.NewFetcher(catalogClient, logger),
		tp,
		logger,
		engine.Config{
			Version:              cfg.Service.Version,
			IncludeStaticProfile: !cfg.Profile.DisableStaticProfile,
			IncludeFeedback:      !cfg.Profile.DisableFeedback && feedbackRepo != nil,
			IncludeSocial:        socialSource != nil,
			PerCategoryLimit:     cfg.Catalog.PerCategoryLimit,
		},
	)

	return &EngineComponents{Engine: eng, Catalog: catalogClient}
}
