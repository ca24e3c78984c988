// Package engine orchestrates signal collection, fusion, classification,
// and recommendation scoring into the two operations callers consume.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/profiler/internal/collector"
	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/fusion"
	"github.com/jonesrussell/profiler/internal/identity"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/recommend"
	"github.com/jonesrussell/profiler/internal/telemetry"
)

// ErrInsufficientConversation is returned when the conversation source has
// fewer analyzed messages than the minimum. It is fatal to profile
// generation but never to the process; callers route it to a manual
// elicitation flow.
var ErrInsufficientConversation = errors.New("insufficient conversation data")

// ErrConversationUnavailable is returned when the conversation source
// itself failed, typically an Elasticsearch outage. Unlike
// ErrInsufficientConversation this is transient: callers should surface it
// as a service problem, not route the user to elicitation.
var ErrConversationUnavailable = errors.New("conversation source unavailable")

// neutralDimension is the baseline for any dimension no source supplied.
const neutralDimension = 50

// Config holds engine configuration.
type Config struct {
	Version              string
	IncludeStaticProfile bool
	IncludeFeedback      bool
	IncludeSocial        bool
	PerCategoryLimit     int
}

// Engine is the profiler's orchestrator. All state is per-request; the
// engine itself is safe for concurrent use.
type Engine struct {
	collector *collector.Collector
	scorer    *recommend.Scorer
	fetcher   *recommend.Fetcher
	telemetry *telemetry.Provider
	logger    logging.Logger
	config    Config
}

// New creates an engine over the given collaborators.
func New(
	c *collector.Collector,
	scorer *recommend.Scorer,
	fetcher *recommend.Fetcher,
	tp *telemetry.Provider,
	logger logging.Logger,
	config Config,
) *Engine {
	if config.PerCategoryLimit <= 0 {
		config.PerCategoryLimit = 5
	}
	return &Engine{
		collector: c,
		scorer:    scorer,
		fetcher:   fetcher,
		telemetry: tp,
		logger:    logger,
		config:    config,
	}
}

// GenerateProfile derives the identity profile for a user from whatever
// sources are available. Only a conversation below the minimum message
// count is fatal; every other missing source degrades the profile.
func (e *Engine) GenerateProfile(ctx context.Context, userID string) (*domain.IdentityProfile, error) {
	start := time.Now()

	var span trace.Span
	if e.telemetry != nil {
		ctx, span = e.telemetry.Tracer.Start(ctx, "engine.GenerateProfile",
			trace.WithAttributes(attribute.String("user_id", userID)))
		defer span.End()
	}

	set := e.collector.Collect(ctx, userID, collector.Options{
		IncludeStaticProfile: e.config.IncludeStaticProfile,
		IncludeFeedback:      e.config.IncludeFeedback,
		IncludeSocial:        e.config.IncludeSocial,
	})
	e.recordSources(set)

	if !set.ConversationAvailable {
		if e.telemetry != nil {
			e.telemetry.RecordProfile(false, 0, time.Since(start))
		}
		if set.ConversationErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrConversationUnavailable, set.ConversationErr)
		}
		if set.Conversation != nil {
			return nil, fmt.Errorf("%w: %d of %d messages analyzed",
				ErrInsufficientConversation, set.Conversation.MessageCount, domain.MinConversationMessages)
		}
		return nil, ErrInsufficientConversation
	}

	merged := fusion.Merge(set.Conversation.Categories(), set.Declared, set.Feedback)

	dims := baseDimensions(set.Conversation)
	adjusted := dims.Apply(merged.DimensionNudges)
	identityType := identity.Classify(adjusted)
	quality := collector.DataQualityScore(set)

	profile := &domain.IdentityProfile{
		UserID:            userID,
		EngineVersion:     e.config.Version,
		MainCategories:    merged.MainCategories,
		SubCategories:     merged.SubCategories,
		Dimensions:        adjusted,
		DimensionNudges:   merged.DimensionNudges,
		IdentityType:      identityType,
		DataQualityScore:  quality,
		ExcludedSkillIDs:  merged.ExcludedSkillIDs,
		CategoryWeights:   merged.CategoryWeights,
		ConversationTerms: conversationTerms(set.Conversation),
	}

	e.logger.Info("identity profile generated",
		logging.String("user_id", userID),
		logging.String("identity_type", string(identityType)),
		logging.Any("main_categories", profile.MainCategories),
		logging.Int("data_quality", quality),
		logging.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	if e.telemetry != nil {
		e.telemetry.RecordProfile(true, quality, time.Since(start))
	}

	return profile, nil
}

// RankCandidates scores a fetched candidate list against a profile.
// An empty ranked list is a valid result, never an error.
func (e *Engine) RankCandidates(ctx context.Context, candidates []domain.CandidateItem, profile *domain.IdentityProfile) []domain.ScoredCandidate {
	if e.telemetry != nil {
		var span trace.Span
		_, span = e.telemetry.Tracer.Start(ctx, "engine.RankCandidates",
			trace.WithAttributes(attribute.Int("candidates", len(candidates))))
		defer span.End()
	}

	ranked := e.scorer.Score(candidates, profile.Merged(), profile.IdentityType, profile.Dimensions, profile.ConversationTerms)

	if e.telemetry != nil {
		scores := make([]int, len(ranked))
		for i, sc := range ranked {
			scores[i] = sc.Score
		}
		e.telemetry.RecordRanking(scores)
	}
	return ranked
}

// Recommend fetches catalog candidates for the profile's categories and
// ranks them. This is the end-to-end path most callers want.
func (e *Engine) Recommend(ctx context.Context, profile *domain.IdentityProfile) []domain.ScoredCandidate {
	candidates := e.fetcher.Fetch(ctx, profile.Merged(), e.config.PerCategoryLimit)
	return e.RankCandidates(ctx, candidates, profile)
}

func (e *Engine) recordSources(set *domain.SignalSet) {
	if e.telemetry == nil {
		return
	}
	e.telemetry.RecordSource("conversation", set.ConversationAvailable)
	e.telemetry.RecordSource("declared", set.DeclaredAvailable)
	e.telemetry.RecordSource("feedback", set.FeedbackAvailable)
	e.telemetry.RecordSource("social", set.SocialAvailable)
}

// baseDimensions uses the conversation-derived dimensions when present and
// a neutral baseline otherwise.
func baseDimensions(signal *domain.ConversationSignal) domain.Dimensions {
	if signal != nil && signal.Dimensions != nil {
		return signal.Dimensions.Clamp()
	}
	return domain.Dimensions{
		Conviction:   neutralDimension,
		Intuition:    neutralDimension,
		Contribution: neutralDimension,
	}
}

func conversationTerms(signal *domain.ConversationSignal) []string {
	terms := make([]string, 0, len(signal.Topics)+len(signal.Interests))
	terms = append(terms, signal.Topics...)
	terms = append(terms, signal.Interests...)
	return terms
}
