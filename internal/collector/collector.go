// Package collector gathers per-source identity signals. Sources are
// fetched concurrently and independently: one failing source never aborts
// the others, and no fetch is retried.
package collector

import (
	"context"
	"sync"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/logging"
)

// ConversationSource reads the analyzed conversation signal for a user.
// It must report the true message count so the minimum-message rule can
// be enforced here.
type ConversationSource interface {
	Read(ctx context.Context, userID string) (*domain.ConversationSignal, error)
}

// DeclaredProfileSource reads the static profile a user declared.
type DeclaredProfileSource interface {
	Read(ctx context.Context) (*domain.DeclaredProfile, error)
}

// FeedbackReader reads historical interaction feedback for a user.
type FeedbackReader interface {
	Read(ctx context.Context, userID string) (*domain.FeedbackSignal, error)
}

// SocialSource reads an optional public signal (e.g. a social profile).
type SocialSource interface {
	Read(ctx context.Context, userID string) (*domain.SocialSignal, error)
}

// Options selects which optional sources to fetch. The conversation source
// is always fetched.
type Options struct {
	IncludeStaticProfile bool
	IncludeFeedback      bool
	IncludeSocial        bool
}

// Collector fetches signal bundles from all configured sources.
// Any source may be nil, which is treated the same as a failed fetch.
type Collector struct {
	conversation ConversationSource
	declared     DeclaredProfileSource
	feedback     FeedbackReader
	social       SocialSource
	logger       logging.Logger
}

// New creates a collector over the given sources.
func New(
	conversation ConversationSource,
	declared DeclaredProfileSource,
	feedback FeedbackReader,
	social SocialSource,
	logger logging.Logger,
) *Collector {
	return &Collector{
		conversation: conversation,
		declared:     declared,
		feedback:     feedback,
		social:       social,
		logger:       logger,
	}
}

// Collect fetches every selected source concurrently and joins the results
// once all have settled. A failed or empty source yields an unavailable
// bundle; only the caller decides whether that is fatal.
func (c *Collector) Collect(ctx context.Context, userID string, opts Options) *domain.SignalSet {
	set := &domain.SignalSet{}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		set.Conversation, set.ConversationAvailable, set.ConversationErr = c.fetchConversation(ctx, userID)
	}()

	if opts.IncludeStaticProfile {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Declared, set.DeclaredAvailable = c.fetchDeclared(ctx)
		}()
	}

	if opts.IncludeFeedback {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Feedback, set.FeedbackAvailable = c.fetchFeedback(ctx, userID)
		}()
	}

	if opts.IncludeSocial {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Social, set.SocialAvailable = c.fetchSocial(ctx, userID)
		}()
	}

	wg.Wait()

	c.logger.Debug("signal collection complete",
		logging.String("user_id", userID),
		logging.Bool("conversation", set.ConversationAvailable),
		logging.Bool("declared", set.DeclaredAvailable),
		logging.Bool("feedback", set.FeedbackAvailable),
		logging.Bool("social", set.SocialAvailable),
	)

	return set
}

// fetchConversation reports the fetch error separately so callers can
// distinguish a broken source from a conversation below the minimum.
func (c *Collector) fetchConversation(ctx context.Context, userID string) (*domain.ConversationSignal, bool, error) {
	if c.conversation == nil {
		return nil, false, nil
	}
	signal, err := c.conversation.Read(ctx, userID)
	if err != nil {
		c.logger.Warn("conversation source unavailable",
			logging.String("user_id", userID),
			logging.Error(err))
		return nil, false, err
	}
	if !signal.Valid() {
		// Below the hard minimum the bundle is unavailable, never
		// silently substituted with defaults.
		c.logger.Warn("conversation below minimum message count",
			logging.String("user_id", userID),
			logging.Int("message_count", signal.MessageCount),
			logging.Int("minimum", domain.MinConversationMessages))
		return signal, false, nil
	}
	return signal, true, nil
}

func (c *Collector) fetchDeclared(ctx context.Context) (*domain.DeclaredProfile, bool) {
	if c.declared == nil {
		return nil, false
	}
	profile, err := c.declared.Read(ctx)
	if err != nil || profile == nil {
		if err != nil {
			c.logger.Warn("declared profile source unavailable", logging.Error(err))
		}
		return nil, false
	}
	return profile, true
}

func (c *Collector) fetchFeedback(ctx context.Context, userID string) (*domain.FeedbackSignal, bool) {
	if c.feedback == nil {
		return nil, false
	}
	feedback, err := c.feedback.Read(ctx, userID)
	if err != nil || feedback == nil {
		if err != nil {
			c.logger.Warn("feedback store unavailable",
				logging.String("user_id", userID),
				logging.Error(err))
		}
		return nil, false
	}
	return feedback, true
}

func (c *Collector) fetchSocial(ctx context.Context, userID string) (*domain.SocialSignal, bool) {
	if c.social == nil {
		return nil, false
	}
	signal, err := c.social.Read(ctx, userID)
	if err != nil || signal.Empty() {
		if err != nil {
			c.logger.Warn("social source unavailable",
				logging.String("user_id", userID),
				logging.Error(err))
		}
		return nil, false
	}
	return signal, true
}
