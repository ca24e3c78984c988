package collector_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/profiler/internal/collector"
	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/logging"
)

type stubConversation struct {
	signal *domain.ConversationSignal
	err    error
	delay  time.Duration
}

func (s *stubConversation) Read(ctx context.Context, _ string) (*domain.ConversationSignal, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.signal, s.err
}

type stubDeclared struct {
	profile *domain.DeclaredProfile
	err     error
}

func (s *stubDeclared) Read(context.Context) (*domain.DeclaredProfile, error) {
	return s.profile, s.err
}

type stubFeedback struct {
	signal *domain.FeedbackSignal
	err    error
}

func (s *stubFeedback) Read(context.Context, string) (*domain.FeedbackSignal, error) {
	return s.signal, s.err
}

type stubSocial struct {
	signal *domain.SocialSignal
	err    error
}

func (s *stubSocial) Read(context.Context, string) (*domain.SocialSignal, error) {
	return s.signal, s.err
}

func validConversation() *domain.ConversationSignal {
	return &domain.ConversationSignal{
		Topics:       []string{"AI Tools", "Crypto"},
		Interests:    []string{"Trading"},
		MessageCount: 8,
	}
}

func allOptions() collector.Options {
	return collector.Options{IncludeStaticProfile: true, IncludeFeedback: true, IncludeSocial: true}
}

func TestCollect_AllSourcesAvailable(t *testing.T) {
	c := collector.New(
		&stubConversation{signal: validConversation()},
		&stubDeclared{profile: &domain.DeclaredProfile{Role: "Founder"}},
		&stubFeedback{signal: &domain.FeedbackSignal{EventCount: 2}},
		&stubSocial{signal: &domain.SocialSignal{ActivityCount: 5, NetworkSize: 30}},
		logging.Nop(),
	)

	set := c.Collect(context.Background(), "user-1", allOptions())

	assert.True(t, set.ConversationAvailable)
	assert.True(t, set.DeclaredAvailable)
	assert.True(t, set.FeedbackAvailable)
	assert.True(t, set.SocialAvailable)
	assert.Equal(t, domain.QualityReal, set.ConversationQuality())
}

func TestCollect_OneFailureDoesNotAbortOthers(t *testing.T) {
	c := collector.New(
		&stubConversation{signal: validConversation()},
		&stubDeclared{err: errors.New("profile file missing")},
		&stubFeedback{signal: &domain.FeedbackSignal{EventCount: 7}},
		&stubSocial{err: errors.New("social api 500")},
		logging.Nop(),
	)

	set := c.Collect(context.Background(), "user-1", allOptions())

	assert.True(t, set.ConversationAvailable)
	assert.False(t, set.DeclaredAvailable)
	assert.Nil(t, set.Declared)
	assert.True(t, set.FeedbackAvailable)
	require.NotNil(t, set.Feedback)
	assert.Equal(t, 7, set.Feedback.EventCount)
	assert.False(t, set.SocialAvailable)
}

func TestCollect_ConversationBelowMinimumIsUnavailable(t *testing.T) {
	short := &domain.ConversationSignal{
		Topics:       []string{"AI Tools"},
		MessageCount: 2,
	}
	c := collector.New(&stubConversation{signal: short}, nil, nil, nil, logging.Nop())

	set := c.Collect(context.Background(), "user-1", collector.Options{})

	assert.False(t, set.ConversationAvailable)
	assert.Equal(t, domain.QualityNone, set.ConversationQuality())
	// The raw signal is kept so the caller can inspect the message count.
	require.NotNil(t, set.Conversation)
	assert.Equal(t, 2, set.Conversation.MessageCount)
	// A thin conversation is not a source failure.
	assert.NoError(t, set.ConversationErr)
}

func TestCollect_ConversationSourceFailureIsReported(t *testing.T) {
	readErr := errors.New("elasticsearch down")
	c := collector.New(&stubConversation{err: readErr}, nil, nil, nil, logging.Nop())

	set := c.Collect(context.Background(), "user-1", collector.Options{})

	assert.False(t, set.ConversationAvailable)
	assert.Nil(t, set.Conversation)
	assert.ErrorIs(t, set.ConversationErr, readErr)
}

func TestCollect_OptionsSkipSources(t *testing.T) {
	declared := &stubDeclared{profile: &domain.DeclaredProfile{Role: "Founder"}}
	c := collector.New(&stubConversation{signal: validConversation()}, declared, nil, nil, logging.Nop())

	set := c.Collect(context.Background(), "user-1", collector.Options{IncludeStaticProfile: false})

	assert.False(t, set.DeclaredAvailable)
	assert.Nil(t, set.Declared)
}

func TestCollect_NilSourcesAreUnavailable(t *testing.T) {
	c := collector.New(&stubConversation{signal: validConversation()}, nil, nil, nil, logging.Nop())

	set := c.Collect(context.Background(), "user-1", allOptions())

	assert.True(t, set.ConversationAvailable)
	assert.False(t, set.DeclaredAvailable)
	assert.False(t, set.FeedbackAvailable)
	assert.False(t, set.SocialAvailable)
}

func TestCollect_EmptySocialSignalIsUnavailable(t *testing.T) {
	c := collector.New(
		&stubConversation{signal: validConversation()},
		nil, nil,
		&stubSocial{signal: &domain.SocialSignal{}},
		logging.Nop(),
	)

	set := c.Collect(context.Background(), "user-1", allOptions())
	assert.False(t, set.SocialAvailable)
}

func TestCollect_SlowSourceOnlyDelaysJoin(t *testing.T) {
	c := collector.New(
		&stubConversation{signal: validConversation(), delay: 30 * time.Millisecond},
		&stubDeclared{profile: &domain.DeclaredProfile{}},
		nil, nil,
		logging.Nop(),
	)

	start := time.Now()
	set := c.Collect(context.Background(), "user-1", allOptions())
	elapsed := time.Since(start)

	assert.True(t, set.ConversationAvailable)
	assert.True(t, set.DeclaredAvailable)
	// Sources run concurrently, so total time tracks the slowest source,
	// not the sum of all of them.
	assert.Less(t, elapsed, 200*time.Millisecond)
}
