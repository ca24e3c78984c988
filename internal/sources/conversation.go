// Package sources implements the concrete signal sources consumed by the
// collector: an Elasticsearch conversation store, a YAML declared-profile
// file, and an HTTP social-signal client.
package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/elasticsearch/mappings"
	"github.com/jonesrussell/profiler/internal/vocabulary"
)

// DefaultConversationIndex is the index the conversation analysis pipeline
// writes its per-user analysis documents to.
const DefaultConversationIndex = "conversation_analysis"

// ConversationStore reads conversation analysis documents from
// Elasticsearch. One document per analysis run; Read fetches the most
// recent one for the user.
type ConversationStore struct {
	client  *es.Client
	index   string
	matcher *vocabulary.Matcher
}

// NewConversationStore creates a store over the given client. An empty
// index name selects DefaultConversationIndex.
func NewConversationStore(client *es.Client, index string) *ConversationStore {
	if index == "" {
		index = DefaultConversationIndex
	}
	return &ConversationStore{
		client:  client,
		index:   index,
		matcher: vocabulary.NewMatcher(),
	}
}

// analysisDoc is the _source shape of a conversation analysis document.
// Snippets carry raw message excerpts for pipelines that do not extract
// topics themselves.
type analysisDoc struct {
	UserID       string             `json:"user_id"`
	Topics       []string           `json:"topics"`
	Interests    []string           `json:"interests"`
	Preferences  []string           `json:"preferences"`
	History      []string           `json:"history"`
	Snippets     []string           `json:"snippets"`
	MessageCount int                `json:"message_count"`
	Dimensions   *domain.Dimensions `json:"dimensions,omitempty"`
	AnalyzedAt   string             `json:"analyzed_at"`
}

// Read returns the latest conversation signal for the user. A user with no
// analysis documents yields a zero-count signal, which the collector treats
// as below the message minimum.
func (s *ConversationStore) Read(ctx context.Context, userID string) (*domain.ConversationSignal, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"user_id": userID,
			},
		},
		"size": 1,
		"sort": []map[string]interface{}{
			{
				"analyzed_at": map[string]interface{}{
					"order": "desc",
				},
			},
		},
	}

	queryBytes, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(queryBytes)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source analysisDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if len(searchResult.Hits.Hits) == 0 {
		return &domain.ConversationSignal{}, nil
	}

	doc := searchResult.Hits.Hits[0].Source
	signal := &domain.ConversationSignal{
		Topics:       doc.Topics,
		Interests:    doc.Interests,
		Preferences:  doc.Preferences,
		History:      doc.History,
		MessageCount: doc.MessageCount,
		Dimensions:   doc.Dimensions,
	}

	// Older pipeline versions index raw snippets without extracted topics.
	// Derive them from the registry keywords so the signal stays usable.
	if len(signal.Topics) == 0 && len(doc.Snippets) > 0 {
		signal.Topics = s.matcher.Detect(strings.Join(doc.Snippets, " "))
	}

	return signal, nil
}

// IndexAnalysis writes an analysis document for a user. The analysis
// pipeline owns this in production; it is exposed here for seeding
// development environments.
func (s *ConversationStore) IndexAnalysis(ctx context.Context, userID string, signal *domain.ConversationSignal, analyzedAt string) error {
	doc := analysisDoc{
		UserID:       userID,
		Topics:       signal.Topics,
		Interests:    signal.Interests,
		Preferences:  signal.Preferences,
		History:      signal.History,
		MessageCount: signal.MessageCount,
		Dimensions:   signal.Dimensions,
		AnalyzedAt:   analyzedAt,
	}

	docBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(docBytes),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(userID),
	)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}

// EnsureIndex creates the analysis index with its mapping if it does not
// exist yet.
func (s *ConversationStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(
		[]string{s.index},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	defer exists.Body.Close()

	if exists.StatusCode == 200 {
		return nil
	}

	mapping, err := mappings.ToMap(mappings.NewConversationAnalysisMapping())
	if err != nil {
		return fmt.Errorf("failed to build mapping: %w", err)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(mapping); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	res, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithContext(ctx),
		s.client.Indices.Create.WithBody(&buf),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// Ping verifies the Elasticsearch connection for health checks.
func (s *ConversationStore) Ping(_ context.Context) error {
	res, err := s.client.Info()
	if err != nil {
		return fmt.Errorf("failed to connect to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}
	return nil
}
