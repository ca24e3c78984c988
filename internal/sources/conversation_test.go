package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/profiler/internal/domain"
)

// newESServer fakes an Elasticsearch node. The product header is required
// or the v8 client rejects every response.
func newESServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *es.Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := es.NewClient(es.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return srv, client
}

func searchBody(docs ...analysisDoc) string {
	type hit struct {
		Source analysisDoc `json:"_source"`
	}
	hits := make([]hit, len(docs))
	for i, d := range docs {
		hits[i] = hit{Source: d}
	}
	body, _ := json.Marshal(map[string]interface{}{
		"hits": map[string]interface{}{"hits": hits},
	})
	return string(body)
}

func TestConversationStoreRead(t *testing.T) {
	doc := analysisDoc{
		UserID:       "user-1",
		Topics:       []string{"AI Tools", "Crypto"},
		Interests:    []string{"Development"},
		History:      []string{"asked about agents"},
		MessageCount: 7,
		Dimensions:   &domain.Dimensions{Conviction: 60, Intuition: 55, Contribution: 40},
	}
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(searchBody(doc))); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	store := NewConversationStore(client, "")
	signal, err := store.Read(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if signal.MessageCount != 7 {
		t.Errorf("MessageCount = %d, want 7", signal.MessageCount)
	}
	if len(signal.Topics) != 2 || signal.Topics[0] != "AI Tools" {
		t.Errorf("Topics = %v", signal.Topics)
	}
	if signal.Dimensions == nil || signal.Dimensions.Conviction != 60 {
		t.Errorf("Dimensions = %v", signal.Dimensions)
	}
	if !signal.Valid() {
		t.Error("signal should meet the message minimum")
	}
}

func TestConversationStoreReadNoDocuments(t *testing.T) {
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(searchBody())); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	store := NewConversationStore(client, "custom_index")
	signal, err := store.Read(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if signal.MessageCount != 0 {
		t.Errorf("MessageCount = %d, want 0", signal.MessageCount)
	}
	if signal.Valid() {
		t.Error("empty signal must not pass the message minimum")
	}
}

func TestConversationStoreSnippetFallback(t *testing.T) {
	doc := analysisDoc{
		UserID:       "user-2",
		Snippets:     []string{"I keep asking ChatGPT and Copilot for help", "thinking about solidity lately"},
		MessageCount: 5,
	}
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(searchBody(doc))); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	store := NewConversationStore(client, "")
	signal, err := store.Read(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(signal.Topics) == 0 {
		t.Fatal("expected topics derived from snippets")
	}
	if signal.Topics[0] != "AI Tools" {
		t.Errorf("Topics[0] = %q, want AI Tools", signal.Topics[0])
	}
}

func TestConversationStoreEnsureIndex(t *testing.T) {
	var created bool
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut:
			created = true
			var mapping map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&mapping); err != nil {
				t.Errorf("decode mapping: %v", err)
			}
			if _, ok := mapping["mappings"]; !ok {
				t.Error("create request carries no mappings")
			}
			if _, err := w.Write([]byte(`{"acknowledged":true}`)); err != nil {
				t.Errorf("write response: %v", err)
			}
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	store := NewConversationStore(client, "")
	if err := store.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex: %v", err)
	}
	if !created {
		t.Error("expected index creation request")
	}
}

func TestConversationStoreEnsureIndexExists(t *testing.T) {
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	store := NewConversationStore(client, "")
	if err := store.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex: %v", err)
	}
}

func TestConversationStoreSearchError(t *testing.T) {
	_, client := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"error":"boom"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	store := NewConversationStore(client, "")
	if _, err := store.Read(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error from failing search")
	}
}
