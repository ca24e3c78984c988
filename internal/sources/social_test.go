package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSocialClientRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/user-1/social" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"activity_count":12,"network_size":30,"tags":["ai","crypto"]}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewSocialClient(srv.URL)
	signal, err := client.Read(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if signal.ActivityCount != 12 || signal.NetworkSize != 30 {
		t.Errorf("signal = %+v", signal)
	}
	if signal.Empty() {
		t.Error("signal should not be empty")
	}
}

func TestSocialClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewSocialClient(srv.URL)
	signal, err := client.Read(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("404 must not error, got %v", err)
	}
	if !signal.Empty() {
		t.Errorf("signal = %+v, want empty", signal)
	}
}

func TestSocialClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSocialClient(srv.URL)
	if _, err := client.Read(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error on 500")
	}
}
