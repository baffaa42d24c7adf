package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if _, err := NewHTTPClient().R().Get(srv.URL); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotUA != DefaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}
