package webhook

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendSuccess(t *testing.T) {
	var gotBody, gotContentType, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	if err := Send(srv.URL, []byte("icons done"), "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != "POST" {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotBody != "icons done" {
		t.Errorf("body = %q, want %q", gotBody, "icons done")
	}
	if gotContentType != "text/plain" {
		t.Errorf("content-type = %q, want %q", gotContentType, "text/plain")
	}
}

func TestSendContentTypeAndHeaders(t *testing.T) {
	t.Setenv("TEST_WEBHOOK_TOKEN", "secret123")

	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(204)
	}))
	defer srv.Close()

	headers := map[string]string{"Authorization": "Bearer $TEST_WEBHOOK_TOKEN"}
	if err := Send(srv.URL, []byte(`{"tool":"genproj"}`), "application/json", headers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret123")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		io.WriteString(w, "internal server error")
	}))
	defer srv.Close()

	err := Send(srv.URL, []byte("test"), "", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "internal server error") {
		t.Errorf("error should carry status and body snippet: %v", err)
	}
}

func TestSendBadURL(t *testing.T) {
	if err := Send("://nope", nil, "", nil); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
