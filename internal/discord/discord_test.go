package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSendSuccess(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := Send(srv.URL, "Created Xcode project", "Found 9 Swift files"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "**Created Xcode project**\n```\nFound 9 Swift files\n```"
	if got["content"] != want {
		t.Errorf("content = %q, want %q", got["content"], want)
	}
}

func TestSendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if err := Send(srv.URL, "t", "b"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestFormatClipsLongBody(t *testing.T) {
	got := Format("title", strings.Repeat("x", 5000))
	if n := utf8.RuneCountInString(got); n > maxContent {
		t.Errorf("content is %d characters, limit %d", n, maxContent)
	}
	if !strings.HasSuffix(got, "…\n```") {
		t.Errorf("clipped content should end the code block: %q", got[len(got)-10:])
	}
}

func TestFormatTitleOnly(t *testing.T) {
	if got := Format("done", ""); got != "**done**" {
		t.Errorf("Format = %q", got)
	}
}
