package httputil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReadSnippet(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", "(empty body)"},
		{"short", "hello", "hello"},
		{"truncated", strings.Repeat("x", 300), strings.Repeat("x", 200) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadSnippet(strings.NewReader(tt.in)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckStatus(t *testing.T) {
	ok := &http.Response{StatusCode: 204, Body: io.NopCloser(strings.NewReader(""))}
	if err := CheckStatus(ok, "webhook"); err != nil {
		t.Errorf("204: unexpected error %v", err)
	}

	bad := &http.Response{StatusCode: 403, Body: io.NopCloser(strings.NewReader("forbidden"))}
	err := CheckStatus(bad, "webhook")
	if err == nil {
		t.Fatal("403: expected error")
	}
	if got := err.Error(); got != "webhook returned 403: forbidden" {
		t.Errorf("error = %q", got)
	}
}

func TestPostJSON(t *testing.T) {
	var got map[string]int
	var ct string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	if err := PostJSON(srv.URL, map[string]int{"files": 13}, "test"); err != nil {
		t.Fatal(err)
	}
	if ct != "application/json" || got["files"] != 13 {
		t.Errorf("content-type %q, body %v", ct, got)
	}
}

func TestPostJSONUnmarshalable(t *testing.T) {
	err := PostJSON("http://127.0.0.1:1", map[string]any{"c": make(chan int)}, "test")
	if err == nil || !strings.HasPrefix(err.Error(), "test: marshal") {
		t.Errorf("err = %v", err)
	}
}
