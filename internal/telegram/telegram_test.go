package telegram

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(h)
	old := apiBase
	apiBase = srv.URL
	t.Cleanup(func() {
		apiBase = old
		srv.Close()
	})
}

func TestSendSuccess(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "123:abc")

	var gotPath, gotChat, gotText string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotChat = r.FormValue("chat_id")
		gotText = r.FormValue("text")
	})

	if err := Send("$TEST_BOT_TOKEN", "42", "Created TenX icons", "14 files"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
	if gotChat != "42" || gotText != "Created TenX icons\n\n14 files" {
		t.Errorf("chat %q, text %q", gotChat, gotText)
	}
}

func TestSendError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	})

	err := Send("bad", "42", "t", "")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestSendMissingCredentials(t *testing.T) {
	t.Setenv("TEST_UNSET_TOKEN", "")
	if err := Send("$TEST_UNSET_TOKEN", "42", "t", ""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestSendHidesTokenOnTransportError(t *testing.T) {
	old := apiBase
	apiBase = "http://127.0.0.1:1"
	t.Cleanup(func() { apiBase = old })

	err := Send("secret-token", "42", "t", "")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Errorf("error leaks token: %v", err)
	}
}
