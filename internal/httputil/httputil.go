package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the shared HTTP client for completion notices. The timeout
// keeps an unresponsive endpoint from holding up the end of a run.
var Client = &http.Client{Timeout: 10 * time.Second}

// PostJSON marshals v and POSTs it using the shared Client. The prefix
// labels errors, e.g. "slack".
func PostJSON(endpoint string, v any, prefix string) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", prefix, err)
	}
	resp, err := Client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: post: %w", prefix, err)
	}
	defer resp.Body.Close()
	return CheckStatus(resp, prefix)
}

// PostForm issues a POST with form data using the shared Client.
func PostForm(endpoint string, data url.Values) (*http.Response, error) {
	return Client.PostForm(endpoint, data)
}

// CheckStatus returns an error if the response status code is not 2xx.
// The prefix is included in the error message for context (e.g. "webhook").
func CheckStatus(resp *http.Response, prefix string) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned %d: %s", prefix, resp.StatusCode, ReadSnippet(resp.Body))
	}
	return nil
}

// ReadSnippet reads up to 200 bytes from r for inclusion in error messages.
func ReadSnippet(r io.Reader) string {
	buf := make([]byte, 200)
	n, _ := io.ReadFull(r, buf)
	if n == 0 {
		return "(empty body)"
	}
	s := string(buf[:n])
	if n == 200 {
		s += "..."
	}
	return s
}
