package webhook

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/opsbrain/tenx-tools/internal/httputil"
)

// Send posts body to url. contentType defaults to text/plain; custom
// headers are applied after it, so callers can override it. Header values
// are expanded with os.ExpandEnv to support $VAR secrets.
func Send(url string, body []byte, contentType string, headers map[string]string) error {
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: new request: %w", err)
	}
	if contentType == "" {
		contentType = "text/plain"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "tenx-tools")
	for k, v := range headers {
		req.Header.Set(k, os.ExpandEnv(v))
	}

	resp, err := httputil.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	return httputil.CheckStatus(resp, "webhook")
}
