package telegram

import (
	"fmt"
	"net/url"
	"os"

	"github.com/opsbrain/tenx-tools/internal/httputil"
)

// apiBase is the Bot API root; replaced in tests.
var apiBase = "https://api.telegram.org"

// Send posts title and body to a Telegram chat via the Bot API. Token and
// chat id are expanded with os.ExpandEnv so secrets can stay out of the
// config file.
func Send(token, chatID, title, body string) error {
	token = os.ExpandEnv(token)
	chatID = os.ExpandEnv(chatID)
	if token == "" || chatID == "" {
		return fmt.Errorf("telegram: token and chat id are required")
	}

	text := title
	if body != "" {
		text += "\n\n" + body
	}
	resp, err := httputil.PostForm(fmt.Sprintf("%s/bot%s/sendMessage", apiBase, token), url.Values{
		"chat_id":                  {chatID},
		"text":                     {text},
		"disable_web_page_preview": {"true"},
	})
	if err != nil {
		// The URL carries the token; keep it out of the message.
		if ue, ok := err.(*url.Error); ok {
			err = ue.Err
		}
		return fmt.Errorf("telegram: post: %w", err)
	}
	defer resp.Body.Close()

	return httputil.CheckStatus(resp, "telegram: API")
}
