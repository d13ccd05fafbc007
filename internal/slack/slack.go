package slack

import (
	"github.com/opsbrain/tenx-tools/internal/httputil"
)

type text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type block struct {
	Type string `json:"type"`
	Text *text  `json:"text,omitempty"`
}

type message struct {
	Text   string  `json:"text"` // notification fallback
	Blocks []block `json:"blocks"`
}

// Send posts title and body to a Slack channel via incoming webhook URL.
// The body is shown as preformatted text under a bold title.
func Send(webhookURL, title, body string) error {
	msg := message{
		Text: title,
		Blocks: []block{
			{Type: "section", Text: &text{Type: "mrkdwn", Text: "*" + title + "*"}},
		},
	}
	if body != "" {
		msg.Blocks = append(msg.Blocks, block{
			Type: "section",
			Text: &text{Type: "mrkdwn", Text: "```" + body + "```"},
		})
	}
	return httputil.PostJSON(webhookURL, msg, "slack: webhook")
}
