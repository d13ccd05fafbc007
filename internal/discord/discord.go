package discord

import (
	"github.com/opsbrain/tenx-tools/internal/httputil"
)

// maxContent is Discord's message length limit in characters.
const maxContent = 2000

// Send posts title and body to a Discord channel via webhook URL, the
// body as a code block. Messages over the limit lose the end of the body.
func Send(webhookURL, title, body string) error {
	return httputil.PostJSON(webhookURL, map[string]string{"content": Format(title, body)}, "discord: webhook")
}

// Format builds the message content.
func Format(title, body string) string {
	head := "**" + title + "**"
	if body == "" {
		return clip(head, maxContent)
	}
	const fence = "\n```\n"
	room := maxContent - len([]rune(head)) - 2*len(fence) + 1
	return head + fence + clip(body, room) + "\n```"
}

func clip(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
