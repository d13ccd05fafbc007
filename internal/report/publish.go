package report

import (
	"fmt"
	"os"

	"github.com/opsbrain/tenx-tools/internal/config"
	"github.com/opsbrain/tenx-tools/internal/discord"
	"github.com/opsbrain/tenx-tools/internal/mqtt"
	"github.com/opsbrain/tenx-tools/internal/slack"
	"github.com/opsbrain/tenx-tools/internal/telegram"
	"github.com/opsbrain/tenx-tools/internal/tmpl"
	"github.com/opsbrain/tenx-tools/internal/webhook"
)

// Publish sends s to every configured endpoint: the webhook gets the
// plain-text summary, the MQTT topic gets JSON and chat services get a
// title with the stats underneath. output is the written path, available
// to the title as {output}. All endpoints are tried; the returned errors
// are for the caller to print as warnings.
func Publish(n config.Notify, s Summary, output string) []error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if n.Webhook.URL != "" {
		add(webhook.Send(n.Webhook.URL, []byte(s.Text()), "", n.Webhook.Headers))
	}

	if n.MQTT.Broker != "" {
		body, err := s.JSON()
		if err == nil {
			err = mqtt.Publish(mqttOptions(n.MQTT, s.Tool), body)
		}
		add(err)
	}

	title := Title(n.Title, s, output)
	body := s.Body()
	if n.Slack.WebhookURL != "" {
		add(slack.Send(n.Slack.WebhookURL, title, body))
	}
	if n.Discord.WebhookURL != "" {
		add(discord.Send(n.Discord.WebhookURL, title, body))
	}
	if n.Telegram.Token != "" {
		add(telegram.Send(n.Telegram.Token, n.Telegram.ChatID, title, body))
	}
	return errs
}

// Title expands the configured chat title for s, or returns the headline
// when none is set.
func Title(format string, s Summary, output string) string {
	if format == "" {
		return s.Headline
	}
	return tmpl.Expand(format, s.Vars(output))
}

// mqttOptions maps the config onto a publish. Credentials are expanded
// with os.ExpandEnv like the Telegram token.
func mqttOptions(c config.MQTT, tool string) mqtt.Options {
	id := c.ClientID
	if id == "" {
		id = fmt.Sprintf("tenx-%s", tool)
	}
	return mqtt.Options{
		Broker:   c.Broker,
		ClientID: id,
		Topic:    c.Topic,
		QoS:      c.QoS,
		Retain:   c.Retain,
		Username: os.ExpandEnv(c.Username),
		Password: os.ExpandEnv(c.Password),
	}
}
