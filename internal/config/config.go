package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/opsbrain/tenx-tools/internal/paths"
	"github.com/opsbrain/tenx-tools/internal/pbxproj"
)

// Embedded defaults. Both tools run with no config file at all.
const (
	DefaultIconDir     = "TenX/AppIcon"
	DefaultProjectRoot = "TenX"
	DefaultProjectName = "TenX"
	DefaultSourceExt   = ".swift"
	DefaultStyle       = "wordmark"
	DefaultText        = "10X"
	DefaultBundleID    = "com.opsbrain.TenX"
	DefaultStorage     = "file"
)

// DefaultSizes lists the icon pixel sizes rendered by default, largest first.
var DefaultSizes = []int{1024, 512, 256, 180, 120, 87, 80, 60, 58, 40, 29, 20}

// DefaultFonts lists the preferred wordmark fonts, tried in order.
var DefaultFonts = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/SFNSDisplay.ttf",
}

// Icons holds settings for the icon renderer.
type Icons struct {
	OutputDir    string   `json:"output_dir,omitempty"`
	Sizes        []int    `json:"sizes,omitempty"`
	Style        string   `json:"style,omitempty"` // "wordmark" | "letterforms"
	Text         string   `json:"text,omitempty"`
	Grid         bool     `json:"grid"`
	Fonts        []string `json:"fonts,omitempty"`
	Master       bool     `json:"master"`        // also write AppIcon-1024x1024.png
	Resample     bool     `json:"resample"`      // downsample from the 1024 master
	ContentsJSON bool     `json:"contents_json"` // write an asset catalog Contents.json
}

// Project holds settings for the Xcode project generator.
type Project struct {
	Root             string   `json:"root,omitempty"`
	Name             string   `json:"name,omitempty"`
	Extension        string   `json:"extension,omitempty"`
	SkipDirs         []string `json:"skip_dirs,omitempty"`
	BundleID         string   `json:"bundle_id,omitempty"`
	DeploymentTarget string   `json:"deployment_target,omitempty"`
	SwiftVersion     string   `json:"swift_version,omitempty"`
	MarketingVersion string   `json:"marketing_version,omitempty"`
}

// Webhook posts the run summary as text/plain.
type Webhook struct {
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// MQTT publishes the run summary to a broker topic.
// Username and Password are expanded with os.ExpandEnv.
type MQTT struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	QoS      byte   `json:"qos,omitempty"`
	Retain   bool   `json:"retain,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Chat posts the run summary to a Slack or Discord incoming webhook.
type Chat struct {
	WebhookURL string `json:"webhook_url,omitempty"`
}

// Telegram sends the run summary through a bot. Values may reference
// environment variables ($VAR).
type Telegram struct {
	Token  string `json:"token,omitempty"`
	ChatID string `json:"chat_id,omitempty"`
}

// Notify groups the optional completion notifications.
type Notify struct {
	// Title replaces the summary headline in chat messages. Placeholders:
	// {tool} {files} {size} {elapsed} {output}; {Tool} is title-cased.
	Title    string   `json:"title,omitempty"`
	Webhook  Webhook  `json:"webhook,omitempty"`
	MQTT     MQTT     `json:"mqtt,omitempty"`
	Slack    Chat     `json:"slack,omitempty"`
	Discord  Chat     `json:"discord,omitempty"`
	Telegram Telegram `json:"telegram,omitempty"`
}

// Config is the top-level configuration shared by all tools.
type Config struct {
	Log     bool    `json:"log,omitempty"`
	Storage string  `json:"storage,omitempty"` // "file" | "sqlite"
	Icons   Icons   `json:"icons"`
	Project Project `json:"project"`
	Notify  Notify  `json:"notify,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.Storage = DefaultStorage
	c.Icons = Icons{
		OutputDir:    DefaultIconDir,
		Sizes:        append([]int(nil), DefaultSizes...),
		Style:        DefaultStyle,
		Text:         DefaultText,
		Grid:         true,
		Fonts:        append([]string(nil), DefaultFonts...),
		Master:       true,
		ContentsJSON: true,
	}
	c.Project = Project{
		Root:             DefaultProjectRoot,
		Name:             DefaultProjectName,
		Extension:        DefaultSourceExt,
		SkipDirs:         append([]string(nil), pbxproj.DefaultSkipDirs...),
		BundleID:         DefaultBundleID,
		DeploymentTarget: "17.0",
		SwiftVersion:     "5.0",
		MarketingVersion: "1.0",
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.setDefaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate reports the first setting that cannot be acted on.
func Validate(cfg Config) error {
	if len(cfg.Icons.Sizes) == 0 {
		return fmt.Errorf("icons.sizes must not be empty")
	}
	for _, s := range cfg.Icons.Sizes {
		if s <= 0 {
			return fmt.Errorf("icons.sizes: %d is not a positive size", s)
		}
	}
	switch cfg.Icons.Style {
	case "wordmark", "letterforms":
	default:
		return fmt.Errorf("icons.style %q is not one of wordmark, letterforms", cfg.Icons.Style)
	}
	if cfg.Icons.OutputDir == "" {
		return fmt.Errorf("icons.output_dir must not be empty")
	}
	if cfg.Project.Name == "" {
		return fmt.Errorf("project.name must not be empty")
	}
	if cfg.Project.Extension == "" {
		return fmt.Errorf("project.extension must not be empty")
	}
	switch cfg.Storage {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage %q is not one of file, sqlite", cfg.Storage)
	}
	if cfg.Notify.MQTT.Broker != "" && cfg.Notify.MQTT.Topic == "" {
		return fmt.Errorf("notify.mqtt.topic is required when a broker is set")
	}
	if cfg.Notify.MQTT.QoS > 2 {
		return fmt.Errorf("notify.mqtt.qos must be 0, 1 or 2")
	}
	if (cfg.Notify.Telegram.Token == "") != (cfg.Notify.Telegram.ChatID == "") {
		return fmt.Errorf("notify.telegram needs both token and chat_id")
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. tenx-config.json next to the running binary
//  3. ~/.config/tenx/tenx-config.json
//
// When none of the implicit locations exist the embedded defaults are
// returned with an empty source path.
func Load(explicitPath string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := readConfig(explicitPath)
		return cfg, explicitPath, err
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			cfg, err := readConfig(p)
			return cfg, p, err
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			cfg, err := readConfig(p)
			return cfg, p, err
		}
	}

	return Default(), "", nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
