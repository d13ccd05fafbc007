// mkicon renders the app icon set: one PNG per configured size, the
// 1024px master and the asset catalog Contents.json.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/opsbrain/tenx-tools/internal/appicon"
	"github.com/opsbrain/tenx-tools/internal/cli"
	"github.com/opsbrain/tenx-tools/internal/config"
	"github.com/opsbrain/tenx-tools/internal/eventlog"
	"github.com/opsbrain/tenx-tools/internal/icon"
	"github.com/opsbrain/tenx-tools/internal/paths"
	"github.com/opsbrain/tenx-tools/internal/report"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	flags, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		cli.Fatal("%v", err)
	}

	if len(flags.Args) > 0 {
		switch flags.Args[0] {
		case "help", "-h", "--help":
			printUsage()
		case "version", "-V", "--version":
			printVersion()
		default:
			cli.Fatal("unknown argument %q\nRun 'mkicon help' for usage.", flags.Args[0])
		}
		return
	}

	cfg, err := cli.LoadConfig(flags.Config)
	if err != nil {
		cli.Fatal("%v", err)
	}

	s, run, err := generate(cfg, os.Stdout)
	if err != nil {
		cli.Fatal("%v", err)
	}
	cli.Finish(os.Stdout, cfg, flags.Log, s, run)
}

// rendererOptions maps the icon settings onto the renderer.
func rendererOptions(c config.Icons) icon.Options {
	opts := icon.DefaultOptions()
	opts.Style = icon.Style(c.Style)
	opts.Text = c.Text
	opts.Grid = c.Grid
	opts.Fonts = c.Fonts
	return opts
}

// generate renders and writes the icon set described by cfg, printing
// progress to out.
func generate(cfg config.Config, out io.Writer) (report.Summary, eventlog.Run, error) {
	start := time.Now()
	r := icon.NewRenderer(rendererOptions(cfg.Icons))

	arts, err := appicon.Generate(cfg.Icons.OutputDir, cfg.Icons.Sizes, r, appicon.Options{
		Master:       cfg.Icons.Master,
		Resample:     cfg.Icons.Resample,
		ContentsJSON: cfg.Icons.ContentsJSON,
	}, out)
	if err != nil {
		return report.Summary{}, eventlog.Run{}, err
	}

	var total int64
	for _, a := range arts {
		total += int64(a.Bytes)
	}
	elapsed := time.Since(start)
	dir := paths.Rel(cfg.Icons.OutputDir)

	s := report.Summary{
		Tool:     eventlog.ToolIcons,
		Headline: "Created TenX icons in: " + dir,
		HintHead: "To use in Xcode:",
		Hints: []string{
			"Open Assets.xcassets",
			"Click on AppIcon",
			fmt.Sprintf("Drag %s to the 1024x1024 slot", appicon.MasterFileName),
		},
		Files:   len(arts),
		Bytes:   total,
		Elapsed: elapsed,
		Time:    start,
	}
	if cfg.Icons.Style == string(icon.StyleWordmark) && cfg.Icons.Text != "" {
		s.Details = append(s.Details, "Font: "+r.FontSource())
	}
	if cfg.Icons.ContentsJSON {
		s.Hints = []string{"Copy the folder into Assets.xcassets as AppIcon.appiconset"}
	}

	run := eventlog.Run{
		Time:      start,
		Tool:      eventlog.ToolIcons,
		Artifacts: len(arts),
		Bytes:     total,
		Elapsed:   elapsed,
		Output:    dir,
	}
	return s, run, nil
}

func printVersion() {
	fmt.Printf("mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicon %s - Render the TenX app icon set\n", version)
	fmt.Printf(`
Usage:
  mkicon [options]

Options:
  --config, -c <path>    Path to %[1]s
  --log                  Record the run in the history (see buildlog)

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>              (explicit)
  2. %[1]s next to binary     (portable)
  3. ~/.config/tenx/%[1]s     (user default)
  4. built-in defaults: %[2]s, sizes %[3]v
`, paths.ConfigFileName, config.DefaultIconDir, config.DefaultSizes)
}
