// genproj scans a source tree and writes an Xcode project.pbxproj that
// builds every source file into one iOS application target.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/opsbrain/tenx-tools/internal/cli"
	"github.com/opsbrain/tenx-tools/internal/config"
	"github.com/opsbrain/tenx-tools/internal/eventlog"
	"github.com/opsbrain/tenx-tools/internal/paths"
	"github.com/opsbrain/tenx-tools/internal/pbxproj"
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

	root := ""
	switch len(flags.Args) {
	case 0:
	case 1:
		switch flags.Args[0] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		}
		root = flags.Args[0]
	default:
		cli.Fatal("expected at most one project root\nRun 'genproj help' for usage.")
	}

	cfg, err := cli.LoadConfig(flags.Config)
	if err != nil {
		cli.Fatal("%v", err)
	}
	if root != "" {
		cfg.Project.Root = root
	}

	s, run, err := generate(cfg.Project)
	if err != nil {
		cli.Fatal("%v", err)
	}
	cli.Finish(os.Stdout, cfg, flags.Log, s, run)
}

func options(p config.Project) pbxproj.Options {
	return pbxproj.Options{
		Root:      p.Root,
		Name:      p.Name,
		Extension: p.Extension,
		SkipDirs:  p.SkipDirs,
		Target: pbxproj.Target{
			BundleID:         p.BundleID,
			DeploymentTarget: p.DeploymentTarget,
			SwiftVersion:     p.SwiftVersion,
			MarketingVersion: p.MarketingVersion,
		},
	}
}

func generate(p config.Project) (report.Summary, eventlog.Run, error) {
	start := time.Now()
	res, err := pbxproj.Generate(options(p))
	if err != nil {
		return report.Summary{}, eventlog.Run{}, err
	}
	elapsed := time.Since(start)

	projectDir := paths.Rel(filepath.Dir(res.Path))
	lang := strings.TrimPrefix(p.Extension, ".")
	if lang == "swift" {
		lang = "Swift"
	}

	s := report.Summary{
		Tool:     eventlog.ToolProject,
		Headline: "Created Xcode project at: " + projectDir,
		Details: []string{
			fmt.Sprintf("Found %d %s files", len(res.Files), lang),
			fmt.Sprintf("Minted %d object ids", res.IDs),
		},
		HintHead: "You can now open the project with:",
		Hints:    []string{fmt.Sprintf("open '%s'", projectDir)},
		Files:    1,
		Bytes:    int64(res.Bytes),
		Elapsed:  elapsed,
		Time:     start,
	}
	run := eventlog.Run{
		Time:      start,
		Tool:      eventlog.ToolProject,
		Artifacts: 1,
		Sources:   len(res.Files),
		Bytes:     int64(res.Bytes),
		Elapsed:   elapsed,
		Output:    paths.Rel(res.Path),
	}
	return s, run, nil
}

func printVersion() {
	fmt.Printf("genproj %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("genproj %s - Generate an Xcode project from a source tree\n", version)
	fmt.Printf(`
Usage:
  genproj [options] [root]

Arguments:
  root                   Directory to scan (default: config or %[2]s)

Options:
  --config, -c <path>    Path to %[1]s
  --log                  Record the run in the history (see buildlog)

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Hidden files and directories are skipped, as are the directories listed
in project.skip_dirs (default: %[3]s). The project is written to
<root>/<name>.xcodeproj/project.pbxproj, replacing any previous one.
`, paths.ConfigFileName, config.DefaultProjectRoot, strings.Join(pbxproj.DefaultSkipDirs, ", "))
}
