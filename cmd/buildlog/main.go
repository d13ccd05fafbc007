// buildlog shows and maintains the run history recorded by mkicon and
// genproj when logging is enabled.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/opsbrain/tenx-tools/internal/cli"
	"github.com/opsbrain/tenx-tools/internal/eventlog"
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
	args := flags.Args

	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		}
	}

	cfg, err := cli.LoadConfig(flags.Config)
	if err != nil {
		cli.Fatal("%v", err)
	}
	store, err := cli.OpenStore(cfg)
	if err != nil {
		cli.Fatal("%v", err)
	}
	defer store.Close()

	if len(args) > 0 {
		switch args[0] {
		case "summary":
			summaryCmd(store, args[1:])
			return
		case "clean":
			cleanCmd(store, args[1:])
			return
		case "clear":
			clearCmd(store)
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			cli.Fatal("count must be a positive integer")
			return
		}
		count = n
	}
	listCmd(store, count)
}

func listCmd(store eventlog.Store, count int) {
	runs, err := store.Entries(0)
	if err != nil {
		cli.Fatal("%v", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println(emptyHint)
		return
	}
	fmt.Print(renderRuns(eventlog.Last(runs, count), report.Width(os.Stdout)))
}

func summaryCmd(store eventlog.Store, args []string) {
	days := 7
	if len(args) > 0 {
		if args[0] == "all" {
			days = 0
		} else {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				cli.Fatal("days must be a positive integer or \"all\"")
				return
			}
			days = n
		}
	}

	runs, err := store.Entries(days)
	if err != nil {
		cli.Fatal("%v", err)
		return
	}
	groups := eventlog.SummarizeByDay(runs, days)
	if len(groups) == 0 {
		if days == 0 {
			fmt.Println("No runs found.")
		} else {
			fmt.Println("No runs in the last", days, "days.")
		}
		return
	}
	fmt.Print(renderSummary(groups))
}

func cleanCmd(store eventlog.Store, args []string) {
	if len(args) == 0 {
		// No days argument: clear everything.
		clearCmd(store)
		return
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		cli.Fatal("days must be a positive integer")
		return
	}
	removed, err := store.Clean(days)
	if err != nil {
		cli.Fatal("%v", err)
		return
	}
	fmt.Printf("Removed %d runs older than %d days.\n", removed, days)
}

func clearCmd(store eventlog.Store) {
	if err := store.Clear(); err != nil {
		cli.Fatal("%v", err)
		return
	}
	fmt.Println("Run history cleared.")
}

const emptyHint = `No runs recorded. Enable logging with --log or "log": true in config.`

func printVersion() {
	fmt.Printf("buildlog %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("buildlog %s - Show the mkicon and genproj run history\n", version)
	fmt.Printf(`
Usage:
  buildlog [options] [count]        Show the last runs (default 10)
  buildlog [options] summary [days] Totals per day and tool (default 7, or "all")
  buildlog [options] clean [days]   Remove runs older than days (all without days)
  buildlog [options] clear          Remove all runs

Options:
  --config, -c <path>    Path to %s

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

History is stored in %s (storage "file") or %s (storage "sqlite")
under the tenx data directory.
`, paths.ConfigFileName, paths.LogFileName, paths.DBFileName)
}
