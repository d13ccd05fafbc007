// Package cli holds the flag handling, error reporting and end-of-run
// bookkeeping shared by the tenx commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/opsbrain/tenx-tools/internal/config"
	"github.com/opsbrain/tenx-tools/internal/eventlog"
	"github.com/opsbrain/tenx-tools/internal/paths"
	"github.com/opsbrain/tenx-tools/internal/report"
)

// Replaced in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Flags are the options every command accepts.
type Flags struct {
	Config string   // --config, -c
	Log    bool     // --log
	Args   []string // everything else, in order
}

// ParseFlags pulls the shared options out of args.
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--config requires a file path")
			}
			f.Config = args[i+1]
			i++
		case "--log":
			f.Log = true
		default:
			f.Args = append(f.Args, args[i])
		}
	}
	return f, nil
}

// Fatal prints "Error: ..." to stderr and exits with status 1.
func Fatal(format string, a ...any) {
	fmt.Fprintf(stderr, "Error: "+format+"\n", a...)
	exit(1)
}

// Warn prints a non-fatal problem with an optional resource.
func Warn(prefix string, err error) {
	fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
}

// LoadConfig resolves, reads and validates the configuration.
func LoadConfig(explicitPath string) (config.Config, error) {
	cfg, src, err := config.Load(explicitPath)
	if err != nil {
		return cfg, err
	}
	if err := config.Validate(cfg); err != nil {
		if src == "" {
			return cfg, fmt.Errorf("config: %w", err)
		}
		return cfg, fmt.Errorf("config %s: %w", src, err)
	}
	return cfg, nil
}

// ShouldLog reports whether the run is recorded: the config enables it
// or --log was given.
func ShouldLog(cfg config.Config, flag bool) bool {
	return cfg.Log || flag
}

// OpenStore opens the run history configured in cfg.
func OpenStore(cfg config.Config) (eventlog.Store, error) {
	return eventlog.Open(cfg.Storage, paths.DataDir())
}

// Finish prints the summary to out, records the run when logging is on
// and forwards the summary to the notification endpoints. Everything
// after the summary is best-effort and only warns on stderr.
func Finish(out io.Writer, cfg config.Config, logFlag bool, s report.Summary, run eventlog.Run) {
	report.Write(out, s)

	if ShouldLog(cfg, logFlag) {
		if err := record(cfg, run); err != nil {
			Warn("eventlog", err)
		}
	}
	for _, err := range report.Publish(cfg.Notify, s, run.Output) {
		Warn("notify", err)
	}
}

func record(cfg config.Config, run eventlog.Run) error {
	store, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Log(run)
}
