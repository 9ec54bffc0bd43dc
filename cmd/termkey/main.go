// Package main is the entry point for the termkey key inspector.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/termkey/internal/config"
	"github.com/dshills/termkey/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	KeymapDir  string
	LogLevel   string
	Kitty      bool
	NoWatch    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags win over config file and environment.
	if opts.Kitty {
		cfg.Input.KittyKeyboard = true
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.KeymapDir != "" {
		cfg.Keymaps.Paths = []string{opts.KeymapDir}
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	insp, err := newInspector(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer insp.Close()

	// Live-reload the config unless disabled. Reload only adjusts the
	// decoder options and log level; keymap paths need a restart.
	if !opts.NoWatch {
		w, err := config.NewWatcher(cfgPath, insp.ApplyConfig,
			config.WithErrorHandler(func(err error) {
				logger.Warn("config reload: %v", err)
			}))
		if err == nil {
			defer w.Close()
		} else {
			logger.Debug("config watch unavailable: %v", err)
		}
	}

	// Handle signals for graceful terminal restore.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		insp.Close()
		os.Exit(1)
	}()

	if err := insp.Run(); err != nil {
		if errors.Is(err, errQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.KeymapDir, "keymaps", "", "Directory of keymap files")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Kitty, "kitty", false, "Enable Kitty keyboard protocol decoding")
	flag.BoolVar(&opts.NoWatch, "no-watch", false, "Disable config live reload")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termkey - terminal key event inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termkey [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termkey                     Inspect keys with legacy decoding\n")
		fmt.Fprintf(os.Stderr, "  termkey -kitty              Also decode the Kitty keyboard protocol\n")
		fmt.Fprintf(os.Stderr, "  termkey -keymaps ./keymaps  Resolve chords against keymap files\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("termkey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}

// newLogger builds the logger from config, opening the log file when
// one is set. In raw mode stderr is unusable, so a file is the only way
// to get debug output while inspecting.
func newLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Logging.Level)

	if cfg.Logging.File == "" {
		return logging.New(lc), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	lc.Output = f
	return logging.New(lc), func() { f.Close() }, nil
}
