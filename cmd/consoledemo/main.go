// Package main is a demo program for consolekit: it cycles colored,
// centered text until Enter is pressed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/dshills/consolekit/backend"
	"github.com/dshills/consolekit/console"
	"github.com/dshills/consolekit/console/key"
	"github.com/dshills/consolekit/internal/log"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	renderer    string
	configPath  string
	logPath     string
	logLevel    string
	noRestore   bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("consoledemo %s\n", version)
		return 0
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	cfg := defaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = loadConfig(opts.configPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
	}

	// The terminal is in raw mode while the session is active, so
	// diagnostics go to a file, never stderr.
	var logger *log.Logger
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.New(f, "consoledemo", log.ParseLevel(opts.logLevel))
	}

	dev, err := newDevice(opts.renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create device: %v\n", err)
		return 1
	}

	// Restore the terminal before any panic diagnostic prints.
	defer console.HandlePanic()

	sess, err := console.Acquire(dev, console.Options{RestoreOnFault: !opts.noRestore})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer sess.Release()

	logger.Info("session acquired, renderer=%s", opts.renderer)
	runLoop(sess, cfg, logger)
	logger.Info("exiting")
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.renderer, "renderer", "tcell", "renderer to use (tcell or ansi)")
	flag.StringVar(&opts.configPath, "config", "", "path to a JSON config file")
	flag.StringVar(&opts.logPath, "log", "", "path to a log file (off when empty)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&opts.noRestore, "no-restore-hook", false, "disable the fault-safety terminal restore")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()

	return opts
}

func newDevice(renderer string) (console.Device, error) {
	switch renderer {
	case "tcell":
		return backend.NewTerminal()
	case "ansi":
		return backend.NewANSI()
	default:
		return nil, fmt.Errorf("unknown renderer %q", renderer)
	}
}

func runLoop(sess *console.Session, cfg config, logger *log.Logger) {
	// Size is sampled once; the demo does not track resizes.
	width, height := sess.Size()
	logger.Debug("console size %dx%d", width, height)

	colorIndex := 0
	ticks := 0

	for {
		if sess.HasInput() {
			if code, ok := sess.ReadKey(); ok {
				logger.Debug("key: %s", code)
				if code == key.KeyEnter {
					return
				}
			}
		}

		// The mouse must be drained every cycle even though the demo
		// ignores clicks; on some terminals a pending mouse report
		// starves key delivery.
		if x, y, ok := sess.MouseClick(); ok {
			logger.Debug("click at %d,%d", x, y)
		}

		if ticks%cfg.repaintEvery == 0 {
			sess.Repaint()
			sess.SetColor(cfg.colors[colorIndex], console.ColorDefault)
			sess.SetUnderline(cfg.underline)
			colorIndex = (colorIndex + 1) % len(cfg.colors)

			x := (width - len(cfg.text)) / 2
			if x < 0 {
				x = 0
			}
			sess.SetCursorPos(x, height/2)

			if err := sess.DrawText(cfg.text); err != nil {
				logger.Error("draw failed: %v", err)
				return
			}
		}

		time.Sleep(cfg.tick)
		ticks++
	}
}
