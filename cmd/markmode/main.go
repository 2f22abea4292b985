// Package main is the entry point for the markmode selection host.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/markmode/internal/app"
	"github.com/dshills/markmode/internal/config"
	"github.com/dshills/markmode/internal/grid"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		cols        int
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&cols, "cols", 120, "Buffer width in cells")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "markmode - console text selection host\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markmode [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Space        Enter mark mode\n")
		fmt.Fprintf(os.Stderr, "  Shift+arrows      Extend the selection\n")
		fmt.Fprintf(os.Stderr, "  Enter / Ctrl+C    Copy the selection\n")
		fmt.Fprintf(os.Stderr, "  Escape            Cancel, q quits\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("markmode %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	// Load returns the defaults alongside any error, so a broken config
	// file degrades to a warning
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := app.NewLoggerFromSettings(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	buffer, err := loadBuffer(flag.Arg(0), cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.NewApplication(cfg, buffer, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadBuffer fills a grid from the named file, from stdin when the name
// is "-", or with a small sample when no file is given.
func loadBuffer(name string, cols int) (*grid.Buffer, error) {
	var lines []string

	switch name {
	case "":
		lines = sampleLines()
	case "-":
		var err error
		lines, err = readLines(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	default:
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		lines, err = readLines(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}

	buffer := grid.NewBuffer(cols, len(lines))
	for y, line := range lines {
		buffer.SetRow(y, line)
	}
	return buffer, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func sampleLines() []string {
	return []string{
		"markmode selection demo",
		"",
		"Click and drag to select, or press Ctrl+Space for mark mode.",
		"Shift with the arrow keys extends the selection; holding Ctrl",
		"extends a word at a time. Enter copies to the clipboard.",
		"",
		"Wide glyphs stay intact: 日本語のテキスト mixed with ASCII.",
		"",
		"Press q to quit.",
	}
}
