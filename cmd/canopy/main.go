// Command canopy lays an outline file out into a viewport and prints the
// rows, for inspecting how a tree view would draw it.
//
// Usage:
//
//	canopy [options] outline.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vanderheijden86/canopy/pkg/config"
	"github.com/vanderheijden86/canopy/pkg/debug"
	"github.com/vanderheijden86/canopy/pkg/metrics"
	"github.com/vanderheijden86/canopy/pkg/outline"
	"github.com/vanderheijden86/canopy/pkg/reflow"
	"github.com/vanderheijden86/canopy/pkg/tree"
	"github.com/vanderheijden86/canopy/pkg/version"
	"github.com/vanderheijden86/canopy/pkg/watcher"
)

// errUsage is returned after the usage text has been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// identifierList is a repeatable identifier flag.
type identifierList []tree.Identifier

func (l *identifierList) String() string {
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func (l *identifierList) Set(s string) error {
	id, err := tree.ParseIdentifier(s)
	if err != nil {
		return err
	}
	if id.IsEmpty() {
		return fmt.Errorf("empty identifier")
	}
	*l = append(*l, id)
	return nil
}

type options struct {
	path       string
	configPath string
	width      int
	height     int
	mode       string
	trim       bool
	open       identifierList
	openAll    bool
	level      int
	selected   string
	keys       string
	format     string
	styled     bool
	follow     bool
	metrics    bool

	// set records the flags given on the command line.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("canopy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/canopy/config.yaml)")
	fs.IntVar(&opts.width, "width", 0, "Viewport width (default: terminal width, then config)")
	fs.IntVar(&opts.height, "height", 0, "Viewport height (default: terminal height, then config)")
	fs.StringVar(&opts.mode, "mode", "", "Line composition: wrap or truncate (default from config)")
	wrap := fs.Bool("wrap", false, "Shorthand for -mode wrap")
	fs.BoolVar(&opts.trim, "trim", false, "Drop leading whitespace of wrapped lines")
	fs.Var(&opts.open, "open", "Open the node with this identifier, e.g. 1.0 (repeatable)")
	fs.BoolVar(&opts.openAll, "open-all", false, "Open every node")
	fs.IntVar(&opts.level, "level", 0, "Open nodes so that this many levels are shown")
	fs.StringVar(&opts.selected, "select", "", "Select the node with this identifier")
	fs.StringVar(&opts.keys, "keys", "", "Comma-separated navigation: up,down,left,right,home,end,pgup,pgdown,toggle,collapse,expand")
	fs.StringVar(&opts.format, "format", "text", "Output format: text or json")
	fs.BoolVar(&opts.styled, "styled", false, "Render node styles with ANSI escapes")
	fs.BoolVar(&opts.follow, "follow", false, "Lay the outline out again whenever the file changes")
	fs.BoolVar(&opts.metrics, "metrics", false, "Print pipeline timings to stderr as JSON on exit")
	versionFlag := fs.Bool("version", false, "Show version")
	help := fs.Bool("help", false, "Show help")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: canopy [options] <outline.yaml|outline.json>")
		fmt.Fprintln(stderr, "\nLays an outline out into a viewport and prints the visible rows.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errUsage
		}
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if *help {
		fs.Usage()
		return nil, errUsage
	}
	if *versionFlag {
		opts.set["version"] = true
		return opts, nil
	}
	if *wrap {
		if opts.set["mode"] && opts.mode != reflow.ModeWrap.String() {
			return nil, fmt.Errorf("-wrap conflicts with -mode %s", opts.mode)
		}
		opts.mode = reflow.ModeWrap.String()
		opts.set["mode"] = true
	}
	if opts.format != "text" && opts.format != "json" {
		return nil, fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errUsage
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.set["version"] {
		fmt.Fprintf(stdout, "canopy %s\n", version.Version)
		return nil
	}
	if opts.metrics {
		defer printMetrics(stderr)
	}
	if opts.styled {
		// Escapes are wanted even when stdout is a pipe.
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	debug.Dump("config", cfg)
	width, height := viewportSize(opts, cfg, stdout)
	debug.Log("canopy: viewport %dx%d", width, height)

	roots, err := outline.Load(opts.path)
	if err != nil {
		return err
	}

	var state tree.State
	if err := applyState(&state, roots, opts, height); err != nil {
		return err
	}

	r := &renderer{
		view:   cfg.View(roots),
		width:  width,
		height: height,
		format: opts.format,
		styled: opts.styled,
		out:    stdout,
	}
	if err := r.render(&state); err != nil {
		return err
	}

	if opts.follow {
		return follow(ctx, opts.path, r, &state, stderr)
	}
	return nil
}

func loadConfig(opts *options) (config.Config, error) {
	var cfg config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if opts.set["mode"] {
		if _, err := reflow.ParseMode(opts.mode); err != nil {
			return cfg, err
		}
		cfg.Mode = opts.mode
	}
	if opts.set["trim"] {
		cfg.Trim = opts.trim
	}
	return cfg, nil
}

// viewportSize prefers explicit flags, then the terminal on stdout, then the
// configured fallback.
func viewportSize(opts *options, cfg config.Config, stdout io.Writer) (int, int) {
	width, height := cfg.Width, cfg.Height
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			width, height = w, h
		}
	}
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	return width, height
}

func applyState(state *tree.State, roots []*tree.Node, opts *options, height int) error {
	switch {
	case opts.openAll:
		state.OpenAll(roots)
	case opts.level != 0:
		state.OpenToLevel(roots, opts.level)
	}
	for _, id := range opts.open {
		state.Open(id)
	}
	if opts.selected != "" {
		id, err := tree.ParseIdentifier(opts.selected)
		if err != nil {
			return err
		}
		state.Select(id)
	}
	return applyKeys(state, roots, opts.keys, height)
}

func follow(ctx context.Context, path string, r *renderer, state *tree.State, stderr io.Writer) error {
	w, err := watcher.New(path, watcher.WithOnError(func(err error) {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changed():
		}

		debug.Section("reload " + path)
		roots, err := outline.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
			continue
		}
		r.view.Roots = roots
		if r.format == "text" {
			fmt.Fprintln(r.out)
		}
		if err := r.render(state); err != nil {
			return err
		}
	}
}

func printMetrics(w io.Writer) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metrics.AllTimingStats()); err != nil {
		fmt.Fprintf(w, "Error: encoding metrics: %v\n", err)
	}
}
