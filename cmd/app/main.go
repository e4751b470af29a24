package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type options struct {
	pause    string
	theme    string
	headless bool
	duration string
	report   bool
	history  int
	dbPath   string
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pause, "pause", "", "pause mode: suspend or display")
	fs.StringVar(&opts.theme, "theme", "", "color theme")
	headless := fs.String("headless", "", "run HHMMSS without the TUI, printing the label as it changes")
	fs.BoolVar(&opts.report, "report", false, "write the PDF history report and exit")
	fs.IntVar(&opts.history, "history", 0, "print the last N sessions and exit")
	fs.StringVar(&opts.dbPath, "db", filepath.Join(util.DataDir(config.AppName), config.DBFileName), "database path")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [HHMMSS]\n", config.AppName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *headless != "" {
		opts.headless = true
		opts.duration = *headless
	} else if fs.NArg() > 0 {
		opts.duration = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	}
	return opts, nil
}

// resolveSettings layers defaults, stored settings, environment and flags.
func resolveSettings(stored config.Lookup, opts options) (config.Settings, error) {
	s, err := config.Default().ApplyStored(stored).ApplyEnv()
	if err != nil {
		return s, err
	}
	if opts.pause != "" {
		if !config.ValidPauseMode(opts.pause) {
			return s, fmt.Errorf("-pause: unknown pause mode %q", opts.pause)
		}
		s.PauseMode = opts.pause
	}
	if opts.theme != "" {
		if _, ok := tui.Themes[opts.theme]; !ok {
			return s, fmt.Errorf("-theme: unknown theme %q", opts.theme)
		}
		s.Theme = opts.theme
	}
	return s, nil
}

// loadDigits validates an HHMMSS argument and types it into the setup view.
func loadDigits(m *timer.Machine, arg string) error {
	if len(arg) > config.MaxDigits {
		return fmt.Errorf("%w: %q", timer.ErrInvalidDigits, arg)
	}
	if _, err := timer.ParseDuration(timer.Pad(arg)); err != nil {
		return err
	}
	for _, d := range strings.TrimLeft(arg, "0") {
		m.PressDigit(d)
	}
	return nil
}

// isDurationErr reports whether err came from a malformed or empty HHMMSS argument.
func isDurationErr(err error) bool {
	return errors.Is(err, timer.ErrInvalidDigits) || errors.Is(err, timer.ErrStartDisabled)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s (%s %s)\n", config.AppName, tui.AppVersion, tui.GitCommit, tui.BuildTime)
		return 0
	}

	db, err := database.Open(ctx, opts.dbPath)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer db.Close()

	settings, err := resolveSettings(func(key string) (string, bool) {
		return db.GetSetting(ctx, key)
	}, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}

	switch {
	case opts.report:
		path, err := tui.GenerateHistoryReport(ctx, db, util.ReportsDir(config.AppName), time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Error generating PDF: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "PDF Report generated: %s\n", path)
		return 0
	case opts.history > 0:
		if err := printHistory(ctx, db, stdout, opts.history); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
		return 0
	case opts.duration != "" && (opts.headless || !isTerminal(stdout)):
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		h := newHeadless(ctx, db, settings, time.Now, stdout)
		wall := time.NewTicker(settings.TickInterval)
		defer wall.Stop()
		if err := h.run(sigCtx, opts.duration, wall.C); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			if isDurationErr(err) {
				return 2
			}
			return 1
		}
		return 0
	}

	return runTUI(ctx, db, settings, opts.duration, stderr)
}

func runTUI(ctx context.Context, db *database.Database, settings config.Settings, duration string, stderr io.Writer) int {
	logs, err := util.SetupLogFile(filepath.Join(util.DataDir(config.AppName), config.LogFileName))
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer logs.Close()

	model := tui.NewMainModel(ctx, db, settings)
	if duration != "" {
		if err := loadDigits(model.Machine(), duration); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 2
		}
		if err := model.Machine().Start(); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 2
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func printHistory(ctx context.Context, src tui.HistorySource, out io.Writer, n int) error {
	sessions, err := src.ListSessions(ctx, n)
	if err != nil {
		return err
	}
	stats, err := src.SessionStats(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		fmt.Fprintln(out, tui.FormatSession(s))
	}
	fmt.Fprintln(out, tui.FormatStats(stats))
	return nil
}
