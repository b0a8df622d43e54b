package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/lapwatch/internal/config"
	"github.com/alexisbeaulieu97/lapwatch/internal/logger"
	"github.com/alexisbeaulieu97/lapwatch/internal/tui/watch"
	lwerrors "github.com/alexisbeaulieu97/lapwatch/pkg/errors"
)

// Replaced in tests.
var (
	isTerminal = func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	}
	hasDarkBackground = termenv.HasDarkBackground
)

func runStopwatch(cmd *cobra.Command, cfg *config.Config) error {
	if !isTerminal(os.Stdout) {
		return lwerrors.NewPreconditionError("renderer", "stdout is not a terminal; lapwatch needs an interactive display", nil)
	}

	log, closer, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	log = log.WithFields(map[string]any{
		"session_id": uuid.NewString(),
		"component":  "lapwatch",
	})

	m, err := watch.NewModel(watch.Options{
		Title:         cfg.Title,
		DarkTheme:     cfg.ResolveDark(hasDarkBackground),
		FrameInterval: cfg.FrameInterval.Std(),
		MinWidth:      cfg.MinWidth,
		MinHeight:     cfg.MinHeight,
		Logger:        log,
	})
	if err != nil {
		log.Error(err, "stopwatch initialisation failed")
		return err
	}

	log.WithFields(map[string]any{
		"theme":          cfg.Theme,
		"frame_interval": cfg.FrameInterval.Std().String(),
	}).Info("launching stopwatch")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		log.Error(err, "stopwatch execution failed")
		return fmt.Errorf("failed to run stopwatch: %w", err)
	}

	if fm, ok := final.(watch.Model); ok {
		summary := fm.Summary()
		log.With("summary", summary).Info("stopwatch closed")
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	}

	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger returns a discarding logger unless a log file is configured;
// the terminal itself is owned by the renderer.
func openLogger(cfg config.LogConfig) (*logger.Logger, io.Closer, error) {
	if cfg.File == "" {
		return logger.Discard(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Level, HumanReadable: true, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, f, nil
}
