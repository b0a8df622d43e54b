package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lapwatch/internal/config"
)

type rootFlags struct {
	configPath    string
	theme         string
	frameInterval time.Duration
	logLevel      string
	logFile       string
	title         string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lapwatch",
		Short:         "A terminal stopwatch with lap splits",
		Long:          "lapwatch runs an interactive stopwatch. Space starts and pauses, l records a lap, r resets and t switches theme.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runStopwatch(cmd, cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", config.ThemeAuto, "Colour theme: auto, light or dark")
	cmd.PersistentFlags().DurationVar(&flags.frameInterval, "frame-interval", config.Default().FrameInterval.Std(), "Delay between redraws while running")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level when --log-file is set")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append structured logs to this file")
	cmd.PersistentFlags().StringVar(&flags.title, "title", "", "Session title shown above the clock")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(flags))

	return cmd
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("frame-interval") {
		cfg.FrameInterval = config.Duration(flags.frameInterval)
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if changed("title") {
		cfg.Title = flags.title
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
