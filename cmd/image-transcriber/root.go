package main

import (
	"fmt"
	"io"
	"os"

	"image-transcriber/internal/config"
	"image-transcriber/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "image-transcriber [path...]",
		Short: "Step through images and type a transcription for each one",
		Long: `Image Transcriber shows each image that has no transcription yet and saves
what you type next to it as <image>.txt.

Each file argument is a candidate image and each directory argument adds the
files directly inside it. Without arguments the current directory is used.
Images that already have a .txt file are skipped.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.LogLevelSet = cmd.Flags().Changed("log-level")

			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}

			log, closeLog, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}

			application := NewApplication(cfg, log, closeLog)
			return application.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warning, error)")

	return cmd
}

// newLogger builds the run's logger from cfg. Records go to the configured log
// file, or to stderr when there is none. The returned closer releases the file.
func newLogger(cfg config.Config, stderr io.Writer) (*logger.ZerologAdapter, func() error, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	closer := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	return logger.New(out, format, level).With("session_id", uuid.NewString()), closer, nil
}
