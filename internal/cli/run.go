package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mviana/autoedit/internal/config"
	"github.com/mviana/autoedit/internal/pipeline"
	"github.com/mviana/autoedit/internal/usecase"
)

// Long-form media can take hours through the encoder; bound it anyway.
const runTimeout = 6 * time.Hour

// commandEnv resolves the pieces every subcommand needs: the settings file
// overlaid with env-provided tool paths, the run context and the log sink.
func commandEnv(cmd *cobra.Command) (config.Settings, pipeline.Tools, usecase.Logf, error) {
	path, _ := cmd.Flags().GetString("settings")
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, pipeline.Tools{}, nil, err
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, pipeline.Tools{}, nil, fmt.Errorf("settings: %w", err)
	}

	tools := pipeline.Tools{
		FFmpeg:     getenvDefault("AUTOEDIT_FFMPEG", s.Tools.FFmpeg),
		FFprobe:    getenvDefault("AUTOEDIT_FFPROBE", s.Tools.FFprobe),
		WhisperBin: getenvDefault("AUTOEDIT_WHISPER_BIN", s.Tools.WhisperBin),
		Realesrgan: getenvDefault("AUTOEDIT_REALESRGAN", s.Tools.Realesrgan),
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	}
	return s, tools, logf, nil
}

func runContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), runTimeout)
}

func absInput(input string) (string, error) {
	return filepath.Abs(input)
}
