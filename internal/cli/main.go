// Package cli is the command-line shell: one subcommand per operation.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:           "autoedit",
		Short:         "Media toolbox: silence removal, keyframes, upscaling, transcription",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.PersistentFlags().String("settings", "", "Path to a TOML settings file (default: autoedit.toml if present)")

	root.AddCommand(
		newSilenceCmd(),
		newFramesCmd(),
		newUpscaleCmd(),
		newTranscribeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
