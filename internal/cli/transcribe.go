package cli

import (
	"github.com/spf13/cobra"

	"github.com/mviana/autoedit/internal/pipeline"
)

func newTranscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <input>",
		Short: "Transcribe a video or audio file to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, args[0])
		},
	}

	cmd.Flags().String("out", "", "Output text path (default: '<name> - Transcript.txt' next to the input)")
	cmd.Flags().String("language", "", "Spoken language code")
	cmd.Flags().String("model", "", "Path to the speech model")
	cmd.Flags().Bool("srt", false, "Also write an SRT subtitle file")
	return cmd
}

func runTranscribe(cmd *cobra.Command, input string) error {
	s, tools, logf, err := commandEnv(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("language") {
		s.Transcription.Language, _ = cmd.Flags().GetString("language")
	}
	if cmd.Flags().Changed("model") {
		s.Transcription.Model, _ = cmd.Flags().GetString("model")
	}
	out, _ := cmd.Flags().GetString("out")
	srt, _ := cmd.Flags().GetBool("srt")

	absIn, err := absInput(input)
	if err != nil {
		return err
	}

	ctx, cancel := runContext()
	defer cancel()

	res, err := pipeline.RunTranscribe(ctx, pipeline.TranscribeConfig{
		Input:     absIn,
		OutputTxt: out,
		WriteSRT:  srt,
		Model:     s.Transcription.Model,
		Language:  s.Transcription.Language,
		Threads:   s.Transcription.Threads,
		Tools:     tools,
		Logf:      logf,
	})
	if err != nil {
		return err
	}
	logf("done: %s", res.TextPath)
	return nil
}
