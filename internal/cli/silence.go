package cli

import (
	"github.com/spf13/cobra"

	"github.com/mviana/autoedit/internal/pipeline"
)

func newSilenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "silence <input>",
		Short: "Re-edit a video by removing silent stretches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSilence(cmd, args[0])
		},
	}

	cmd.Flags().String("out", "", "Output video path (default: derived Auto Edit name next to the input)")
	cmd.Flags().Float64("threshold", 0, "Silence threshold in dBFS (negative)")
	cmd.Flags().Int64("min-silence", 0, "Minimum silence duration in ms")
	cmd.Flags().Int64("padding", 0, "Signed padding in ms applied to each silence boundary")
	cmd.Flags().Int("threads", 0, "Encoder thread count")
	return cmd
}

func runSilence(cmd *cobra.Command, input string) error {
	s, tools, logf, err := commandEnv(cmd)
	if err != nil {
		return err
	}

	// flags beat file settings beat compiled defaults
	if cmd.Flags().Changed("threshold") {
		s.Video.SilenceThresholdDB, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("min-silence") {
		s.Video.MinSilenceLenMS, _ = cmd.Flags().GetInt64("min-silence")
	}
	if cmd.Flags().Changed("padding") {
		s.Video.PaddingMS, _ = cmd.Flags().GetInt64("padding")
	}
	if cmd.Flags().Changed("threads") {
		s.Video.Threads, _ = cmd.Flags().GetInt("threads")
	}
	out, _ := cmd.Flags().GetString("out")

	absIn, err := absInput(input)
	if err != nil {
		return err
	}

	ctx, cancel := runContext()
	defer cancel()

	res, err := pipeline.RunSilence(ctx, pipeline.SilenceConfig{
		Input:              absIn,
		Output:             out,
		SilenceThresholdDB: s.Video.SilenceThresholdDB,
		MinSilenceLenMS:    s.Video.MinSilenceLenMS,
		PaddingMS:          s.Video.PaddingMS,
		VideoCodec:         s.Video.VideoCodec,
		AudioCodec:         s.Video.AudioCodec,
		Preset:             s.Video.Preset,
		Threads:            s.Video.Threads,
		Tools:              tools,
		Logf:               logf,
	})
	if err != nil {
		return err
	}
	logf("done: %s (%d segment(s) kept)", res.OutputPath, len(res.Kept))
	return nil
}
