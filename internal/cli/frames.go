package cli

import (
	"github.com/spf13/cobra"

	"github.com/mviana/autoedit/internal/pipeline"
)

func newFramesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames <input>",
		Short: "Extract keyframes at scene changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrames(cmd, args[0])
		},
	}

	cmd.Flags().String("out", "", "Output directory (default: keyframes/ next to the input)")
	cmd.Flags().Float64("scene-threshold", 0, "Scene change score in [0, 1]")
	cmd.Flags().Int("max-frames", 0, "Maximum number of frames to save")
	return cmd
}

func runFrames(cmd *cobra.Command, input string) error {
	s, tools, logf, err := commandEnv(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("scene-threshold") {
		s.Frames.SceneThreshold, _ = cmd.Flags().GetFloat64("scene-threshold")
	}
	if cmd.Flags().Changed("max-frames") {
		s.Frames.MaxFrames, _ = cmd.Flags().GetInt("max-frames")
	}
	out, _ := cmd.Flags().GetString("out")

	absIn, err := absInput(input)
	if err != nil {
		return err
	}

	ctx, cancel := runContext()
	defer cancel()

	res, err := pipeline.RunFrames(ctx, pipeline.FramesConfig{
		Input:          absIn,
		OutputDir:      out,
		SceneThreshold: s.Frames.SceneThreshold,
		MaxFrames:      s.Frames.MaxFrames,
		EveryNth:       s.Frames.EveryNth,
		Tools:          tools,
		Logf:           logf,
	})
	if err != nil {
		return err
	}
	logf("done: %d frame(s) in %s", res.FrameCount, res.OutputDir)
	return nil
}
