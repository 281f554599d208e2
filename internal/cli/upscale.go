package cli

import (
	"github.com/spf13/cobra"

	"github.com/mviana/autoedit/internal/pipeline"
)

func newUpscaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upscale <input>",
		Short: "Upscale an image or a directory of images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpscale(cmd, args[0])
		},
	}

	cmd.Flags().String("out", "", "Output image or directory (default: derived from the input)")
	cmd.Flags().Int("scale", 0, "Upscale factor")
	return cmd
}

func runUpscale(cmd *cobra.Command, input string) error {
	s, tools, logf, err := commandEnv(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("scale") {
		s.Upscale.Scale, _ = cmd.Flags().GetInt("scale")
	}
	out, _ := cmd.Flags().GetString("out")

	absIn, err := absInput(input)
	if err != nil {
		return err
	}

	ctx, cancel := runContext()
	defer cancel()

	res, err := pipeline.RunUpscale(ctx, pipeline.UpscaleConfig{
		Input:    absIn,
		Output:   out,
		Scale:    s.Upscale.Scale,
		Model:    s.Upscale.Model,
		ModelDir: s.Upscale.ModelDir,
		Tools:    tools,
		Logf:     logf,
	})
	if err != nil {
		return err
	}
	logf("done: %d image(s) -> %s", res.Count, res.Output)
	return nil
}
