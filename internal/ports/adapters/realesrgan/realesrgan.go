// Package realesrgan adapts the realesrgan-ncnn-vulkan CLI into the
// Upscaler port.
package realesrgan

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

type Adapter struct {
	bin      string
	modelDir string
	model    string
}

func New(binPath, modelDir, modelName string) *Adapter {
	if binPath == "" {
		binPath = "realesrgan-ncnn-vulkan"
	}
	return &Adapter{bin: binPath, modelDir: modelDir, model: modelName}
}

func (a *Adapter) Upscale(ctx context.Context, inPath, outPath string, scale int) error {
	args := []string{
		"-i", inPath,
		"-o", outPath,
	}
	if scale > 0 {
		args = append(args, "-s", strconv.Itoa(scale))
	}
	if a.model != "" {
		args = append(args, "-n", a.model)
	}
	if a.modelDir != "" {
		args = append(args, "-m", a.modelDir)
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("realesrgan upscale %s: %w\n%s", inPath, err, string(b))
	}
	return nil
}
