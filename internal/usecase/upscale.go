package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mviana/autoedit/internal/fileutil"
	"github.com/mviana/autoedit/internal/types"
)

type UpscaleInput struct {
	InputPath  string
	OutputPath string
	Scale      int

	Logf Logf
}

// UpscaleImage raises the resolution of one image.
func (u Usecase) UpscaleImage(ctx context.Context, in UpscaleInput) (string, error) {
	logf := orNoop(in.Logf)

	if _, err := os.Stat(in.InputPath); err != nil {
		return "", types.NewError(types.KindSourceOpen, "open source", err)
	}
	logf("upscaling %s (x%d)", in.InputPath, in.Scale)
	if err := u.d.Upscaler.Upscale(ctx, in.InputPath, in.OutputPath, in.Scale); err != nil {
		return "", types.NewError(types.KindEncoding, "upscale image", err)
	}
	return in.OutputPath, nil
}

// UpscaleDirectory sweeps a directory and upscales every supported image
// into outDir, keeping file names. Returns the number of images written.
func (u Usecase) UpscaleDirectory(ctx context.Context, inDir, outDir string, scale int, logf Logf) (int, error) {
	logf = orNoop(logf)

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return 0, types.NewError(types.KindSourceOpen, "open source", err)
	}
	if err := fileutil.EnsureDir(outDir); err != nil {
		return 0, types.NewError(types.KindEncoding, "prepare output dir", err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() || !fileutil.IsSupported(e.Name(), fileutil.KindImage) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return count, err
		}
		inPath := filepath.Join(inDir, e.Name())
		outPath := filepath.Join(outDir, e.Name())
		logf("upscaling %s (x%d)", e.Name(), scale)
		if err := u.d.Upscaler.Upscale(ctx, inPath, outPath, scale); err != nil {
			return count, types.NewError(types.KindEncoding, "upscale image", err)
		}
		count++
	}
	if count == 0 {
		logf("no supported images found in %s", inDir)
	}
	return count, nil
}
