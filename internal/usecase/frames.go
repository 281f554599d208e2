package usecase

import (
	"context"

	"github.com/mviana/autoedit/internal/fileutil"
	"github.com/mviana/autoedit/internal/types"
)

type FramesInput struct {
	InputPath string
	OutputDir string

	SceneThreshold float64
	MaxFrames      int
	// EveryNth drives the regular-interval fallback when scene detection
	// finds nothing.
	EveryNth int

	Logf Logf
}

type FramesResult struct {
	OutputDir    string
	FrameCount   int
	UsedFallback bool
}

// ExtractFrames saves one frame per detected scene change, falling back to
// regular-interval extraction for videos with no detectable scenes.
func (u Usecase) ExtractFrames(ctx context.Context, in FramesInput) (FramesResult, error) {
	logf := orNoop(in.Logf)

	if _, err := u.d.Media.Probe(ctx, in.InputPath); err != nil {
		return FramesResult{}, types.NewError(types.KindSourceOpen, "open source", err)
	}
	if err := fileutil.EnsureDir(in.OutputDir); err != nil {
		return FramesResult{}, types.NewError(types.KindEncoding, "prepare output dir", err)
	}

	logf("detecting scene changes (threshold %g)", in.SceneThreshold)
	n, err := u.d.Frames.ExtractKeyframes(ctx, in.InputPath, in.OutputDir, in.SceneThreshold, in.MaxFrames)
	if err != nil {
		return FramesResult{}, types.NewError(types.KindEncoding, "extract keyframes", err)
	}
	if n > 0 {
		logf("saved %d keyframe(s) to %s", n, in.OutputDir)
		return FramesResult{OutputDir: in.OutputDir, FrameCount: n}, nil
	}

	logf("no scenes detected; extracting every %dth frame", in.EveryNth)
	n, err = u.d.Frames.ExtractEveryNth(ctx, in.InputPath, in.OutputDir, in.EveryNth, in.MaxFrames)
	if err != nil {
		return FramesResult{}, types.NewError(types.KindEncoding, "extract frames", err)
	}
	logf("saved %d frame(s) to %s", n, in.OutputDir)
	return FramesResult{OutputDir: in.OutputDir, FrameCount: n, UsedFallback: true}, nil
}
