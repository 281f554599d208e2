package ports

import (
	"context"

	"github.com/mviana/autoedit/internal/types"
)

// MediaTool opens, decodes, cuts and rewrites video containers.
type MediaTool interface {
	Probe(ctx context.Context, inPath string) (types.MediaInfo, error)
	ExtractAudioPCM(ctx context.Context, inPath, outWav string) error
	CutSegment(ctx context.Context, inPath string, startSec, endSec float64, outPath string, enc types.EncodeSettings) error
	Concat(ctx context.Context, segmentPaths []string, outPath, listPath string) error
}

// SilenceDetector scans decoded PCM audio for below-threshold ranges.
type SilenceDetector interface {
	DetectSilence(ctx context.Context, wavPath string, minSilenceLenMS int64, thresholdDB float64, totalLenMS int64) ([]types.Interval, error)
}

// FrameGrabber extracts still frames from a video.
type FrameGrabber interface {
	ExtractKeyframes(ctx context.Context, inPath, outDir string, sceneThreshold float64, maxFrames int) (int, error)
	ExtractEveryNth(ctx context.Context, inPath, outDir string, everyNth, maxFrames int) (int, error)
}

// Transcriber converts decoded PCM audio into a timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath, workDir string, opts types.TranscribeOptions) (types.Transcript, error)
}

// Upscaler raises the resolution of a single image.
type Upscaler interface {
	Upscale(ctx context.Context, inPath, outPath string, scale int) error
}
