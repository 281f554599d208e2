package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mviana/autoedit/internal/domain/intervals"
	"github.com/mviana/autoedit/internal/types"
)

type SilenceInput struct {
	InputPath  string
	OutputPath string
	// TempDir hosts the per-invocation workspace; empty means os.TempDir().
	TempDir string

	SilenceThresholdDB float64
	MinSilenceLenMS    int64
	PaddingMS          int64
	Encode             types.EncodeSettings

	Logf Logf
}

type SilenceResult struct {
	OutputPath  string
	Kept        []types.Interval
	SourceLenMS int64
}

// RemoveSilence runs the silence-removal pipeline: decode audio, detect
// silence, derive keep intervals, cut the source at their boundaries and
// concatenate the cuts into one contiguous output. The temp workspace is
// removed on every exit path; cancellation is honored at stage boundaries
// only, since the underlying codec calls are not interruptible mid-run.
func (u Usecase) RemoveSilence(ctx context.Context, in SilenceInput) (SilenceResult, error) {
	logf := orNoop(in.Logf)

	logf("opening source: %s", in.InputPath)
	info, err := u.d.Media.Probe(ctx, in.InputPath)
	if err != nil {
		return SilenceResult{}, types.NewError(types.KindSourceOpen, "open source", err)
	}
	logf("source: fps=%.3f size=%dx%d duration=%.2fs", info.FPS, info.Width, info.Height, info.DurationSec)
	if !info.HasAudio {
		return SilenceResult{}, types.Errorf(types.KindMediaDecode, "extract audio", "no audio track in %s", in.InputPath)
	}

	enc := in.Encode
	if enc.FPS == 0 {
		enc.FPS = info.FPS
	}

	tempDir := in.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	// One uuid-suffixed workspace per invocation keeps concurrent runs from
	// ever sharing temp files.
	workDir := filepath.Join(tempDir, "autoedit-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return SilenceResult{}, types.NewError(types.KindEncoding, "prepare workspace", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logf("warning: could not remove temp workspace %s: %v", workDir, err)
		}
	}()

	logf("extracting audio track")
	wav := filepath.Join(workDir, "audio.wav")
	if err := u.d.Media.ExtractAudioPCM(ctx, in.InputPath, wav); err != nil {
		return SilenceResult{}, types.NewError(types.KindMediaDecode, "extract audio", err)
	}
	if err := ctx.Err(); err != nil {
		return SilenceResult{}, err
	}

	lengthMS := info.AudioLenMS()
	logf("detecting silence (threshold %gdB, min %dms)", in.SilenceThresholdDB, in.MinSilenceLenMS)
	silences, err := u.d.Silence.DetectSilence(ctx, wav, in.MinSilenceLenMS, in.SilenceThresholdDB, lengthMS)
	if err != nil {
		return SilenceResult{}, types.NewError(types.KindSilenceDetection, "detect silence", err)
	}
	logf("detected %d silence interval(s)", len(silences))

	keep := intervals.Keep(silences, in.PaddingMS, lengthMS)
	if len(keep) == 0 {
		return SilenceResult{}, types.Errorf(types.KindEmptyResult, "transform intervals",
			"entire input classified as silence; nothing to keep")
	}
	for _, k := range keep {
		logf("keeping cut: start=%.2fs end=%.2fs duration=%.2fs", k.StartSec(), k.EndSec(), float64(k.LenMS())/1000.0)
	}
	if err := ctx.Err(); err != nil {
		return SilenceResult{}, err
	}

	logf("cutting %d segment(s)", len(keep))
	segments := make([]string, 0, len(keep))
	for i, k := range keep {
		seg := filepath.Join(workDir, fmt.Sprintf("seg-%03d.mp4", i+1))
		if err := u.d.Media.CutSegment(ctx, in.InputPath, k.StartSec(), k.EndSec(), seg, enc); err != nil {
			return SilenceResult{}, types.NewError(types.KindEncoding, "cut segments", err)
		}
		segments = append(segments, seg)
	}
	if err := ctx.Err(); err != nil {
		return SilenceResult{}, err
	}

	logf("concatenating into %s", in.OutputPath)
	listPath := filepath.Join(workDir, "concat.txt")
	if err := u.d.Media.Concat(ctx, segments, in.OutputPath, listPath); err != nil {
		return SilenceResult{}, types.NewError(types.KindEncoding, "write output", err)
	}

	logf("edited duration: %.2fs of %.2fs kept", float64(intervals.TotalLenMS(keep))/1000.0, info.DurationSec)
	return SilenceResult{
		OutputPath:  in.OutputPath,
		Kept:        keep,
		SourceLenMS: lengthMS,
	}, nil
}
