package usecase

import (
	"context"

	"github.com/mviana/autoedit/internal/types"
)

type fakeMedia struct {
	info     types.MediaInfo
	probeErr error

	extractErr error
	extracted  []string

	cutErr     error
	cuts       [][2]float64
	cutOuts    []string
	cutEncodes []types.EncodeSettings

	concatErr  error
	concatSegs []string
	concatOut  string
}

func (f *fakeMedia) Probe(_ context.Context, _ string) (types.MediaInfo, error) {
	return f.info, f.probeErr
}

func (f *fakeMedia) ExtractAudioPCM(_ context.Context, _, outWav string) error {
	f.extracted = append(f.extracted, outWav)
	return f.extractErr
}

func (f *fakeMedia) CutSegment(_ context.Context, _ string, startSec, endSec float64, outPath string, enc types.EncodeSettings) error {
	if f.cutErr != nil {
		return f.cutErr
	}
	f.cuts = append(f.cuts, [2]float64{startSec, endSec})
	f.cutOuts = append(f.cutOuts, outPath)
	f.cutEncodes = append(f.cutEncodes, enc)
	return nil
}

func (f *fakeMedia) Concat(_ context.Context, segmentPaths []string, outPath, _ string) error {
	if f.concatErr != nil {
		return f.concatErr
	}
	f.concatSegs = append(f.concatSegs, segmentPaths...)
	f.concatOut = outPath
	return nil
}

type fakeDetector struct {
	silences []types.Interval
	err      error

	gotMinLen    int64
	gotThreshold float64
	gotTotalMS   int64
}

func (f *fakeDetector) DetectSilence(_ context.Context, _ string, minSilenceLenMS int64, thresholdDB float64, totalLenMS int64) ([]types.Interval, error) {
	f.gotMinLen = minSilenceLenMS
	f.gotThreshold = thresholdDB
	f.gotTotalMS = totalLenMS
	return f.silences, f.err
}

type fakeFrames struct {
	keyCount int
	keyErr   error
	nthCount int
	nthErr   error

	keyCalls int
	nthCalls int
	gotNth   int
}

func (f *fakeFrames) ExtractKeyframes(_ context.Context, _, _ string, _ float64, _ int) (int, error) {
	f.keyCalls++
	return f.keyCount, f.keyErr
}

func (f *fakeFrames) ExtractEveryNth(_ context.Context, _, _ string, everyNth, _ int) (int, error) {
	f.nthCalls++
	f.gotNth = everyNth
	return f.nthCount, f.nthErr
}

type fakeSpeech struct {
	tr  types.Transcript
	err error
}

func (f fakeSpeech) Transcribe(_ context.Context, _, _ string, _ types.TranscribeOptions) (types.Transcript, error) {
	return f.tr, f.err
}

type fakeUpscaler struct {
	err   error
	calls [][2]string
}

func (f *fakeUpscaler) Upscale(_ context.Context, inPath, outPath string, _ int) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, [2]string{inPath, outPath})
	return nil
}
