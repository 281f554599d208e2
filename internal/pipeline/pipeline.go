// Package pipeline wires the adapters into the usecases and owns the
// per-operation configuration surface, including derived output names.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mviana/autoedit/internal/fileutil"
	"github.com/mviana/autoedit/internal/ports"
	"github.com/mviana/autoedit/internal/ports/adapters/ffmpeg"
	"github.com/mviana/autoedit/internal/ports/adapters/realesrgan"
	"github.com/mviana/autoedit/internal/ports/adapters/whispercpp"
	"github.com/mviana/autoedit/internal/types"
	"github.com/mviana/autoedit/internal/usecase"
)

// Tools locate the external binaries; empty fields fall back to $PATH.
type Tools struct {
	FFmpeg     string
	FFprobe    string
	WhisperBin string
	Realesrgan string
}

// SilenceConfig drives the silence-removal pipeline.
type SilenceConfig struct {
	Input  string
	Output string // empty derives the Auto Edit name next to the input

	SilenceThresholdDB float64
	MinSilenceLenMS    int64
	PaddingMS          int64

	VideoCodec string
	AudioCodec string
	Preset     string
	Threads    int

	TempDir string
	Tools   Tools
	Logf    usecase.Logf
}

func (c SilenceConfig) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.MinSilenceLenMS <= 0 {
		return fmt.Errorf("min silence length must be > 0")
	}
	if c.VideoCodec == "" || c.AudioCodec == "" {
		return errors.New("video and audio codecs are required")
	}
	return nil
}

// RunSilence validates the config, wires the ffmpeg adapter and executes
// the silence-removal usecase.
func RunSilence(ctx context.Context, cfg SilenceConfig) (usecase.SilenceResult, error) {
	if err := cfg.Validate(); err != nil {
		return usecase.SilenceResult{}, fmt.Errorf("config: %w", err)
	}

	out := cfg.Output
	if out == "" {
		out = autoEditOutputPath(cfg.Input, cfg.SilenceThresholdDB, cfg.MinSilenceLenMS, cfg.PaddingMS)
	}

	v := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	uc := usecase.New(usecase.Deps{Media: v, Silence: v})

	return uc.RemoveSilence(ctx, usecase.SilenceInput{
		InputPath:          cfg.Input,
		OutputPath:         out,
		TempDir:            cfg.TempDir,
		SilenceThresholdDB: cfg.SilenceThresholdDB,
		MinSilenceLenMS:    cfg.MinSilenceLenMS,
		PaddingMS:          cfg.PaddingMS,
		Encode: types.EncodeSettings{
			VideoCodec: cfg.VideoCodec,
			AudioCodec: cfg.AudioCodec,
			Preset:     cfg.Preset,
			Threads:    cfg.Threads,
		},
		Logf: cfg.Logf,
	})
}

// FramesConfig drives keyframe extraction.
type FramesConfig struct {
	Input     string
	OutputDir string // empty derives "keyframes" next to the input

	SceneThreshold float64
	MaxFrames      int
	EveryNth       int

	Tools Tools
	Logf  usecase.Logf
}

func (c FramesConfig) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.SceneThreshold < 0 || c.SceneThreshold > 1 {
		return fmt.Errorf("scene threshold must be in [0, 1]")
	}
	return nil
}

func RunFrames(ctx context.Context, cfg FramesConfig) (usecase.FramesResult, error) {
	if err := cfg.Validate(); err != nil {
		return usecase.FramesResult{}, fmt.Errorf("config: %w", err)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(cfg.Input), "keyframes")
	}

	v := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	uc := usecase.New(usecase.Deps{Media: v, Frames: v})

	return uc.ExtractFrames(ctx, usecase.FramesInput{
		InputPath:      cfg.Input,
		OutputDir:      outDir,
		SceneThreshold: cfg.SceneThreshold,
		MaxFrames:      cfg.MaxFrames,
		EveryNth:       cfg.EveryNth,
		Logf:           cfg.Logf,
	})
}

// TranscribeConfig drives speech-to-text.
type TranscribeConfig struct {
	Input     string
	OutputTxt string // empty derives "<name> - Transcript.txt" next to the input
	WriteSRT  bool

	Model    string
	Language string
	Threads  int

	TempDir string
	Tools   Tools
	Logf    usecase.Logf
}

func (c TranscribeConfig) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.Model == "" {
		return errors.New("speech model path is required")
	}
	if !fileutil.IsSupported(c.Input, fileutil.KindVideo) && !fileutil.IsSupported(c.Input, fileutil.KindAudio) {
		return fmt.Errorf("unsupported input type: %s", filepath.Ext(c.Input))
	}
	return nil
}

func RunTranscribe(ctx context.Context, cfg TranscribeConfig) (usecase.TranscribeResult, error) {
	if err := cfg.Validate(); err != nil {
		return usecase.TranscribeResult{}, fmt.Errorf("config: %w", err)
	}

	txt := cfg.OutputTxt
	if txt == "" {
		txt = fileutil.OutputPath(cfg.Input, " - Transcript", ".txt")
	}
	srt := ""
	if cfg.WriteSRT {
		srt = fileutil.OutputPath(txt, "", ".srt")
	}

	v := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	asr := whispercpp.New(cfg.Tools.WhisperBin, cfg.Model)
	uc := usecase.New(usecase.Deps{Media: v, Speech: asr})

	return uc.Transcribe(ctx, usecase.TranscribeInput{
		InputPath: cfg.Input,
		OutputTxt: txt,
		OutputSRT: srt,
		TempDir:   cfg.TempDir,
		Opts: types.TranscribeOptions{
			Language: cfg.Language,
			Threads:  cfg.Threads,
		},
		Logf: cfg.Logf,
	})
}

// UpscaleConfig drives image super-resolution for a file or a directory.
type UpscaleConfig struct {
	Input  string
	Output string // file mode: output image; dir mode: output directory

	Scale    int
	Model    string
	ModelDir string

	Tools Tools
	Logf  usecase.Logf
}

func (c UpscaleConfig) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.Scale <= 0 {
		return errors.New("scale must be > 0")
	}
	return nil
}

// UpscaleResult reports what was written in either mode.
type UpscaleResult struct {
	Output string
	Count  int
}

func RunUpscale(ctx context.Context, cfg UpscaleConfig) (UpscaleResult, error) {
	if err := cfg.Validate(); err != nil {
		return UpscaleResult{}, fmt.Errorf("config: %w", err)
	}

	up := realesrgan.New(cfg.Tools.Realesrgan, cfg.ModelDir, cfg.Model)
	uc := usecase.New(usecase.Deps{Upscaler: up})

	st, err := os.Stat(cfg.Input)
	if err != nil {
		return UpscaleResult{}, fmt.Errorf("stat input: %w", err)
	}
	if st.IsDir() {
		outDir := cfg.Output
		if outDir == "" {
			outDir = filepath.Join(cfg.Input, "upscale_output")
		}
		n, err := uc.UpscaleDirectory(ctx, cfg.Input, outDir, cfg.Scale, cfg.Logf)
		if err != nil {
			return UpscaleResult{}, err
		}
		return UpscaleResult{Output: outDir, Count: n}, nil
	}

	if !fileutil.IsSupported(cfg.Input, fileutil.KindImage) {
		return UpscaleResult{}, fmt.Errorf("config: unsupported image type: %s", filepath.Ext(cfg.Input))
	}
	out := cfg.Output
	if out == "" {
		out = fileutil.OutputPath(cfg.Input, "_upscaled", "")
	}
	written, err := uc.UpscaleImage(ctx, usecase.UpscaleInput{
		InputPath:  cfg.Input,
		OutputPath: out,
		Scale:      cfg.Scale,
		Logf:       cfg.Logf,
	})
	if err != nil {
		return UpscaleResult{}, err
	}
	return UpscaleResult{Output: written, Count: 1}, nil
}

// adapter conformance
var (
	_ ports.MediaTool       = (*ffmpeg.Adapter)(nil)
	_ ports.SilenceDetector = (*ffmpeg.Adapter)(nil)
	_ ports.FrameGrabber    = (*ffmpeg.Adapter)(nil)
	_ ports.Transcriber     = (*whispercpp.Adapter)(nil)
	_ ports.Upscaler        = (*realesrgan.Adapter)(nil)
)
