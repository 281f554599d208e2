// Package config holds the tool defaults and the optional TOML settings
// file that overrides them. Flag values override both; precedence is
// resolved by the CLI layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is probed when no settings path is given.
const DefaultFile = "autoedit.toml"

type Settings struct {
	Video         VideoSettings         `toml:"video"`
	Frames        FrameSettings         `toml:"frames"`
	Upscale       UpscaleSettings       `toml:"upscale"`
	Transcription TranscriptionSettings `toml:"transcription"`
	Tools         ToolSettings          `toml:"tools"`
}

// VideoSettings drive the silence-removal pipeline.
type VideoSettings struct {
	SilenceThresholdDB float64 `toml:"silence_threshold_db"`
	MinSilenceLenMS    int64   `toml:"min_silence_len_ms"`
	PaddingMS          int64   `toml:"padding_ms"`
	VideoCodec         string  `toml:"video_codec"`
	AudioCodec         string  `toml:"audio_codec"`
	Preset             string  `toml:"preset"`
	Threads            int     `toml:"threads"`
}

type FrameSettings struct {
	SceneThreshold float64 `toml:"scene_threshold"`
	MaxFrames      int     `toml:"max_frames"`
	EveryNth       int     `toml:"every_nth"`
}

type UpscaleSettings struct {
	Model    string `toml:"model"`
	ModelDir string `toml:"model_dir"`
	Scale    int    `toml:"scale"`
}

type TranscriptionSettings struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
	Threads  int    `toml:"threads"`
}

// ToolSettings locate the external binaries; empty means $PATH lookup.
type ToolSettings struct {
	FFmpeg     string `toml:"ffmpeg"`
	FFprobe    string `toml:"ffprobe"`
	WhisperBin string `toml:"whisper_bin"`
	Realesrgan string `toml:"realesrgan"`
}

func Default() Settings {
	return Settings{
		Video: VideoSettings{
			SilenceThresholdDB: -53,
			MinSilenceLenMS:    4000,
			PaddingMS:          -1200,
			VideoCodec:         "libx264",
			AudioCodec:         "aac",
			Preset:             "ultrafast",
			Threads:            12,
		},
		Frames: FrameSettings{
			SceneThreshold: 0.3,
			MaxFrames:      100,
			EveryNth:       180,
		},
		Upscale: UpscaleSettings{
			Model: "realesrgan-x4plus",
			Scale: 4,
		},
		Transcription: TranscriptionSettings{
			Model:    ".cache/models/ggml-base.bin",
			Language: "pt",
			Threads:  12,
		},
		Tools: ToolSettings{
			WhisperBin: ".cache/bin/whisper.cpp",
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path probes DefaultFile and silently falls back to pure defaults when it
// does not exist; an explicit path must exist.
func Load(path string) (Settings, error) {
	s := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects values no operation could run with.
func (s Settings) Validate() error {
	if s.Video.MinSilenceLenMS <= 0 {
		return fmt.Errorf("min silence length must be > 0, got %d", s.Video.MinSilenceLenMS)
	}
	if s.Video.VideoCodec == "" || s.Video.AudioCodec == "" {
		return errors.New("video and audio codecs must be set")
	}
	if s.Frames.SceneThreshold < 0 || s.Frames.SceneThreshold > 1 {
		return fmt.Errorf("scene threshold must be in [0, 1], got %g", s.Frames.SceneThreshold)
	}
	if s.Upscale.Scale <= 0 {
		return fmt.Errorf("upscale factor must be > 0, got %d", s.Upscale.Scale)
	}
	return nil
}
