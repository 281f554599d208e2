// Package ffmpeg drives the ffmpeg and ffprobe binaries for probing,
// audio extraction, segment cutting and concatenation.
package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mviana/autoedit/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

func (a *Adapter) Probe(ctx context.Context, inPath string) (types.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_streams",
		"-show_format",
		"-of", "json",
		inPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return types.MediaInfo{}, fmt.Errorf("ffprobe %s: %w\n%s", inPath, err, string(b))
	}

	var p probeOutput
	if err := json.Unmarshal(b, &p); err != nil {
		return types.MediaInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := types.MediaInfo{}
	if p.Format.Duration != "" {
		sec, err := strconv.ParseFloat(p.Format.Duration, 64)
		if err != nil {
			return types.MediaInfo{}, fmt.Errorf("parse duration %q: %w", p.Format.Duration, err)
		}
		info.DurationSec = sec
	}
	for _, s := range p.Streams {
		switch s.CodecType {
		case "video":
			if info.Width == 0 {
				info.Width = s.Width
				info.Height = s.Height
				info.FPS = fpsFromRational(s.RFrameRate)
			}
		case "audio":
			info.HasAudio = true
		}
	}
	if info.Width == 0 || info.DurationSec <= 0 {
		return types.MediaInfo{}, fmt.Errorf("no decodable video stream in %s", inPath)
	}
	return info, nil
}

// ExtractAudioPCM demuxes the audio track to 16-bit signed PCM, keeping the
// source sample rate and channel count.
func (a *Adapter) ExtractAudioPCM(ctx context.Context, inPath, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) CutSegment(ctx context.Context, inPath string, startSec, endSec float64, outPath string, enc types.EncodeSettings) error {
	args := []string{
		"-y",
		"-ss", fmtSeconds(startSec),
		"-to", fmtSeconds(endSec),
		"-i", inPath,
		"-c:v", enc.VideoCodec,
		"-c:a", enc.AudioCodec,
	}
	if enc.Preset != "" {
		args = append(args, "-preset", enc.Preset)
	}
	if enc.Threads > 0 {
		args = append(args, "-threads", strconv.Itoa(enc.Threads))
	}
	if enc.FPS > 0 {
		args = append(args, "-r", fmtSeconds(enc.FPS))
	}
	args = append(args, outPath)
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut segment [%s, %s): %w\n%s", fmtSeconds(startSec), fmtSeconds(endSec), err, string(b))
	}
	return nil
}

// Concat joins already-encoded segments end-to-end with the concat demuxer.
// Segments share codec parameters by construction, so streams are copied.
func (a *Adapter) Concat(ctx context.Context, segmentPaths []string, outPath, listPath string) error {
	var sb strings.Builder
	for _, p := range segmentPaths {
		fmt.Fprintf(&sb, "file '%s'\n", escapeConcatPath(p))
	}
	if err := os.WriteFile(listPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg concat %d segments: %w\n%s", len(segmentPaths), err, string(b))
	}
	return nil
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func fpsFromRational(r string) float64 {
	num, den, ok := strings.Cut(r, "/")
	if !ok {
		f, _ := strconv.ParseFloat(r, 64)
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}

// escapeConcatPath escapes single quotes for the concat demuxer list format.
func escapeConcatPath(p string) string {
	return strings.ReplaceAll(p, "'", `'\''`)
}
