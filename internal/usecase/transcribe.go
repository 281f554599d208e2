package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mviana/autoedit/internal/domain/subtitles"
	"github.com/mviana/autoedit/internal/types"
)

type TranscribeInput struct {
	// InputPath may be a video or a plain audio file.
	InputPath  string
	OutputTxt  string
	OutputSRT  string // empty disables SRT output
	TempDir    string
	Opts       types.TranscribeOptions

	Logf Logf
}

type TranscribeResult struct {
	TextPath   string
	SRTPath    string
	Transcript types.Transcript
}

// Transcribe decodes the input's audio to PCM, runs the speech model and
// writes the transcript as plain text plus an optional SRT file.
func (u Usecase) Transcribe(ctx context.Context, in TranscribeInput) (TranscribeResult, error) {
	logf := orNoop(in.Logf)

	if _, err := os.Stat(in.InputPath); err != nil {
		return TranscribeResult{}, types.NewError(types.KindSourceOpen, "open source", err)
	}

	tempDir := in.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	workDir := filepath.Join(tempDir, "autoedit-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return TranscribeResult{}, types.NewError(types.KindEncoding, "prepare workspace", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logf("warning: could not remove temp workspace %s: %v", workDir, err)
		}
	}()

	logf("extracting audio track")
	wav := filepath.Join(workDir, "audio.wav")
	if err := u.d.Media.ExtractAudioPCM(ctx, in.InputPath, wav); err != nil {
		return TranscribeResult{}, types.NewError(types.KindMediaDecode, "extract audio", err)
	}
	if err := ctx.Err(); err != nil {
		return TranscribeResult{}, err
	}

	logf("transcribing (language %s, %d threads)", in.Opts.Language, in.Opts.Threads)
	tr, err := u.d.Speech.Transcribe(ctx, wav, workDir, in.Opts)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("transcribe: %w", err)
	}
	logf("transcript: %d segment(s)", len(tr.Segments))

	if err := os.WriteFile(in.OutputTxt, []byte(subtitles.PlainText(tr)+"\n"), 0o644); err != nil {
		return TranscribeResult{}, types.NewError(types.KindEncoding, "write transcript", err)
	}
	res := TranscribeResult{TextPath: in.OutputTxt, Transcript: tr}

	if in.OutputSRT != "" {
		if err := os.WriteFile(in.OutputSRT, []byte(subtitles.RenderSRT(tr)), 0o644); err != nil {
			return TranscribeResult{}, types.NewError(types.KindEncoding, "write subtitles", err)
		}
		res.SRTPath = in.OutputSRT
	}
	return res, nil
}
