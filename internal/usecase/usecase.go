// Package usecase orchestrates the four media operations over the ports.
// Each operation runs as one synchronous unit of work: stages execute in
// order, every failure is terminal, and acquired resources are released on
// every exit path before the error reaches the caller.
package usecase

import (
	"github.com/mviana/autoedit/internal/ports"
)

type Deps struct {
	Media    ports.MediaTool
	Silence  ports.SilenceDetector
	Frames   ports.FrameGrabber
	Speech   ports.Transcriber
	Upscaler ports.Upscaler
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

// Logf is the progress/log sink plumbed through every operation input.
type Logf func(format string, args ...any)

func orNoop(logf Logf) Logf {
	if logf == nil {
		return func(string, ...any) {}
	}
	return logf
}
