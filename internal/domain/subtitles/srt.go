// Package subtitles renders transcripts as SubRip (SRT) subtitle files.
package subtitles

import (
	"fmt"
	"strings"
	"time"

	"github.com/mviana/autoedit/internal/types"
)

// RenderSRT formats every non-empty transcript segment as an SRT cue,
// numbered from 1 in timeline order.
func RenderSRT(tr types.Transcript) string {
	var sb strings.Builder
	n := 0
	for _, s := range tr.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			n, srtTimestamp(dur(s.Start)), srtTimestamp(dur(s.End)), text)
	}
	return sb.String()
}

// PlainText joins segment texts with newlines for the .txt transcript.
func PlainText(tr types.Transcript) string {
	var lines []string
	for _, s := range tr.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// srtTimestamp formats a duration as HH:MM:SS,mmm.
func srtTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func dur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
