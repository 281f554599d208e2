package ffmpeg

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/mviana/autoedit/internal/types"
)

var (
	reSilenceStart = regexp.MustCompile(`silence_start:\s*(-?\d+(?:\.\d+)?)`)
	reSilenceEnd   = regexp.MustCompile(`silence_end:\s*(-?\d+(?:\.\d+)?)`)
)

// DetectSilence runs the silencedetect filter over decoded PCM audio and
// returns ascending, non-overlapping silence intervals in milliseconds.
// totalLenMS closes a silence that is still open when the stream ends.
func (a *Adapter) DetectSilence(ctx context.Context, wavPath string, minSilenceLenMS int64, thresholdDB float64, totalLenMS int64) ([]types.Interval, error) {
	filter := fmt.Sprintf("silencedetect=noise=%sdB:d=%s",
		strconv.FormatFloat(thresholdDB, 'f', -1, 64),
		strconv.FormatFloat(float64(minSilenceLenMS)/1000.0, 'f', -1, 64),
	)
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-hide_banner",
		"-i", wavPath,
		"-af", filter,
		"-f", "null", "-",
	)
	// silencedetect reports on stderr; CombinedOutput captures it.
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg silencedetect: %w\n%s", err, string(b))
	}
	return parseSilences(string(b), totalLenMS), nil
}

// parseSilences pairs silence_start/silence_end log lines into intervals.
// A start without a matching end means the audio was silent through EOF.
func parseSilences(output string, totalLenMS int64) []types.Interval {
	starts := reSilenceStart.FindAllStringSubmatch(output, -1)
	ends := reSilenceEnd.FindAllStringSubmatch(output, -1)

	var out []types.Interval
	for i, s := range starts {
		startMS := secToMS(s[1])
		if startMS < 0 {
			startMS = 0
		}
		endMS := totalLenMS
		if i < len(ends) {
			endMS = secToMS(ends[i][1])
		}
		if endMS > totalLenMS {
			endMS = totalLenMS
		}
		if endMS <= startMS {
			continue
		}
		out = append(out, types.Interval{StartMS: startMS, EndMS: endMS})
	}
	return out
}

func secToMS(s string) int64 {
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(sec * 1000.0))
}
