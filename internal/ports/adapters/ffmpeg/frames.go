package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

const framePattern = "%04d.jpg"

// ExtractKeyframes writes one frame per detected scene change. The scene
// score ffmpeg assigns is normalized to [0, 1]; frames scoring above
// sceneThreshold are kept. Returns the number of frames written.
func (a *Adapter) ExtractKeyframes(ctx context.Context, inPath, outDir string, sceneThreshold float64, maxFrames int) (int, error) {
	filter := fmt.Sprintf("select='gt(scene,%s)'",
		strconv.FormatFloat(sceneThreshold, 'f', -1, 64))
	return a.extractFrames(ctx, inPath, outDir, filter, maxFrames)
}

// ExtractEveryNth writes every Nth frame; fallback for videos where scene
// detection finds nothing (static shots, slides).
func (a *Adapter) ExtractEveryNth(ctx context.Context, inPath, outDir string, everyNth, maxFrames int) (int, error) {
	if everyNth < 1 {
		everyNth = 1
	}
	filter := fmt.Sprintf(`select='not(mod(n\,%d))'`, everyNth)
	return a.extractFrames(ctx, inPath, outDir, filter, maxFrames)
}

func (a *Adapter) extractFrames(ctx context.Context, inPath, outDir, filter string, maxFrames int) (int, error) {
	args := []string{
		"-y",
		"-i", inPath,
		"-vf", filter,
		"-vsync", "vfr",
	}
	if maxFrames > 0 {
		args = append(args, "-frames:v", strconv.Itoa(maxFrames))
	}
	args = append(args, filepath.Join(outDir, framePattern))
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffmpeg extract frames: %w\n%s", err, string(b))
	}
	return countFrames(outDir)
}

func countFrames(outDir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(outDir, "[0-9][0-9][0-9][0-9].jpg"))
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}
