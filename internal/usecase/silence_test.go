package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mviana/autoedit/internal/types"
)

func TestRemoveSilence_EndToEnd(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip()}
	det := &fakeDetector{silences: []types.Interval{{StartMS: 3000, EndMS: 5000}}}
	uc := New(Deps{Media: media, Silence: det})

	out := filepath.Join(tmp, "out.mp4")
	res, err := uc.RemoveSilence(context.Background(), SilenceInput{
		InputPath:          filepath.Join(tmp, "in.mp4"),
		OutputPath:         out,
		TempDir:            tmp,
		SilenceThresholdDB: -53,
		MinSilenceLenMS:    1000,
		PaddingMS:          0,
		Encode:             types.EncodeSettings{VideoCodec: "libx264", AudioCodec: "aac"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.OutputPath != out {
		t.Fatalf("output path = %q, want %q", res.OutputPath, out)
	}
	wantKept := []types.Interval{{StartMS: 0, EndMS: 3000}, {StartMS: 5000, EndMS: 10000}}
	if len(res.Kept) != 2 || res.Kept[0] != wantKept[0] || res.Kept[1] != wantKept[1] {
		t.Fatalf("kept = %v, want %v", res.Kept, wantKept)
	}

	wantCuts := [][2]float64{{0, 3}, {5, 10}}
	if len(media.cuts) != 2 || media.cuts[0] != wantCuts[0] || media.cuts[1] != wantCuts[1] {
		t.Fatalf("cuts = %v, want %v", media.cuts, wantCuts)
	}
	if len(media.concatSegs) != 2 {
		t.Fatalf("expected 2 concatenated segments, got %d", len(media.concatSegs))
	}
	// segment order must follow the source timeline
	if media.concatSegs[0] != media.cutOuts[0] || media.concatSegs[1] != media.cutOuts[1] {
		t.Fatalf("concat order %v does not match cut order %v", media.concatSegs, media.cutOuts)
	}
	if det.gotMinLen != 1000 || det.gotThreshold != -53 || det.gotTotalMS != 10000 {
		t.Fatalf("detector got min=%d thr=%g total=%d", det.gotMinLen, det.gotThreshold, det.gotTotalMS)
	}

	assertWorkspaceRemoved(t, tmp, out)
}

func TestRemoveSilence_NoSilenceKeepsWholeClip(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip()}
	uc := New(Deps{Media: media, Silence: &fakeDetector{}})

	res, err := uc.RemoveSilence(context.Background(), baseInput(tmp))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Kept) != 1 || res.Kept[0] != (types.Interval{StartMS: 0, EndMS: 10000}) {
		t.Fatalf("kept = %v, want whole clip", res.Kept)
	}
	if len(media.cuts) != 1 || media.cuts[0] != [2]float64{0, 10} {
		t.Fatalf("cuts = %v, want one whole-clip cut", media.cuts)
	}
}

func TestRemoveSilence_AllSilenceIsEmptyResult(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip()}
	det := &fakeDetector{silences: []types.Interval{{StartMS: 0, EndMS: 10000}}}
	uc := New(Deps{Media: media, Silence: det})

	in := baseInput(tmp)
	in.PaddingMS = 0 // padding must not shrink the full-length silence
	_, err := uc.RemoveSilence(context.Background(), in)
	if types.KindOf(err) != types.KindEmptyResult {
		t.Fatalf("kind = %v, want empty result (err=%v)", types.KindOf(err), err)
	}
	if len(media.cuts) != 0 {
		t.Fatalf("expected no cut attempts, got %v", media.cuts)
	}
	assertWorkspaceRemoved(t, tmp)
}

func TestRemoveSilence_NoAudioTrack(t *testing.T) {
	t.Parallel()

	info := tenSecondClip()
	info.HasAudio = false
	uc := New(Deps{Media: &fakeMedia{info: info}, Silence: &fakeDetector{}})

	_, err := uc.RemoveSilence(context.Background(), baseInput(t.TempDir()))
	if types.KindOf(err) != types.KindMediaDecode {
		t.Fatalf("kind = %v, want media decode (err=%v)", types.KindOf(err), err)
	}
}

func TestRemoveSilence_ProbeFailure(t *testing.T) {
	t.Parallel()

	uc := New(Deps{
		Media:   &fakeMedia{probeErr: errors.New("no such file")},
		Silence: &fakeDetector{},
	})
	_, err := uc.RemoveSilence(context.Background(), baseInput(t.TempDir()))
	if types.KindOf(err) != types.KindSourceOpen {
		t.Fatalf("kind = %v, want source open (err=%v)", types.KindOf(err), err)
	}
}

func TestRemoveSilence_DetectorFailureCleansUp(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	uc := New(Deps{
		Media:   &fakeMedia{info: tenSecondClip()},
		Silence: &fakeDetector{err: errors.New("corrupt pcm")},
	})
	_, err := uc.RemoveSilence(context.Background(), baseInput(tmp))
	if types.KindOf(err) != types.KindSilenceDetection {
		t.Fatalf("kind = %v, want silence detection (err=%v)", types.KindOf(err), err)
	}
	assertWorkspaceRemoved(t, tmp)
}

func TestRemoveSilence_ConcatFailureCleansUp(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip(), concatErr: errors.New("disk full")}
	det := &fakeDetector{silences: []types.Interval{{StartMS: 3000, EndMS: 5000}}}
	uc := New(Deps{Media: media, Silence: det})

	_, err := uc.RemoveSilence(context.Background(), baseInput(tmp))
	if types.KindOf(err) != types.KindEncoding {
		t.Fatalf("kind = %v, want encoding (err=%v)", types.KindOf(err), err)
	}
	assertWorkspaceRemoved(t, tmp)
}

func TestRemoveSilence_SourceFPSUsedWhenUnset(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip()}
	uc := New(Deps{Media: media, Silence: &fakeDetector{}})

	if _, err := uc.RemoveSilence(context.Background(), baseInput(tmp)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(media.cutEncodes) != 1 || media.cutEncodes[0].FPS != 30 {
		t.Fatalf("expected source fps 30 passed to encoder, got %+v", media.cutEncodes)
	}
}

func TestRemoveSilence_CanceledContextStopsBetweenStages(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	media := &fakeMedia{info: tenSecondClip()}
	uc := New(Deps{Media: media, Silence: &fakeDetector{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.RemoveSilence(ctx, baseInput(tmp))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(media.cuts) != 0 {
		t.Fatalf("expected no cuts after cancellation, got %v", media.cuts)
	}
	assertWorkspaceRemoved(t, tmp)
}

func baseInput(tmp string) SilenceInput {
	return SilenceInput{
		InputPath:          filepath.Join(tmp, "in.mp4"),
		OutputPath:         filepath.Join(tmp, "out.mp4"),
		TempDir:            tmp,
		SilenceThresholdDB: -53,
		MinSilenceLenMS:    4000,
		PaddingMS:          -1200,
		Encode:             types.EncodeSettings{VideoCodec: "libx264", AudioCodec: "aac"},
	}
}

func tenSecondClip() types.MediaInfo {
	return types.MediaInfo{
		DurationSec: 10,
		FPS:         30,
		Width:       1920,
		Height:      1080,
		HasAudio:    true,
	}
}

// assertWorkspaceRemoved checks that no autoedit temp workspace survived the
// invocation. keep lists paths that are allowed to remain in dir.
func assertWorkspaceRemoved(t *testing.T, dir string, keep ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	allowed := make(map[string]bool, len(keep))
	for _, k := range keep {
		allowed[filepath.Base(k)] = true
	}
	for _, e := range entries {
		if !allowed[e.Name()] {
			t.Fatalf("leftover temp entry: %s", e.Name())
		}
	}
}
