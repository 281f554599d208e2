package intervals

import (
	"reflect"
	"testing"

	"github.com/mviana/autoedit/internal/types"
)

func iv(start, end int64) types.Interval {
	return types.Interval{StartMS: start, EndMS: end}
}

func TestPadClamp(t *testing.T) {
	cases := []struct {
		name     string
		silences []types.Interval
		padding  int64
		length   int64
		want     []types.Interval
	}{
		{
			name:     "in range is a no-op with zero padding",
			silences: []types.Interval{iv(100, 200)},
			padding:  0,
			length:   1000,
			want:     []types.Interval{iv(100, 200)},
		},
		{
			name:     "positive padding widens the silent window",
			silences: []types.Interval{iv(300, 400)},
			padding:  50,
			length:   1000,
			want:     []types.Interval{iv(250, 450)},
		},
		{
			name:     "negative padding shrinks the silent window",
			silences: []types.Interval{iv(300, 900)},
			padding:  -100,
			length:   1000,
			want:     []types.Interval{iv(400, 800)},
		},
		{
			name:     "clamped to audio bounds",
			silences: []types.Interval{iv(0, 300), iv(800, 1000)},
			padding:  100,
			length:   1000,
			want:     []types.Interval{iv(0, 400), iv(700, 1000)},
		},
		{
			name:     "inverted after large negative padding is discarded",
			silences: []types.Interval{iv(500, 520)},
			padding:  -1200,
			length:   1000,
			want:     []types.Interval{},
		},
		{
			name:     "exactly emptied window is discarded",
			silences: []types.Interval{iv(400, 600)},
			padding:  -100,
			length:   1000,
			want:     []types.Interval{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PadClamp(tc.silences, tc.padding, tc.length)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PadClamp = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMerge_OverlapCoalesces(t *testing.T) {
	got := Merge([]types.Interval{iv(100, 200), iv(180, 300)})
	want := []types.Interval{iv(100, 300)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_SortsAndKeepsDisjoint(t *testing.T) {
	got := Merge([]types.Interval{iv(500, 600), iv(100, 200), iv(150, 250)})
	want := []types.Interval{iv(100, 250), iv(500, 600)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_ContainedInterval(t *testing.T) {
	got := Merge([]types.Interval{iv(100, 500), iv(200, 300)})
	want := []types.Interval{iv(100, 500)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge = %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	cases := []struct {
		name     string
		silences []types.Interval
		length   int64
		want     []types.Interval
	}{
		{
			name:     "single mid silence",
			silences: []types.Interval{iv(200, 400)},
			length:   1000,
			want:     []types.Interval{iv(0, 200), iv(400, 1000)},
		},
		{
			name:     "silence touching start yields no leading keep",
			silences: []types.Interval{iv(0, 300)},
			length:   1000,
			want:     []types.Interval{iv(300, 1000)},
		},
		{
			name:     "silence touching end yields no trailing keep",
			silences: []types.Interval{iv(700, 1000)},
			length:   1000,
			want:     []types.Interval{iv(0, 700)},
		},
		{
			name:     "all silence keeps nothing",
			silences: []types.Interval{iv(0, 1000)},
			length:   1000,
			want:     nil,
		},
		{
			name:     "no silence keeps everything",
			silences: nil,
			length:   1000,
			want:     []types.Interval{iv(0, 1000)},
		},
		{
			name:     "back to back silences produce no zero-length keep",
			silences: []types.Interval{iv(100, 300), iv(300, 500)},
			length:   1000,
			want:     []types.Interval{iv(0, 100), iv(500, 1000)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Invert(tc.silences, tc.length)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Invert = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeep_WholeClipWhenNoSilence(t *testing.T) {
	got := Keep(nil, -1200, 1000)
	want := []types.Interval{iv(0, 1000)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keep = %v, want %v", got, want)
	}
}

func TestKeep_AllSilenceKeepsNothing(t *testing.T) {
	if got := Keep([]types.Interval{iv(0, 1000)}, 0, 1000); len(got) != 0 {
		t.Fatalf("expected no keep intervals, got %v", got)
	}
}

func TestKeep_DefaultPaddingDiscardsShortSilence(t *testing.T) {
	// A 20ms silence padded by -1200 inverts before clamping and must be
	// discarded, leaving the whole clip kept.
	got := Keep([]types.Interval{iv(500, 520)}, -1200, 1000)
	want := []types.Interval{iv(0, 1000)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keep = %v, want %v", got, want)
	}
}

func TestKeep_SortedNonOverlapping(t *testing.T) {
	silences := []types.Interval{
		iv(4000, 9000), iv(1000, 2000), iv(1500, 2500), iv(9500, 9800),
	}
	got := Keep(silences, 100, 10000)
	if len(got) == 0 {
		t.Fatalf("expected keep intervals")
	}
	for i, k := range got {
		if k.LenMS() <= 0 {
			t.Fatalf("keep interval %d is degenerate: %v", i, k)
		}
		if i > 0 && got[i-1].EndMS > k.StartMS {
			t.Fatalf("keep intervals overlap or unsorted: %v then %v", got[i-1], k)
		}
	}
}

func TestTotalLenMS(t *testing.T) {
	got := TotalLenMS([]types.Interval{iv(0, 200), iv(400, 1000)})
	if got != 800 {
		t.Fatalf("TotalLenMS = %d, want 800", got)
	}
}
