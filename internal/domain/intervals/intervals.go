// Package intervals holds the pure interval algebra behind silence removal:
// padding, clamping, merging and inversion of detected silence ranges.
package intervals

import (
	"sort"

	"github.com/mviana/autoedit/internal/types"
)

// PadClamp applies the signed padding to each silence interval and clamps
// the result to [0, lengthMS]. Negative padding widens the kept margins by
// shrinking the silent window; a window that ends up empty or inverted after
// clamping is dropped rather than ever producing negative-duration output.
func PadClamp(silences []types.Interval, paddingMS, lengthMS int64) []types.Interval {
	out := make([]types.Interval, 0, len(silences))
	for _, iv := range silences {
		p := types.Interval{
			StartMS: iv.StartMS - paddingMS,
			EndMS:   iv.EndMS + paddingMS,
		}
		if p.StartMS < 0 {
			p.StartMS = 0
		}
		if p.EndMS > lengthMS {
			p.EndMS = lengthMS
		}
		if p.EndMS <= p.StartMS {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Merge sorts intervals by start and coalesces any that overlap or touch,
// taking min(start)/max(end) of each overlapping run. Inversion is only
// well defined over a sorted, non-overlapping list.
func Merge(ivs []types.Interval) []types.Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]types.Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMS < sorted[j].StartMS })

	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.StartMS <= last.EndMS {
			if iv.EndMS > last.EndMS {
				last.EndMS = iv.EndMS
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Invert walks a merged silence list and emits the gaps against
// [0, lengthMS): everything that is not silence is kept. Zero-length gaps
// (silence touching the start, back-to-back silences) produce nothing.
func Invert(merged []types.Interval, lengthMS int64) []types.Interval {
	var out []types.Interval
	var prevEnd int64
	for _, iv := range merged {
		if prevEnd < iv.StartMS {
			out = append(out, types.Interval{StartMS: prevEnd, EndMS: iv.StartMS})
		}
		if iv.EndMS > prevEnd {
			prevEnd = iv.EndMS
		}
	}
	if prevEnd < lengthMS {
		out = append(out, types.Interval{StartMS: prevEnd, EndMS: lengthMS})
	}
	return out
}

// Keep derives the kept ranges from raw detector output. No silence at all
// means the whole clip is kept; all silence yields an empty list, which the
// caller must treat as "nothing to keep" rather than writing an empty video.
func Keep(silences []types.Interval, paddingMS, lengthMS int64) []types.Interval {
	if lengthMS <= 0 {
		return nil
	}
	if len(silences) == 0 {
		return []types.Interval{{StartMS: 0, EndMS: lengthMS}}
	}
	padded := PadClamp(silences, paddingMS, lengthMS)
	return Invert(Merge(padded), lengthMS)
}

// TotalLenMS sums interval lengths; used for logging the edited duration.
func TotalLenMS(ivs []types.Interval) int64 {
	var total int64
	for _, iv := range ivs {
		total += iv.LenMS()
	}
	return total
}
