package types

// Interval is a half-open time range [StartMS, EndMS) in milliseconds.
type Interval struct {
	StartMS int64
	EndMS   int64
}

// LenMS returns the interval length; zero or negative means degenerate.
func (iv Interval) LenMS() int64 { return iv.EndMS - iv.StartMS }

// StartSec and EndSec convert boundaries to seconds for media tools.
func (iv Interval) StartSec() float64 { return float64(iv.StartMS) / 1000.0 }
func (iv Interval) EndSec() float64   { return float64(iv.EndMS) / 1000.0 }

// MediaInfo describes a probed source container.
type MediaInfo struct {
	DurationSec float64
	FPS         float64
	Width       int
	Height      int
	HasAudio    bool
}

// AudioLenMS is the audio timeline length in whole milliseconds.
func (m MediaInfo) AudioLenMS() int64 {
	return int64(m.DurationSec * 1000.0)
}

// EncodeSettings are pass-through encoder parameters for written video.
type EncodeSettings struct {
	VideoCodec string
	AudioCodec string
	Preset     string
	Threads    int
	FPS        float64
}

type Transcript struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// TranscribeOptions select the speech model behavior.
type TranscribeOptions struct {
	Language string
	Threads  int
}
