package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // ~0dB
		{0.5, -8, -4},    // ~-6dB
		{0.25, -14, -10}, // ~-12dB
		{0.0, -200, -90},
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New(0.8)
	if m.Volume() != 0.8 {
		t.Errorf("volume = %f, want 0.8", m.Volume())
	}
	if m.IsInitialized() {
		t.Error("new manager should not be initialized")
	}
	if m.IsPlaying() {
		t.Error("new manager should not be playing")
	}

	if got := New(3).Volume(); got != 1 {
		t.Errorf("volume = %f, want 1 (clamped)", got)
	}
}

func TestSetVolume(t *testing.T) {
	m := New(1)

	m.SetVolume(0.5)
	if m.Volume() != 0.5 {
		t.Errorf("volume = %f, want 0.5", m.Volume())
	}
	m.SetVolume(-1.0)
	if m.Volume() != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", m.Volume())
	}
}

func TestPlayLoopRequiresInit(t *testing.T) {
	m := New(1)
	if err := m.PlayLoop(nil, "gulls.wav"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayLoop before Init = %v, want ErrNotInitialized", err)
	}
}

func TestSetPausedWithoutTrack(t *testing.T) {
	m := New(1)
	m.SetPaused(true)
	m.SetPaused(false)
	if m.IsPlaying() {
		t.Error("no track loaded, IsPlaying should be false")
	}
}

func TestLoopStreamerRewinds(t *testing.T) {
	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	done := false
	buf.Append(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if done {
			return 0, false
		}
		done = true
		n := min(3, len(samples))
		for i := 0; i < n; i++ {
			v := float64(i+1) / 4
			samples[i] = [2]float64{v, -v}
		}
		return n, true
	}))
	if buf.Len() != 3 {
		t.Fatalf("buffer holds %d samples, want 3", buf.Len())
	}

	src := buf.Streamer(0, buf.Len())
	loop := &loopStreamer{source: src, resampled: src}

	out := make([][2]float64, 10)
	n, ok := loop.Stream(out)
	if n != len(out) || !ok {
		t.Fatalf("Stream() = %d, %v; want %d, true", n, ok, len(out))
	}
	for i := 3; i < len(out); i++ {
		if math.Abs(out[i][0]-out[i%3][0]) > 1e-9 {
			t.Errorf("sample %d = %v, want repeat of sample %d = %v", i, out[i], i%3, out[i%3])
		}
	}
}

func TestLoopStreamerEmptySource(t *testing.T) {
	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	src := beep.NewBuffer(format).Streamer(0, 0)
	loop := &loopStreamer{source: src, resampled: src}

	n, ok := loop.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("Stream() on empty source = %d, %v; want 0, false", n, ok)
	}
}
