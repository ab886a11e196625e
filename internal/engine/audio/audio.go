// Package audio plays the looping ambient soundscape.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and a single looping ambient track.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	source beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
	path   string
	paused bool
	volLvl float64 // 0.0 to 1.0
}

// New creates a manager with the given volume (0.0 to 1.0).
func New(volume float64) *Manager {
	return &Manager{volLvl: clamp(volume, 0, 1)}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close stops playback and releases the track.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the ambient volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volLvl = clamp(vol, 0, 1)
	m.applyVolume()
}

// Volume returns the ambient volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volLvl
}

func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	m.volume.Silent = m.volLvl <= 0
	m.volume.Volume = volumeToDb(m.volLvl)
}

// volumeToDb maps a linear 0-1 volume onto the base-2 exponent used by
// effects.Volume, so 0.5 is one halving (-6 dB).
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PlayLoop decodes WAV data and loops it until Stop or Close. Any current
// track is replaced. The new track honours the current pause state.
func (m *Manager) PlayLoop(data []byte, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	m.stopInternal()

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	m.ctrl = &beep.Ctrl{
		Streamer: &loopStreamer{source: streamer, resampled: resampled},
		Paused:   m.paused,
	}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.applyVolume()

	m.source = streamer
	m.path = path

	speaker.Play(m.volume)
	return nil
}

// Stop ends playback of the current track.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.initialized {
		speaker.Clear()
	}
	if m.source != nil {
		m.source.Close()
		m.source = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.path = ""
}

// SetPaused pauses or resumes the track. The state is remembered for
// tracks started later.
func (m *Manager) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = paused
	if m.ctrl == nil {
		return
	}
	if m.initialized {
		speaker.Lock()
		m.ctrl.Paused = paused
		speaker.Unlock()
		return
	}
	m.ctrl.Paused = paused
}

// IsPlaying reports whether a track is loaded and not paused.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ctrl != nil && !m.paused
}

// Path returns the path of the loaded track.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// loopStreamer rewinds its source whenever it runs dry.
type loopStreamer struct {
	source    beep.StreamSeeker
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if l.source.Len() == 0 {
				return filled, filled > 0
			}
			if err := l.source.Seek(0); err != nil {
				return filled, false
			}
			continue
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
