// Package audio plays the game's sound effects through beep. Audio is
// optional: every operation is safe when the speaker could not be opened.
package audio

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-orbiter/pkg/config"
	"github.com/opd-ai/go-orbiter/pkg/event"
	"github.com/opd-ai/go-orbiter/pkg/logging"
)

const sampleRate = beep.SampleRate(44100)

// Hit sound shape
const (
	hitDuration  = 180 * time.Millisecond
	hitStartFreq = 440.0
	hitEndFreq   = 110.0
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      float64
	initialized bool
	requests    int
	logger      *logging.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig, logger *logging.Logger) *SoundManager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		logger:  logger,
	}
}

// Initialize opens the speaker. A disabled manager stays silent and returns
// nil.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return logging.WrapError(err, "failed to open speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayHit plays the sound of the player crashing
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requests++
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(newHitSound(sampleRate), sm.volume))
	speaker.Unlock()
}

// Requests returns how many sounds were asked for, played or not
func (sm *SoundManager) Requests() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.requests
}

// Subscribe plays the hit sound whenever a run is reset
func (sm *SoundManager) Subscribe(bus *event.Bus) *event.Subscription {
	return bus.Subscribe(event.RunReset, func(e event.Event) {
		if ev, ok := e.(*event.ResetEvent); ok {
			sm.logger.Debug(context.Background(), "Playing hit sound", "reason", ev.Reason)
		}
		sm.PlayHit()
	})
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// hitSound is a falling sine chirp with a linear fade out
type hitSound struct {
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
}

func newHitSound(rate beep.SampleRate) *hitSound {
	return &hitSound{rate: rate, length: rate.N(hitDuration)}
}

func (h *hitSound) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if h.position >= h.length {
			return i, i > 0
		}

		progress := float64(h.position) / float64(h.length)
		freq := hitStartFreq + (hitEndFreq-hitStartFreq)*progress
		val := math.Sin(2*math.Pi*h.phase) * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		h.phase += freq / float64(h.rate)
		h.phase -= math.Floor(h.phase)
		h.position++
	}
	return len(samples), true
}

func (h *hitSound) Err() error {
	return nil
}
