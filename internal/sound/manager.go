// Package sound plays short synthesised blips for game events.
// Samples are generated at start-up, so the game ships without audio files.
package sound

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Sound names
const (
	GROW  = "grow"
	TURN  = "turn"
	PAUSE = "pause"
)

const CommonSampleRate = 44100 // Common sample rate for all generated sounds

// Manager controls the generation and playback of audio samples.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	format     beep.Format
	muted      bool
	sampleVols map[string]float64 // per-sample volume in dB
	play       func(...beep.Streamer)
	clear      func()
}

// NewManager opens the platform audio backend and generates all samples.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	play, clear, err := openBackend(sampleRate)
	if err != nil {
		return nil, err
	}
	mgr := newManager(sampleRate, play, clear)
	mgr.LoadSamples()
	return mgr, nil
}

func newManager(sampleRate beep.SampleRate, play func(...beep.Streamer), clear func()) *Manager {
	return &Manager{
		samples:    make(map[string]*beep.Buffer),
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		sampleVols: make(map[string]float64),
		play:       play,
		clear:      clear,
	}
}

// LoadSamples generates the game sounds.
func (mgr *Manager) LoadSamples() {
	sr := mgr.format.SampleRate
	mgr.store(GROW, beep.Seq(
		squareTone(sr, 440, 40*time.Millisecond),
		squareTone(sr, 660, 60*time.Millisecond),
	))
	mgr.store(TURN, squareTone(sr, 220, 15*time.Millisecond))
	mgr.store(PAUSE, beep.Seq(
		squareTone(sr, 330, 80*time.Millisecond),
		squareTone(sr, 247, 120*time.Millisecond),
	))
	mgr.SetVolume(TURN, -2)
}

func (mgr *Manager) store(name string, s beep.Streamer) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	buf := beep.NewBuffer(mgr.format)
	buf.Append(s)
	mgr.samples[name] = buf
}

// squareTone returns a square wave of freq Hz lasting d.
func squareTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	const amplitude = 0.2
	period := float64(sr) / freq
	pos := 0
	wave := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := amplitude
			if math.Mod(float64(pos), period) >= period/2 {
				v = -amplitude
			}
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(sr.N(d), wave)
}

// SetVolume sets the volume of a sample in dB.
func (mgr *Manager) SetVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// Play plays the sample from the start.
// A nil manager is silent, like a muted one.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return nil
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}
	if mgr.muted {
		return nil
	}
	mgr.play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name],
	})
	return nil
}

// Muted reports whether playback is disabled.
func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// Close stops the speaker.
func (mgr *Manager) Close() {
	if mgr == nil || mgr.clear == nil {
		return
	}
	mgr.clear()
}
