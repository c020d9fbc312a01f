//go:build linux
// +build linux

package sound

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/pulse"
)

// Pulse playback streams default to mono at this rate.
const pulseSampleRate = 44100

type pulseBackend struct {
	client *pulse.Client
	stream *pulse.PlaybackStream
	ctrl   *pulseControl
}

// pulseControl mixes the playing samples for the pulse stream.
// Once stopped it only yields silence.
type pulseControl struct {
	mu      sync.Mutex
	mix     beep.Mixer
	buf     [][2]float64
	stopped bool
}

func newPulseControl() *pulseControl {
	return &pulseControl{buf: make([][2]float64, 512)}
}

func (pc *pulseControl) add(s ...beep.Streamer) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.stopped {
		return
	}
	pc.mix.Add(s...)
}

func (pc *pulseControl) stop() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.stopped = true
	pc.mix.Clear()
}

// read fills out with mono float32 frames pulled from the mixer.
func (pc *pulseControl) read(out []float32) (int, error) {
	frames := min(len(out), len(pc.buf))
	pc.mu.Lock()
	buf := pc.buf[:frames]
	if pc.stopped {
		clear(buf)
	} else {
		n, _ := pc.mix.Stream(buf)
		clear(buf[n:])
	}
	pc.mu.Unlock()

	for i := range buf {
		out[i] = float32((buf[i][0] + buf[i][1]) / 2)
	}
	return frames, nil
}

// openBackend plays through PulseAudio instead of beep/speaker.
func openBackend(sampleRate beep.SampleRate) (play func(...beep.Streamer), clear func(), err error) {
	if sampleRate != pulseSampleRate {
		return nil, nil, fmt.Errorf("pulse: unsupported sample rate %d", sampleRate)
	}
	client, err := pulse.NewClient()
	if err != nil {
		return nil, nil, err
	}

	ctrl := newPulseControl()
	stream, err := client.NewPlayback(
		pulse.Float32Reader(ctrl.read),
		pulse.PlaybackLatency(0.03), // ~30ms latency for low delay
	)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	stream.Start()

	pb := &pulseBackend{client: client, stream: stream, ctrl: ctrl}
	return ctrl.add, pb.close, nil
}

// close silences playback and releases the PulseAudio connection.
func (pb *pulseBackend) close() {
	pb.ctrl.stop()
	pb.stream.Close()
	pb.client.Close()
}
