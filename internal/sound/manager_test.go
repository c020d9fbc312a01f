package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

type recorder struct {
	played  []beep.Streamer
	cleared bool
}

func (r *recorder) play(s ...beep.Streamer) { r.played = append(r.played, s...) }
func (r *recorder) clear()                  { r.cleared = true }

func newTestManager() (*Manager, *recorder) {
	rec := &recorder{}
	mgr := newManager(beep.SampleRate(CommonSampleRate), rec.play, rec.clear)
	mgr.LoadSamples()
	return mgr, rec
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, smp := range buf[:k] {
			if smp[0] > peak {
				peak = smp[0]
			}
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestSquareTone(t *testing.T) {
	sr := beep.SampleRate(CommonSampleRate)
	n, peak := drain(squareTone(sr, 440, 50*time.Millisecond))
	if want := sr.N(50 * time.Millisecond); n != want {
		t.Errorf("tone length = %d samples, want %d", n, want)
	}
	if peak <= 0 || peak > 1 {
		t.Errorf("tone peak = %f", peak)
	}
}

func TestLoadSamples(t *testing.T) {
	mgr, _ := newTestManager()
	sr := beep.SampleRate(CommonSampleRate)
	if got, want := mgr.samples[GROW].Len(), sr.N(100*time.Millisecond); got != want {
		t.Errorf("GROW length = %d, want %d", got, want)
	}
	for _, name := range []string{GROW, TURN, PAUSE} {
		if _, ok := mgr.samples[name]; !ok {
			t.Errorf("sample %q not generated", name)
		}
	}
}

func TestPlay(t *testing.T) {
	mgr, rec := newTestManager()
	if err := mgr.Play(GROW); err != nil {
		t.Fatal(err)
	}
	if len(rec.played) != 1 {
		t.Fatalf("played %d streamers, want 1", len(rec.played))
	}
	if n, _ := drain(rec.played[0]); n != mgr.samples[GROW].Len() {
		t.Errorf("played %d samples, want %d", n, mgr.samples[GROW].Len())
	}
	if err := mgr.Play("missing"); err == nil {
		t.Error("Play(missing) succeeded")
	}
}

func TestMute(t *testing.T) {
	mgr, rec := newTestManager()
	mgr.Mute()
	if !mgr.Muted() {
		t.Fatal("Muted() = false after Mute")
	}
	if err := mgr.Play(TURN); err != nil {
		t.Fatal(err)
	}
	if len(rec.played) != 0 {
		t.Errorf("muted manager played %d streamers", len(rec.played))
	}
	mgr.Unmute()
	if err := mgr.Play(TURN); err != nil {
		t.Fatal(err)
	}
	if len(rec.played) != 1 {
		t.Errorf("unmuted manager played %d streamers", len(rec.played))
	}
	mgr.Close()
	if !rec.cleared {
		t.Error("Close did not clear the speaker")
	}
}

func TestNilManager(t *testing.T) {
	var mgr *Manager
	if err := mgr.Play(GROW); err != nil {
		t.Errorf("nil manager Play() error = %v, want silence", err)
	}
	mgr.Mute()
	mgr.Unmute()
	mgr.Close()
	if !mgr.Muted() {
		t.Error("nil manager is not muted")
	}
}
