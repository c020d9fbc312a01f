//go:build !linux
// +build !linux

package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// openBackend initializes the default beep speaker backend.
func openBackend(sampleRate beep.SampleRate) (play func(...beep.Streamer), clear func(), err error) {
	bufferSize := sampleRate.N(time.Second / 10)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, nil, err
	}
	return speaker.Play, speaker.Clear, nil
}
