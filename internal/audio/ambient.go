// Package audio plays an optional ambient soundtrack behind the
// backgrounds. The app is fully functional without it; the streamed
// level feeds back into the wave amplitude when a track is playing.
package audio

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

const ringSize = 8192

// Ambient manages one looping soundtrack.
type Ambient struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap

	smoothed float64
	initDone bool
	paused   bool
}

// NewAmbient returns an idle player; nothing plays until Open or
// OpenDialog succeeds.
func NewAmbient() *Ambient {
	return &Ambient{}
}

// Playing reports whether a track is loaded and not paused.
func (a *Ambient) Playing() bool {
	return a.streamer != nil && !a.paused
}

// Level returns the smoothed loudness of the current playback in
// [0,1], 0 when idle.
func (a *Ambient) Level() float64 {
	if a.tap == nil || a.paused {
		return 0
	}
	const smoothing = 0.6
	a.smoothed = smoothing*a.smoothed + (1-smoothing)*a.tap.level(2048)
	return a.smoothed
}

// TogglePause flips playback without unloading the track.
func (a *Ambient) TogglePause() {
	if a.ctrl == nil {
		return
	}
	speaker.Lock()
	a.paused = !a.paused
	a.ctrl.Paused = a.paused
	speaker.Unlock()
}

// OpenDialog asks for an audio file and starts looping it. A canceled
// dialog is not an error.
func (a *Ambient) OpenDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Ambient Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return a.Open(filename)
}

// Open decodes path by extension and loops it on the speaker.
func (a *Ambient) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch filepath.Ext(path) {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	case ".flac", ".FLAC":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	tap := newLevelTap(beep.Loop(-1, streamer), ringSize)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !a.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		a.initDone = true
	} else if a.format.SampleRate != format.SampleRate {
		// Re-init when sample rate changes.
		speaker.Lock()
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			speaker.Unlock()
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		speaker.Unlock()
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}

	a.closeCurrent()
	a.file = f
	a.streamer = streamer
	a.format = format
	a.ctrl = ctrl
	a.tap = tap
	a.paused = false

	speaker.Play(ctrl)
	return nil
}

// Close stops playback and releases the current track.
func (a *Ambient) Close() {
	if a.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	a.closeCurrent()
}

func (a *Ambient) closeCurrent() {
	if a.streamer != nil {
		_ = a.streamer.Close()
		a.streamer = nil
	}
	if a.file != nil {
		_ = a.file.Close()
		a.file = nil
	}
	a.tap = nil
	a.ctrl = nil
}
