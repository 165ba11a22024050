package sound

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Chime plays a completion sound loaded from a WAV file. A nil Chime is
// safe to call and plays nothing.
type Chime struct {
	buffer *beep.Buffer
	volume float64
}

// LoadChime decodes the WAV file at path into memory and initialises the
// speaker for its sample rate.
func LoadChime(path string) (*Chime, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chime file: %w", err)
	}
	defer file.Close()

	streamer, format, err := wav.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode chime wav: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return &Chime{buffer: buffer, volume: 0}, nil
}

// SetVolume adjusts playback volume in doublings around the recorded level.
func (chime *Chime) SetVolume(volume float64) {
	if chime == nil {
		return
	}
	chime.volume = volume
}

// Play starts asynchronous playback of the chime.
func (chime *Chime) Play() {
	if chime == nil || chime.buffer == nil {
		return
	}

	streamer := chime.buffer.Streamer(0, chime.buffer.Len())
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   chime.volume,
		Silent:   false,
	})
}
