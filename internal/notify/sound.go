package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Player decodes sound files and plays them through the speaker. Decoded
// buffers are cached so repeated alerts do not re-read the file. The speaker
// is initialised once, on first use.
type Player struct {
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	initErr error
	inited  bool
}

// NewPlayer creates an empty player. No audio device is touched until the
// first Play call.
func NewPlayer() *Player {
	return &Player{buffers: make(map[string]*beep.Buffer)}
}

// Play plays the sound file at path, loading and caching it if needed.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inited {
		p.inited = true
		p.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	}
	if p.initErr != nil {
		return fmt.Errorf("speaker init: %w", p.initErr)
	}

	buf, ok := p.buffers[path]
	if !ok {
		var err error
		buf, err = p.load(path)
		if err != nil {
			return err
		}
		p.buffers[path] = buf
	}

	speaker.Play(buf.Streamer(0, buf.Len()))
	return nil
}

// load decodes the file by extension into a resampled buffer.
func (p *Player) load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sound file: %w", err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if format.SampleRate != sampleRate {
		buf = beep.NewBuffer(beep.Format{
			SampleRate:  sampleRate,
			NumChannels: format.NumChannels,
			Precision:   format.Precision,
		})
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}

	return buf, nil
}
