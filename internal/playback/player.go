package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// DefaultBufferSize is the device buffer duration.
const DefaultBufferSize = 100 * time.Millisecond

// Player owns an oto context and plays one Reader at a time.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	reader *Reader
	mu     sync.Mutex
}

// New opens the audio device. oto allows one context per process.
func New(sampleRate, channels int, bufferSize time.Duration) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback sample rate must be > 0: %d", sampleRate)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("playback channels must be > 0: %d", channels)
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Play starts streaming r. A reader already playing is stopped first.
func (p *Player) Play(r *Reader) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.reader = r
	p.player = p.ctx.NewPlayer(r)
	p.player.Play()
}

// Wait blocks until the current reader has drained and the device has
// played it out, or until ctx is done, in which case playback stops.
func (p *Player) Wait(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		p.mu.Lock()
		playing := p.player != nil && p.player.IsPlaying()
		p.mu.Unlock()

		if !playing {
			return nil
		}

		select {
		case <-ctx.Done():
			p.Stop()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Stop ends playback at the next block boundary.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.reader != nil {
		p.reader.Stop()
	}

	if p.player != nil {
		p.player.Pause()
		_ = p.player.Close()
		p.player = nil
	}

	p.reader = nil
}

// Close stops playback and suspends the device.
func (p *Player) Close() error {
	p.Stop()

	return p.ctx.Suspend()
}
