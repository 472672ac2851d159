package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"termshogi/game"
)

const beepGap = 120 * time.Millisecond

// beeper is the part of tcell.Screen the player needs.
type beeper interface {
	Beep() error
}

var _ beeper = tcell.Screen(nil)

// SoundPlayer plays sound cues on the terminal bell. Playback runs on its own goroutine
// and failures are ignored.
type SoundPlayer struct {
	out     beeper
	enabled bool
}

func NewSoundPlayer(out beeper, enabled bool) *SoundPlayer {
	return &SoundPlayer{out: out, enabled: enabled}
}

func (p *SoundPlayer) SetEnabled(enabled bool) {
	p.enabled = enabled
}

func (p *SoundPlayer) Enabled() bool {
	return p != nil && p.enabled && p.out != nil
}

// beepsFor returns how many bells ring for cue.
func beepsFor(cue game.SoundCue) int {
	switch cue {
	case game.SoundMove:
		return 1
	case game.SoundCapture:
		return 2
	case game.SoundError:
		return 3
	}
	return 0
}

func (p *SoundPlayer) Play(cue game.SoundCue) {
	if !p.Enabled() {
		return
	}
	n := beepsFor(cue)
	if n == 0 {
		return
	}
	go func() {
		for i := 0; i < n; i++ {
			if i > 0 {
				time.Sleep(beepGap)
			}
			_ = p.out.Beep()
		}
	}()
}
