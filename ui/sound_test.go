package ui

import (
	"testing"
	"time"

	"termshogi/game"
)

type countingBeeper struct {
	beeps chan struct{}
}

func (b *countingBeeper) Beep() error {
	b.beeps <- struct{}{}
	return nil
}

func waitBeeps(t *testing.T, b *countingBeeper, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-b.beeps:
		case <-time.After(2 * time.Second):
			t.Fatalf("got %d beeps, want %d", i, n)
		}
	}
	select {
	case <-b.beeps:
		t.Fatalf("more than %d beeps", n)
	case <-time.After(3 * beepGap):
	}
}

func TestSoundPlayerBeepCounts(t *testing.T) {
	cases := map[game.SoundCue]int{
		game.SoundMove:    1,
		game.SoundCapture: 2,
		game.SoundError:   3,
	}
	for cue, n := range cases {
		b := &countingBeeper{beeps: make(chan struct{}, 8)}
		NewSoundPlayer(b, true).Play(cue)
		waitBeeps(t, b, n)
	}
}

func TestSoundPlayerDisabled(t *testing.T) {
	b := &countingBeeper{beeps: make(chan struct{}, 8)}
	p := NewSoundPlayer(b, false)
	p.Play(game.SoundCapture)
	waitBeeps(t, b, 0)

	var nilPlayer *SoundPlayer
	nilPlayer.Play(game.SoundMove)
}
