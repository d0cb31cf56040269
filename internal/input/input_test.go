package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want State
	}{
		{"letters", "ad", State{Left: true, Right: true}},
		{"arrows", "\x1b[A\x1b[D", State{Up: true, Left: true}},
		{"fire", " ", State{Fire: true}},
		{"vim keys", "ik", State{Up: true, Down: true}},
		{"unknown", "z", State{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{ch: make(chan byte)}
			parse(&s.state, []byte(tt.in), now)
			got := s.ReadInput(now)
			if got.State != tt.want {
				t.Errorf("got %+v, want %+v", got.State, tt.want)
			}
		})
	}
}

func TestKeysExpire(t *testing.T) {
	now := time.Now()
	s := &Stream{ch: make(chan byte)}
	parse(&s.state, []byte(" "), now)

	if !s.ReadInput(now).Fire {
		t.Fatal("fire should be held right after the key press")
	}
	if s.ReadInput(now.Add(keyHoldDuration)).Fire {
		t.Error("fire should expire after the hold duration")
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	now := time.Now()
	s := &Stream{ch: make(chan byte)}
	parse(&s.state, []byte("\r"), now)
	s.Reset()
	if s.ReadInput(now).Restart {
		t.Error("Reset should clear restart")
	}
}

func TestStreamQuitOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s.ReadInput(time.Now()).Quit {
			if !s.Closed() {
				t.Error("Closed() should be true after EOF")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("closed stream should report Quit")
}
