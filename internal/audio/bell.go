package audio

import (
	"io"
	"strings"
	"sync"
)

// Bell plays cues as terminal bells. A miss rings twice so it stands out.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell player writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell for c.
func (b *Bell) Play(c Cue) error {
	n := 1
	if c == CueMiss {
		n = 2
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, strings.Repeat("\a", n))
	return err
}

// Silent is a Player that does nothing.
var Silent Player = PlayerFunc(func(Cue) error { return nil })
