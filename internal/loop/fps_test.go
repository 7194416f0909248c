package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeterObserve(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"20ms frame", 20 * time.Millisecond, 50},
		{"1s frame", time.Second, 1},
		{"sub-millisecond frame", 500 * time.Microsecond, 2000},
		{"zero duration keeps previous", 0, 60},
		{"negative duration keeps previous", -time.Millisecond, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMeter(60)
			assert.InDelta(t, tc.expected, m.Observe(tc.elapsed), 1e-9)
			assert.InDelta(t, tc.expected, m.FPS(), 1e-9)
		})
	}
}

func TestMeterKeepsLastGoodValue(t *testing.T) {
	m := NewMeter(60)
	m.Observe(25 * time.Millisecond)
	m.Observe(0)

	assert.InDelta(t, 40, m.FPS(), 1e-9)
}

func TestNewMeterDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultFPS), NewMeter(0).FPS())
}

func TestFrameBudget(t *testing.T) {
	assert.Equal(t, time.Duration(0), frameBudget(0))
	assert.Equal(t, 20*time.Millisecond, frameBudget(50))
	assert.Equal(t, time.Second, frameBudget(1))
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	c.Sleep(15 * time.Millisecond)
	c.Advance(-time.Second)

	assert.Equal(t, start.Add(15*time.Millisecond), c.Now())
}
