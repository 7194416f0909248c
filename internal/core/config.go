package core

// RuntimeConfig contains configuration passed to a game session at initialization.
// Screen dimensions are in pixels of the simulated world, not terminal cells.
type RuntimeConfig struct {
	ScreenW  int // World width in pixels
	ScreenH  int // World height in pixels
	TickRate int // Target loop ticks per second (0 = uncapped)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 1000x2000 matches a portrait phone screen.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1000,
		ScreenH:  2000,
		TickRate: 60,
	}
}
