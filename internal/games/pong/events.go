package pong

// EventKind identifies a discrete signal raised by the collision engine.
type EventKind uint8

const (
	EventPaddleHit EventKind = iota + 1
	EventObstacleHit
	EventMiss
	EventTopWall
	EventSideWall
	EventRoundOver // Lives reached zero; Score holds the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventObstacleHit:
		return "obstacle-hit"
	case EventMiss:
		return "miss"
	case EventTopWall:
		return "top-wall"
	case EventSideWall:
		return "side-wall"
	case EventRoundOver:
		return "round-over"
	default:
		return "unknown"
	}
}

// Event is emitted once per collision trigger.
// Score and Lives are the round counters right after the trigger was handled.
type Event struct {
	Kind  EventKind
	Score int
	Lives int
}

// Listener receives events on the loop goroutine. Implementations must not block.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
