package round

import "fmt"

// EventKind identifies something the round wants its collaborators to know
// about. Cue* kinds map to sounds, Effect* kinds to visual effects.
type EventKind int

const (
	CuePellet EventKind = iota
	CuePowerPellet
	CueGhostEaten
	CuePlayerDied
	EffectShake
	EffectScorePopup
	EffectPowerFlash
	EventHighScore
	EventLevelComplete
	EventGameOver
)

var eventNames = [...]string{
	CuePellet:          "pellet",
	CuePowerPellet:     "power-pellet",
	CueGhostEaten:      "ghost-eaten",
	CuePlayerDied:      "player-died",
	EffectShake:        "shake",
	EffectScorePopup:   "popup",
	EffectPowerFlash:   "power-flash",
	EventHighScore:     "high-score",
	EventLevelComplete: "level-complete",
	EventGameOver:      "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// PopupCategory selects how a score popup is styled.
type PopupCategory int

const (
	PopupPellet PopupCategory = iota
	PopupPower
	PopupGhost
)

func (c PopupCategory) String() string {
	switch c {
	case PopupPellet:
		return "pellet"
	case PopupPower:
		return "power"
	case PopupGhost:
		return "ghost"
	default:
		return fmt.Sprintf("popup(%d)", int(c))
	}
}

// Event is emitted by Round.Update. X and Y are pixel positions for popups;
// Points carries the popup value, the new high score, the finished level or
// the final score depending on Kind.
type Event struct {
	Kind     EventKind     `msgpack:"kind"`
	X        float64       `msgpack:"x,omitempty"`
	Y        float64       `msgpack:"y,omitempty"`
	Points   int           `msgpack:"points,omitempty"`
	Category PopupCategory `msgpack:"category,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case EffectScorePopup:
		return fmt.Sprintf("%-14s +%d %s @(%.1f,%.1f)", e.Kind, e.Points, e.Category, e.X, e.Y)
	case CueGhostEaten, EventHighScore, EventLevelComplete, EventGameOver:
		return fmt.Sprintf("%-14s %d", e.Kind, e.Points)
	default:
		return e.Kind.String()
	}
}

// LogEntry is one recorded event.
type LogEntry struct {
	Tick    int     `msgpack:"tick"`
	ClockMs float64 `msgpack:"clock_ms"`
	Event   Event   `msgpack:"event"`
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042]   3120ms ghost-eaten    200
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %6.0fms %s", e.Tick, e.ClockMs, e.Event)
}

// EventLog collects every event a round emits. It is unbounded and meant for
// headless runs and tests.
type EventLog struct {
	entries []LogEntry
	counts  map[EventKind]int
}

func NewEventLog() *EventLog {
	return &EventLog{counts: make(map[EventKind]int)}
}

// Add records an event.
func (l *EventLog) Add(tick int, clockMs float64, ev Event) {
	l.entries = append(l.entries, LogEntry{Tick: tick, ClockMs: clockMs, Event: ev})
	l.counts[ev.Kind]++
}

// Entries returns all recorded entries in order.
func (l *EventLog) Entries() []LogEntry { return l.entries }

// Count returns how many events of kind k were recorded.
func (l *EventLog) Count(k EventKind) int { return l.counts[k] }

// Last returns the most recent entry of kind k.
func (l *EventLog) Last(k EventKind) (LogEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Event.Kind == k {
			return l.entries[i], true
		}
	}
	return LogEntry{}, false
}
