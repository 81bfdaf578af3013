package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogCountsAndLast(t *testing.T) {
	l := NewEventLog()
	l.Add(1, 16, Event{Kind: CuePellet})
	l.Add(2, 32, Event{Kind: CueGhostEaten, Points: 200})
	l.Add(5, 80, Event{Kind: CuePellet})

	assert.Len(t, l.Entries(), 3)
	assert.Equal(t, 2, l.Count(CuePellet))
	assert.Equal(t, 0, l.Count(CuePlayerDied))

	last, ok := l.Last(CuePellet)
	require.True(t, ok)
	assert.Equal(t, 5, last.Tick)

	_, ok = l.Last(EventGameOver)
	assert.False(t, ok)
}

func TestLogEntryString(t *testing.T) {
	cases := []struct {
		entry LogEntry
		want  string
	}{
		{LogEntry{Tick: 42, ClockMs: 3120, Event: Event{Kind: CueGhostEaten, Points: 200}}, "[T=0042]   3120ms ghost-eaten    200"},
		{LogEntry{Tick: 7, ClockMs: 112, Event: Event{Kind: EffectScorePopup, X: 16, Y: 24, Points: 10, Category: PopupPellet}}, "[T=0007]    112ms popup          +10 pellet @(16.0,24.0)"},
		{LogEntry{Tick: 1, ClockMs: 16, Event: Event{Kind: EffectShake}}, "[T=0001]     16ms shake"},
	}
	for _, tc := range cases {
		t.Run(tc.entry.Event.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.String())
		})
	}
}

func TestEventKindStringOutOfRange(t *testing.T) {
	assert.Equal(t, "event(99)", EventKind(99).String())
	assert.Equal(t, "game-over", EventGameOver.String())
}
