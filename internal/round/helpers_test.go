package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/absolutebasti/Pac-Man/internal/entities"
)

// scriptedRand replays fixed sequences so frightened targets and popups are
// predictable.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

// newPlayingRound builds a round on the reference maze and runs it through
// the ready countdown.
func newPlayingRound(t *testing.T, s Settings, opts ...Option) *Round {
	t.Helper()
	opts = append([]Option{WithRandom(&scriptedRand{ints: []int{3, 7, 11}})}, opts...)
	r, err := New(s, opts...)
	require.NoError(t, err)
	require.Equal(t, StateStart, r.State())
	r.Confirm()
	require.Equal(t, StateReady, r.State())
	r.Update(s.ReadyMs)
	require.Equal(t, StatePlaying, r.State())
	return r
}

// placeOn moves an actor's centre onto a tile.
func placeOn(x, y *float64, tile entities.TilePos, ts int) {
	*x, *y = entities.CenterOf(tile, ts)
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func findEvent(events []Event, k EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == k {
			return e, true
		}
	}
	return Event{}, false
}
