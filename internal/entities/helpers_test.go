package entities

import (
	"testing"

	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

const testTile = 16

func mustMaze(t *testing.T, rows ...string) *tm.TileMap {
	t.Helper()
	m, err := tm.Parse(rows, testTile)
	if err != nil {
		t.Fatalf("parse maze: %v", err)
	}
	return m
}

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

type fixedQuarry struct {
	tile TilePos
	dir  Direction
}

func (q fixedQuarry) Tile() TilePos     { return q.tile }
func (q fixedQuarry) Facing() Direction { return q.dir }

func center(i int) float64 { return TileCenter(i, testTile) }
