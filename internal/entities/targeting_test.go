package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

func TestChaseRules(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		s    Situation
		want TilePos
	}{
		{
			name: "direct targets the player",
			id:   Blinky,
			s:    Situation{Player: TilePos{10, 20}, PlayerDir: DirUp, Self: TilePos{1, 1}},
			want: TilePos{10, 20},
		},
		{
			name: "ambush leads four tiles",
			id:   Pinky,
			s:    Situation{Player: TilePos{10, 20}, PlayerDir: DirLeft},
			want: TilePos{6, 20},
		},
		{
			name: "ambush leads upward",
			id:   Pinky,
			s:    Situation{Player: TilePos{10, 20}, PlayerDir: DirUp},
			want: TilePos{10, 16},
		},
		{
			name: "ambush without heading falls back to player",
			id:   Pinky,
			s:    Situation{Player: TilePos{10, 20}},
			want: TilePos{10, 20},
		},
		{
			name: "flank mirrors own tile through player",
			id:   Inky,
			s:    Situation{Player: TilePos{10, 20}, Self: TilePos{12, 14}},
			want: TilePos{8, 26},
		},
		{
			name: "shy chases when far",
			id:   Clyde,
			s:    Situation{Player: TilePos{1, 1}, Self: TilePos{10, 10}, Scatter: TilePos{0, 30}},
			want: TilePos{1, 1},
		},
		{
			name: "shy retreats when close",
			id:   Clyde,
			s:    Situation{Player: TilePos{5, 5}, Self: TilePos{10, 10}, Scatter: TilePos{0, 30}},
			want: TilePos{0, 30},
		},
		{
			name: "shy retreats at exactly eight",
			id:   Clyde,
			s:    Situation{Player: TilePos{2, 10}, Self: TilePos{10, 10}, Scatter: TilePos{0, 30}},
			want: TilePos{0, 30},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.id.Chase(tc.s))
		})
	}
}

func TestTargetByMode(t *testing.T) {
	m := tm.NewDefaultMap(testTile)
	q := fixedQuarry{tile: TilePos{14, 23}, dir: DirRight}
	for _, id := range Identities {
		g := newTestGhost(t, id, m, q)

		g.Mode = ModeScatter
		assert.Equal(t, id.ScatterCorner(), g.Target(), "%v scatter", id)

		g.Mode = ModeChase
		want := id.Chase(Situation{Player: q.tile, PlayerDir: q.dir, Self: id.Home(), Scatter: id.ScatterCorner()})
		assert.Equal(t, want, g.Target(), "%v chase", id)

		g.Mode = ModeFrightened
		target := g.Target()
		assert.True(t, target.X >= 0 && target.X < m.Width && target.Y >= 0 && target.Y < m.Height,
			"%v frightened target %v outside grid", id, target)
	}
}

func TestIdentityNames(t *testing.T) {
	assert.Equal(t, "blinky", Blinky.String())
	assert.Equal(t, "clyde", Clyde.String())
	assert.Equal(t, "ghost(9)", Identity(9).String())
}
