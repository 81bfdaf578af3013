package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

type point struct{ x, y float64 }

func (p point) Pixel() (float64, float64) { return p.x, p.y }

func TestDetectorTouching(t *testing.T) {
	d := NewDetector(16)
	assert.Equal(t, 8.0, d.Radius)

	cases := []struct {
		name string
		a, b point
		want bool
	}{
		{"same spot", point{10, 10}, point{10, 10}, true},
		{"just inside", point{0, 0}, point{7.9, 0}, true},
		{"on the radius", point{0, 0}, point{8, 0}, false},
		{"diagonal", point{0, 0}, point{5, 5}, true},
		{"far", point{0, 0}, point{100, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Touching(tc.a, tc.b))
		})
	}
}

func TestDetectorContactsKeepsOrder(t *testing.T) {
	m := tm.NewDefaultMap(16)
	rng := &scriptedRand{}
	p := entities.NewPlayer(m, entities.TilePos{X: 14, Y: 23}, 0.128)
	var ghosts []*entities.Ghost
	for _, id := range entities.Identities {
		ghosts = append(ghosts, entities.NewGhost(id, m, p, rng, entities.GhostConfig{Speed: 0.15, FrightenedMs: 6000}))
	}
	ghosts[3].X, ghosts[3].Y = p.X+3, p.Y
	ghosts[1].X, ghosts[1].Y = p.X, p.Y-4

	got := NewDetector(16).Contacts(p, ghosts)
	require.Len(t, got, 2)
	assert.Equal(t, entities.Pinky, got[0].Identity)
	assert.Equal(t, entities.Clyde, got[1].Identity)
}

func TestDetectorPelletUsesPlayerTile(t *testing.T) {
	m := tm.NewDefaultMap(16)
	p := entities.NewPlayer(m, entities.TilePos{X: 14, Y: 23}, 0.128)
	d := NewDetector(16)

	_, ok := d.Pellet(p, m)
	assert.False(t, ok, "start tile is empty")

	// Seven pixels right of (1,1) still rounds to (1,1).
	placeOn(&p.X, &p.Y, entities.TilePos{X: 1, Y: 1}, 16)
	p.X += 7
	got, ok := d.Pellet(p, m)
	require.True(t, ok)
	assert.Equal(t, tm.Pellet{Points: 10}, got)

	_, ok = d.Pellet(p, m)
	assert.False(t, ok)
}
