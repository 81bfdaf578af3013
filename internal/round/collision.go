package round

import (
	"math"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

// Positioned is anything with a pixel centre.
type Positioned interface {
	Pixel() (x, y float64)
}

// Detector finds pellet and player/ghost contacts. It only reports; the
// round decides what a contact means.
type Detector struct {
	// Radius is the contact distance in pixels. Centres strictly closer
	// than Radius touch.
	Radius float64
}

// NewDetector uses half a tile as the contact radius.
func NewDetector(tileSize int) Detector {
	return Detector{Radius: float64(tileSize) / 2}
}

// Pellet eats whatever pellet lies on the player's tile.
func (d Detector) Pellet(p *entities.Player, m *tm.TileMap) (tm.Pellet, bool) {
	t := p.Tile()
	return m.EatPelletAt(t.X, t.Y)
}

// Touching reports whether a and b are in contact.
func (d Detector) Touching(a, b Positioned) bool {
	ax, ay := a.Pixel()
	bx, by := b.Pixel()
	return math.Hypot(ax-bx, ay-by) < d.Radius
}

// Contacts returns the ghosts touching the player, in the order given.
func (d Detector) Contacts(p Positioned, ghosts []*entities.Ghost) []*entities.Ghost {
	var out []*entities.Ghost
	for _, g := range ghosts {
		if d.Touching(p, g) {
			out = append(out, g)
		}
	}
	return out
}
