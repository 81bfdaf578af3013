package entities

import (
	"fmt"
	"math"
	"strings"
)

// Mode is a ghost's behaviour mode.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	// ModeEaten exists for completeness; eaten ghosts are reset straight to
	// their home tile and never travel in this mode.
	ModeEaten
)

const (
	animFrameMs      = 200.0
	flashThresholdMs = 2000.0
	flashIntervalMs  = 200.0

	// intersectionTolerance is the largest fractional tile offset on both
	// axes at which a ghost counts as centred.
	intersectionTolerance = 0.1
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "scatter":
		*m = ModeScatter
	case "chase":
		*m = ModeChase
	case "frightened":
		*m = ModeFrightened
	case "eaten":
		*m = ModeEaten
	default:
		return fmt.Errorf("unknown ghost mode %q", string(b))
	}
	return nil
}

// Quarry is what ghosts hunt: the player's tile and heading.
type Quarry interface {
	Tile() TilePos
	Facing() Direction
}

// Random supplies frightened ghosts with wander targets.
type Random interface {
	Intn(n int) int
}

// GhostConfig holds the tunables shared by all ghosts.
type GhostConfig struct {
	Speed        float64 // pixels per millisecond
	FrightenedMs float64
}

type Ghost struct {
	Identity        Identity
	X, Y            float64
	CurrentDir      Direction
	Mode            Mode
	FrightenedTimer float64
	Frame           int

	animTimer  float64
	cfg        GhostConfig
	maze       Maze
	resolver   Resolver
	quarry     Quarry
	rng        Random
	decidedAt  TilePos // tile of the last direction decision
	hasDecided bool
}

func NewGhost(id Identity, m Maze, quarry Quarry, rng Random, cfg GhostConfig) *Ghost {
	g := &Ghost{
		Identity: id,
		cfg:      cfg,
		maze:     m,
		resolver: Resolver{Maze: m},
		quarry:   quarry,
		rng:      rng,
	}
	g.Reset()
	return g
}

// Reset sends the ghost home in scatter mode.
func (g *Ghost) Reset() {
	_, _, ts := g.maze.Bounds()
	g.X, g.Y = CenterOf(g.Identity.Home(), ts)
	g.CurrentDir = DirLeft
	g.Mode = ModeScatter
	g.FrightenedTimer = 0
	g.hasDecided = false
}

// SetMode switches behaviour. Entering frightened mode restarts the
// countdown and turns the ghost around.
func (g *Ghost) SetMode(m Mode) {
	if m == ModeFrightened {
		g.FrightenedTimer = g.cfg.FrightenedMs
		g.CurrentDir = g.CurrentDir.Opposite()
		g.hasDecided = false
	}
	g.Mode = m
}

// Update advances the ghost by dtMs milliseconds.
func (g *Ghost) Update(dtMs float64) {
	if g.Mode == ModeFrightened {
		g.FrightenedTimer -= dtMs
		if g.FrightenedTimer <= 0 {
			g.FrightenedTimer = 0
			g.Mode = ModeChase
		}
	}

	g.animTimer += dtMs
	if g.animTimer >= animFrameMs {
		g.animTimer = 0
		g.Frame = (g.Frame + 1) % 2
	}

	speed := g.cfg.Speed
	if g.Mode == ModeFrightened {
		speed *= 0.5
	}
	var moved bool
	g.X, g.Y, moved = g.resolver.Step(g.X, g.Y, g.CurrentDir, speed*dtMs, GhostRules)
	g.X = WrapTunnel(g.X, g.maze)

	// One decision per tile visit. Slow ghosts stay inside the tolerance
	// for several ticks and would otherwise turn back on a later one. A
	// blocked ghost always gets to decide again.
	if g.AtIntersection() {
		if here := g.Tile(); !moved || !g.hasDecided || here != g.decidedAt {
			g.decidedAt, g.hasDecided = here, true
			g.makeDecision()
		}
	}
}

// AtIntersection reports whether the ghost is centred on its tile.
func (g *Ghost) AtIntersection() bool {
	tx, ty := g.TileCoords()
	return math.Abs(tx-math.Floor(tx+0.5)) < intersectionTolerance &&
		math.Abs(ty-math.Floor(ty+0.5)) < intersectionTolerance
}

func (g *Ghost) makeDecision() {
	options := g.options()
	if len(options) == 0 {
		return
	}
	target := g.Target()
	here := g.Tile()

	best := options[0]
	bestDist := math.Inf(1)
	for _, d := range options {
		if dist := here.Add(d, 1).Dist(target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	g.turn(best)
}

// options lists the open directions in decision order, leaving out the
// reverse unless it is the only way out.
func (g *Ghost) options() []Direction {
	here := g.Tile()
	reverse := g.CurrentDir.Opposite()
	out := make([]Direction, 0, 3)
	for _, d := range decisionOrder {
		if d == reverse {
			continue
		}
		if CanEnter(g.maze, here, d, GhostRules) {
			out = append(out, d)
		}
	}
	if len(out) == 0 && CanEnter(g.maze, here, reverse, GhostRules) {
		out = append(out, reverse)
	}
	return out
}

func (g *Ghost) turn(d Direction) {
	_, _, ts := g.maze.Bounds()
	g.CurrentDir = d
	if d.Horizontal() {
		g.Y = TileCenter(TileIndex(g.Y, ts), ts)
	} else {
		g.X = TileCenter(TileIndex(g.X, ts), ts)
	}
}

// Target is the tile the ghost steers toward in its current mode.
func (g *Ghost) Target() TilePos {
	switch g.Mode {
	case ModeFrightened:
		cols, rows, _ := g.maze.Bounds()
		return TilePos{X: g.rng.Intn(cols), Y: g.rng.Intn(rows)}
	case ModeScatter:
		return g.Identity.ScatterCorner()
	}
	return g.Identity.Chase(Situation{
		Player:    g.quarry.Tile(),
		PlayerDir: g.quarry.Facing(),
		Self:      g.Tile(),
		Scatter:   g.Identity.ScatterCorner(),
	})
}

func (g *Ghost) Tile() TilePos {
	_, _, ts := g.maze.Bounds()
	return TilePos{X: TileIndex(g.X, ts), Y: TileIndex(g.Y, ts)}
}

func (g *Ghost) TileCoords() (float64, float64) {
	_, _, ts := g.maze.Bounds()
	return TileCoord(g.X, ts), TileCoord(g.Y, ts)
}

func (g *Ghost) Pixel() (float64, float64) { return g.X, g.Y }

// Flashing is true in the last two seconds of fright, alternating every 200ms.
func (g *Ghost) Flashing() bool {
	if g.Mode != ModeFrightened || g.FrightenedTimer >= flashThresholdMs {
		return false
	}
	return int(g.FrightenedTimer/flashIntervalMs)%2 == 0
}
