package entities

import "math"

// Maze is the read side of the tile grid that actors move through.
type Maze interface {
	CanTraverse(x, y int, ghost bool) bool
	Bounds() (cols, rows, tileSize int)
}

// Traversal selects the tile rules an actor moves under.
type Traversal int

const (
	PlayerRules Traversal = iota
	GhostRules
)

// TilePos addresses one grid cell.
type TilePos struct {
	X, Y int
}

// Add offsets p by n cells in direction d.
func (p TilePos) Add(d Direction, n int) TilePos {
	dx, dy := DirDelta(d)
	return TilePos{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Dist is the straight-line distance between two cells.
func (p TilePos) Dist(q TilePos) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// TileCoord converts a pixel coordinate of an actor's centre into a fractional
// tile coordinate. Integers are tile centres.
func TileCoord(px float64, tileSize int) float64 {
	return px/float64(tileSize) - 0.5
}

// TileIndex rounds a pixel coordinate to the occupied tile. Halves round up.
func TileIndex(px float64, tileSize int) int {
	return int(math.Floor(TileCoord(px, tileSize) + 0.5))
}

// TileCenter returns the pixel centre of tile i.
func TileCenter(i int, tileSize int) float64 {
	return (float64(i) + 0.5) * float64(tileSize)
}

// CenterOf returns the pixel centre of a cell.
func CenterOf(p TilePos, tileSize int) (x, y float64) {
	return TileCenter(p.X, tileSize), TileCenter(p.Y, tileSize)
}

// Resolver moves actors through a maze.
type Resolver struct {
	Maze Maze
}

// Step displaces (x, y) by dist pixels along dir and returns the allowed
// position. moved is false when the move was rejected.
//
// Players are tested with a square hitbox; a blocked player snaps to the
// centre of its tile. Ghosts are tested with their centre point only and stop
// at every tile centre they would cross, so no intersection is skipped.
func (r Resolver) Step(x, y float64, dir Direction, dist float64, rule Traversal) (nx, ny float64, moved bool) {
	if dir == DirNone || dist <= 0 {
		return x, y, false
	}
	if rule == GhostRules {
		return r.stepGhost(x, y, dir, dist)
	}
	return r.stepPlayer(x, y, dir, dist)
}

func (r Resolver) stepPlayer(x, y float64, dir Direction, dist float64) (float64, float64, bool) {
	dx, dy := DirDelta(dir)
	nx := x + float64(dx)*dist
	ny := y + float64(dy)*dist
	if r.hitboxClear(nx, ny) {
		return nx, ny, true
	}
	_, _, ts := r.Maze.Bounds()
	return TileCenter(TileIndex(x, ts), ts), TileCenter(TileIndex(y, ts), ts), false
}

// hitboxClear tests the four corners of the player's hitbox.
func (r Resolver) hitboxClear(x, y float64) bool {
	_, _, ts := r.Maze.Bounds()
	half := float64(ts)/2 - 1
	corners := [4][2]float64{
		{x - half, y - half},
		{x + half, y - half},
		{x - half, y + half},
		{x + half, y + half},
	}
	for _, c := range corners {
		tx := int(math.Floor(c[0] / float64(ts)))
		ty := int(math.Floor(c[1] / float64(ts)))
		if !r.Maze.CanTraverse(tx, ty, false) {
			return false
		}
	}
	return true
}

func (r Resolver) stepGhost(x, y float64, dir Direction, dist float64) (float64, float64, bool) {
	_, _, ts := r.Maze.Bounds()
	dx, dy := DirDelta(dir)

	// Work on the axis of travel only.
	pos, sign := x, float64(dx)
	if !dir.Horizontal() {
		pos, sign = y, float64(dy)
	}
	cur := TileIndex(pos, ts)
	center := TileCenter(cur, ts)

	next := pos + sign*dist
	// First centre strictly ahead of pos.
	ahead := center
	if (ahead-pos)*sign <= 0 {
		ahead += sign * float64(ts)
	}
	if (next-ahead)*sign > 0 {
		next = ahead
	}

	if (next-center)*sign > 0 {
		// Heading out of the current tile: the next one must be open.
		here := TilePos{X: TileIndex(x, ts), Y: TileIndex(y, ts)}
		dest := here.Add(dir, 1)
		if !r.Maze.CanTraverse(dest.X, dest.Y, true) {
			return x, y, false
		}
	}

	if dir.Horizontal() {
		return next, y, true
	}
	return x, next, true
}

// WrapTunnel teleports an x coordinate that left the maze by more than one
// tile to the opposite side. The shift is exactly the maze width so wrapping
// right then left restores the original position.
func WrapTunnel(x float64, m Maze) float64 {
	cols, _, ts := m.Bounds()
	width := float64(cols * ts)
	margin := float64(ts)
	switch {
	case x < -margin:
		return x + width
	case x > width+margin:
		return x - width
	}
	return x
}

// CanEnter reports whether the cell adjacent to p in direction d is open
// under the given rules.
func CanEnter(m Maze, p TilePos, d Direction, rule Traversal) bool {
	if d == DirNone {
		return false
	}
	n := p.Add(d, 1)
	return m.CanTraverse(n.X, n.Y, rule == GhostRules)
}
