package entities

const (
	maxMouthAngle = 0.4 // radians
	mouthSpeed    = 0.3
)

// Player is the maze runner steered by input. X and Y are the pixel centre;
// tile coordinates are always derived from them.
type Player struct {
	X, Y       float64
	CurrentDir Direction
	DesiredDir Direction
	MouthAngle float64

	start     TilePos
	speed     float64 // pixels per millisecond
	mouthOpen float64 // +1 opening, -1 closing
	maze      Maze
	resolver  Resolver
	lastMoved bool
}

// NewPlayer places a player on its start tile. speed is in pixels per
// millisecond.
func NewPlayer(m Maze, start TilePos, speed float64) *Player {
	p := &Player{
		start:     start,
		speed:     speed,
		mouthOpen: 1,
		maze:      m,
		resolver:  Resolver{Maze: m},
	}
	p.Reset()
	return p
}

// Reset returns the player to its start tile with no direction.
func (p *Player) Reset() {
	_, _, ts := p.maze.Bounds()
	p.X, p.Y = CenterOf(p.start, ts)
	p.CurrentDir = DirNone
	p.DesiredDir = DirNone
	p.MouthAngle = 0
	p.mouthOpen = 1
	p.lastMoved = false
}

// SetDirection buffers a turn. It is applied on a later Update once the grid
// allows it.
func (p *Player) SetDirection(d Direction) {
	p.DesiredDir = d
}

// Update advances the player by dtMs milliseconds.
func (p *Player) Update(dtMs float64) {
	_, _, ts := p.maze.Bounds()

	if p.DesiredDir != DirNone && CanEnter(p.maze, p.Tile(), p.DesiredDir, PlayerRules) {
		p.CurrentDir = p.DesiredDir
		p.DesiredDir = DirNone
		p.alignToGrid(ts)
	}

	p.lastMoved = false
	if p.CurrentDir != DirNone {
		p.X, p.Y, p.lastMoved = p.resolver.Step(p.X, p.Y, p.CurrentDir, p.speed*dtMs, PlayerRules)
		p.X = WrapTunnel(p.X, p.maze)
	}

	if p.lastMoved {
		p.animateMouth(dtMs)
	}
}

// alignToGrid centres the axis perpendicular to travel.
func (p *Player) alignToGrid(ts int) {
	if p.CurrentDir.Horizontal() {
		p.Y = TileCenter(TileIndex(p.Y, ts), ts)
		return
	}
	p.X = TileCenter(TileIndex(p.X, ts), ts)
}

func (p *Player) animateMouth(dtMs float64) {
	p.MouthAngle += mouthSpeed * p.mouthOpen * dtMs * 0.02
	if p.MouthAngle >= maxMouthAngle {
		p.MouthAngle = maxMouthAngle
		p.mouthOpen = -1
	} else if p.MouthAngle <= 0 {
		p.MouthAngle = 0
		p.mouthOpen = 1
	}
}

// Tile is the occupied cell.
func (p *Player) Tile() TilePos {
	_, _, ts := p.maze.Bounds()
	return TilePos{X: TileIndex(p.X, ts), Y: TileIndex(p.Y, ts)}
}

// TileCoords returns the fractional tile coordinates.
func (p *Player) TileCoords() (float64, float64) {
	_, _, ts := p.maze.Bounds()
	return TileCoord(p.X, ts), TileCoord(p.Y, ts)
}

// Facing is the direction the player is travelling in.
func (p *Player) Facing() Direction { return p.CurrentDir }

// Pixel returns the raw pixel position.
func (p *Player) Pixel() (float64, float64) { return p.X, p.Y }

// Moved reports whether the last Update changed the position.
func (p *Player) Moved() bool { return p.lastMoved }
