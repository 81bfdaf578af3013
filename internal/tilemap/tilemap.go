package tilemap

import "fmt"

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
	TileDoor
	TileHouse
	TileTunnel
)

const (
	PelletPoints      = 10
	PowerPelletPoints = 50

	// blinkIntervalMs is how long power pellets stay in one blink phase.
	blinkIntervalMs = 200.0
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePellet:
		return "pellet"
	case TilePower:
		return "power"
	case TileDoor:
		return "door"
	case TileHouse:
		return "house"
	case TileTunnel:
		return "tunnel"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// Pellet describes a pellet that was just eaten.
type Pellet struct {
	Points int
	Power  bool
}

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile

	source     [][]Tile
	remaining  int
	blink      bool
	blinkTimer float64
}

// NewDefaultMap builds the reference maze.
func NewDefaultMap(tileSize int) *TileMap {
	m, err := Parse(defaultMaze, tileSize)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse builds a map from text rows using the legend documented on defaultMaze.
// All rows must have the same length.
func Parse(lines []string, tileSize int) (*TileMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("tilemap: empty layout")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: tile size must be positive, got %d", tileSize)
	}
	grid, err := parseMaze(lines)
	if err != nil {
		return nil, err
	}
	m := &TileMap{
		Width:    len(grid[0]),
		Height:   len(grid),
		TileSize: tileSize,
		source:   grid,
	}
	m.Reset()
	return m, nil
}

// Reset restores the original layout and pellet count.
func (m *TileMap) Reset() {
	m.Tiles = cloneGrid(m.source)
	m.remaining = countPellets(m.Tiles)
}

// Bounds reports the grid size in tiles and the tile edge in pixels.
func (m *TileMap) Bounds() (cols, rows, tileSize int) {
	return m.Width, m.Height, m.TileSize
}

// TileAt returns the tile at a grid cell. Rows outside the map read as wall;
// columns wrap around so the tunnel connects both edges.
func (m *TileMap) TileAt(x, y int) Tile {
	if y < 0 || y >= m.Height {
		return TileWall
	}
	return m.Tiles[y][m.wrapX(x)]
}

func (m *TileMap) IsWall(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// CanTraverse reports whether an actor may enter the cell. Only ghosts pass
// through the house door.
func (m *TileMap) CanTraverse(x, y int, ghost bool) bool {
	switch m.TileAt(x, y) {
	case TileWall:
		return false
	case TileDoor:
		return ghost
	default:
		return true
	}
}

// EatPelletAt removes a pellet or power pellet at the grid cell.
// It reports false when the cell holds nothing edible.
func (m *TileMap) EatPelletAt(x, y int) (Pellet, bool) {
	if y < 0 || y >= m.Height {
		return Pellet{}, false
	}
	x = m.wrapX(x)
	switch m.Tiles[y][x] {
	case TilePellet:
		m.Tiles[y][x] = TileEmpty
		m.remaining--
		return Pellet{Points: PelletPoints}, true
	case TilePower:
		m.Tiles[y][x] = TileEmpty
		m.remaining--
		return Pellet{Points: PowerPelletPoints, Power: true}, true
	}
	return Pellet{}, false
}

func (m *TileMap) Remaining() int { return m.remaining }

func (m *TileMap) IsComplete() bool { return m.remaining == 0 }

// Update advances the power pellet blink.
func (m *TileMap) Update(dtMs float64) {
	m.blinkTimer += dtMs
	if m.blinkTimer >= blinkIntervalMs {
		m.blinkTimer = 0
		m.blink = !m.blink
	}
}

// PowerBlink is true while power pellets are in their hidden phase.
func (m *TileMap) PowerBlink() bool { return m.blink }

func (m *TileMap) wrapX(x int) int {
	x %= m.Width
	if x < 0 {
		x += m.Width
	}
	return x
}

func parseMaze(lines []string) ([][]Tile, error) {
	h := len(lines)
	w := len(lines[0])
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		if len(lines[y]) != w {
			return nil, fmt.Errorf("tilemap: row %d has width %d, want %d", y, len(lines[y]), w)
		}
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			switch lines[y][x] {
			case '#':
				grid[y][x] = TileWall
			case '.':
				grid[y][x] = TilePellet
			case 'o':
				grid[y][x] = TilePower
			case '-':
				grid[y][x] = TileDoor
			case '_':
				grid[y][x] = TileHouse
			case 'T':
				grid[y][x] = TileTunnel
			case ' ':
				grid[y][x] = TileEmpty
			default:
				return nil, fmt.Errorf("tilemap: unknown tile %q at %d,%d", lines[y][x], x, y)
			}
		}
	}
	return grid, nil
}

func cloneGrid(src [][]Tile) [][]Tile {
	out := make([][]Tile, len(src))
	for y := range src {
		out[y] = append([]Tile(nil), src[y]...)
	}
	return out
}

func countPellets(grid [][]Tile) int {
	n := 0
	for _, row := range grid {
		for _, t := range row {
			if t == TilePellet || t == TilePower {
				n++
			}
		}
	}
	return n
}
