package round

import (
	"github.com/absolutebasti/Pac-Man/internal/entities"
	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

// MazeView is the drawable part of the grid. Tiles aliases the live grid and
// must not be modified.
type MazeView struct {
	Cols, Rows int
	TileSize   int
	Tiles      [][]tm.Tile
	PowerBlink bool
}

type PlayerView struct {
	X, Y          float64
	Dir           entities.Direction
	MouthAngle    float64
	Alive         bool
	DeathProgress float64
}

type GhostView struct {
	Identity entities.Identity
	X, Y     float64
	Dir      entities.Direction
	Mode     entities.Mode
	Frame    int
	Flashing bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	Lives     int
	Level     int
	Maze      MazeView
	Player    PlayerView
	Ghosts    []GhostView
}

func (r *Round) Snapshot() Snapshot {
	cols, rows, ts := r.maze.Bounds()
	s := Snapshot{
		State:     r.state,
		Score:     r.score,
		HighScore: r.highScore,
		Lives:     r.lives,
		Level:     r.level,
		Maze: MazeView{
			Cols:       cols,
			Rows:       rows,
			TileSize:   ts,
			Tiles:      r.maze.Tiles,
			PowerBlink: r.maze.PowerBlink(),
		},
		Player: PlayerView{
			X:             r.player.X,
			Y:             r.player.Y,
			Dir:           r.player.CurrentDir,
			MouthAngle:    r.player.MouthAngle,
			Alive:         r.state != StateDying && r.state != StateGameOver,
			DeathProgress: r.DeathProgress(),
		},
		Ghosts: make([]GhostView, 0, len(r.ghosts)),
	}
	for _, g := range r.ghosts {
		s.Ghosts = append(s.Ghosts, GhostView{
			Identity: g.Identity,
			X:        g.X,
			Y:        g.Y,
			Dir:      g.CurrentDir,
			Mode:     g.Mode,
			Frame:    g.Frame,
			Flashing: g.Flashing(),
		})
	}
	return s
}
