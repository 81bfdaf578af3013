package entities

import "fmt"

// Identity names one of the four ghosts. Each has a home tile, a scatter
// corner and its own chase rule; everything else is shared.
type Identity int

const (
	Blinky Identity = iota // direct chaser
	Pinky                  // ambusher
	Inky                   // flanker
	Clyde                  // shy
)

// Identities lists every ghost in spawn order.
var Identities = [...]Identity{Blinky, Pinky, Inky, Clyde}

const (
	ambushLead = 4
	shyRadius  = 8.0
)

// Situation is the input to a chase rule.
type Situation struct {
	Player    TilePos
	PlayerDir Direction
	Self      TilePos
	Scatter   TilePos
}

// TargetFunc maps a situation to a target tile.
type TargetFunc func(Situation) TilePos

type profile struct {
	name    string
	home    TilePos
	scatter TilePos
	chase   TargetFunc
}

var profiles = [...]profile{
	Blinky: {name: "blinky", home: TilePos{14, 11}, scatter: TilePos{25, 0}, chase: chaseDirect},
	Pinky:  {name: "pinky", home: TilePos{14, 14}, scatter: TilePos{2, 0}, chase: chaseAmbush},
	Inky:   {name: "inky", home: TilePos{12, 14}, scatter: TilePos{27, 30}, chase: chaseFlank},
	Clyde:  {name: "clyde", home: TilePos{16, 14}, scatter: TilePos{0, 30}, chase: chaseShy},
}

func (id Identity) valid() bool { return id >= 0 && int(id) < len(profiles) }

func (id Identity) String() string {
	if !id.valid() {
		return fmt.Sprintf("ghost(%d)", int(id))
	}
	return profiles[id].name
}

// Home is the tile the ghost starts on and returns to when reset.
func (id Identity) Home() TilePos { return profiles[id].home }

// ScatterCorner is the fixed target used in scatter mode.
func (id Identity) ScatterCorner() TilePos { return profiles[id].scatter }

// Chase applies the identity's chase rule.
func (id Identity) Chase(s Situation) TilePos { return profiles[id].chase(s) }

func chaseDirect(s Situation) TilePos {
	return s.Player
}

func chaseAmbush(s Situation) TilePos {
	if s.PlayerDir == DirNone {
		return s.Player
	}
	return s.Player.Add(s.PlayerDir, ambushLead)
}

// chaseFlank mirrors the ghost's own tile through the player. This stands in
// for the two-ghost vector of the arcade original.
func chaseFlank(s Situation) TilePos {
	return TilePos{X: s.Player.X*2 - s.Self.X, Y: s.Player.Y*2 - s.Self.Y}
}

func chaseShy(s Situation) TilePos {
	if s.Self.Dist(s.Player) > shyRadius {
		return s.Player
	}
	return s.Scatter
}
