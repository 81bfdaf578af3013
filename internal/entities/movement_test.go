package entities

import (
	"math"
	"testing"
)

func TestTileIndexRounding(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{px: 8, want: 0},
		{px: 15.9, want: 0},
		{px: 16, want: 1}, // halfway rounds up
		{px: 24, want: 1},
		{px: -8, want: -1},
		{px: -16, want: -1},
		{px: -16.1, want: -2},
	}
	for _, tc := range tests {
		if got := TileIndex(tc.px, testTile); got != tc.want {
			t.Errorf("TileIndex(%v) = %d, want %d", tc.px, got, tc.want)
		}
	}
}

func TestWrapTunnelIsItsOwnInverse(t *testing.T) {
	m := mustMaze(t,
		"######",
		"T    T",
		"######",
	)
	width := float64(6 * testTile)
	for _, start := range []float64{width - 4, width - testTile, 5, -testTile / 2} {
		for _, travel := range []float64{2 * testTile, 3.5 * testTile} {
			x := WrapTunnel(start+travel, m)
			x = WrapTunnel(x-travel, m)
			if d := math.Mod(x-start, width); math.Abs(d) > 1e-9 {
				t.Fatalf("start %v travel %v: ended at %v (offset %v)", start, travel, x, d)
			}
			x = WrapTunnel(start-travel, m)
			x = WrapTunnel(x+travel, m)
			if d := math.Mod(x-start, width); math.Abs(d) > 1e-9 {
				t.Fatalf("start %v travel -%v: ended at %v (offset %v)", start, travel, x, d)
			}
		}
	}
	if got := WrapTunnel(width+testTile+3, m); got != testTile+3 {
		t.Fatalf("right wrap = %v, want %v", got, testTile+3)
	}
	if got := WrapTunnel(-testTile-3, m); got != width-testTile-3 {
		t.Fatalf("left wrap = %v, want %v", got, width-testTile-3)
	}
	if got := WrapTunnel(width+2, m); got != width+2 {
		t.Fatalf("inside the margin should not wrap, got %v", got)
	}
}

func TestPlayerStepBlockedSnapsToCenter(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#   #",
		"#####",
	)
	r := Resolver{Maze: m}
	x, y, moved := r.Step(center(1)+0.5, center(1), DirLeft, 2, PlayerRules)
	if moved {
		t.Fatal("expected move into wall to be rejected")
	}
	if x != center(1) || y != center(1) {
		t.Fatalf("expected snap to tile centre, got %v,%v", x, y)
	}

	x, _, moved = r.Step(center(1), center(1), DirRight, 2, PlayerRules)
	if !moved || x != center(1)+2 {
		t.Fatalf("expected free move, got moved=%v x=%v", moved, x)
	}
}

func TestPlayerHitboxCannotClipCorners(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#   #",
		"# ###",
		"#####",
	)
	r := Resolver{Maze: m}
	// Three pixels off the row centre, the lower corners reach row 2 where
	// tile (2,2) is wall.
	_, _, moved := r.Step(center(1)+4, center(1)+3, DirRight, 1, PlayerRules)
	if moved {
		t.Fatal("hitbox overlapping a wall corner should block the move")
	}
}

func TestGhostStepStopsAtTileCenter(t *testing.T) {
	m := mustMaze(t,
		"#######",
		"#     #",
		"#######",
	)
	r := Resolver{Maze: m}
	x, y, moved := r.Step(center(1)+10, center(1), DirRight, 20, GhostRules)
	if !moved {
		t.Fatal("expected move")
	}
	if x != center(2) || y != center(1) {
		t.Fatalf("expected clamp at centre of tile 2, got %v,%v", x, y)
	}
	x, _, _ = r.Step(center(3), center(1), DirLeft, 4, GhostRules)
	if x != center(3)-4 {
		t.Fatalf("leaving a centre should not clamp, got %v", x)
	}
}

func TestGhostStepRejectsWallAhead(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#   #",
		"#####",
	)
	r := Resolver{Maze: m}
	x, _, moved := r.Step(center(3), center(1), DirRight, 2, GhostRules)
	if moved || x != center(3) {
		t.Fatalf("expected rejection at dead end, moved=%v x=%v", moved, x)
	}
	// Approaching the last centre is still allowed.
	x, _, moved = r.Step(center(3)-5, center(1), DirRight, 2, GhostRules)
	if !moved || x != center(3)-3 {
		t.Fatalf("expected approach, moved=%v x=%v", moved, x)
	}
}

func TestDoorIsGhostOnly(t *testing.T) {
	m := mustMaze(t,
		"###",
		"# #",
		"#-#",
		"#_#",
		"###",
	)
	r := Resolver{Maze: m}
	if _, _, moved := r.Step(center(1), center(1), DirDown, 2, GhostRules); !moved {
		t.Fatal("ghost should pass the door")
	}
	if _, _, moved := r.Step(center(1), center(1), DirDown, 2, PlayerRules); moved {
		t.Fatal("player should not pass the door")
	}
	if !CanEnter(m, TilePos{1, 1}, DirDown, GhostRules) || CanEnter(m, TilePos{1, 1}, DirDown, PlayerRules) {
		t.Fatal("CanEnter disagrees with door rules")
	}
	if CanEnter(m, TilePos{1, 1}, DirNone, GhostRules) {
		t.Fatal("no direction never enters")
	}
}
