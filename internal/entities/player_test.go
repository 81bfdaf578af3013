package entities

import "testing"

func TestPlayerBufferedTurnWaitsForOpening(t *testing.T) {
	m := mustMaze(t,
		"#######",
		"#     #",
		"### ###",
		"#     #",
		"#######",
	)
	p := NewPlayer(m, TilePos{1, 1}, 0.1)
	p.SetDirection(DirRight)
	p.Update(16)
	if p.CurrentDir != DirRight {
		t.Fatalf("expected to head right, got %v", p.CurrentDir)
	}

	p.SetDirection(DirDown)
	turned := false
	for i := 0; i < 200 && !turned; i++ {
		p.Update(16)
		if p.CurrentDir == DirDown {
			turned = true
		} else if p.Tile().X != 3 && p.DesiredDir != DirDown {
			t.Fatalf("buffered turn dropped before reaching the opening at %v", p.Tile())
		}
	}
	if !turned {
		t.Fatal("player never took the buffered turn")
	}
	if p.X != center(3) {
		t.Fatalf("turn should re-centre x on column 3, got %v", p.X)
	}
	if p.DesiredDir != DirNone {
		t.Fatalf("buffered direction should be cleared, got %v", p.DesiredDir)
	}
}

func TestPlayerStopsAtWallAndFreezesMouth(t *testing.T) {
	m := mustMaze(t,
		"#######",
		"#     #",
		"#######",
	)
	p := NewPlayer(m, TilePos{1, 1}, 0.1)
	p.SetDirection(DirRight)
	for i := 0; i < 300; i++ {
		p.Update(16)
		if p.MouthAngle < 0 || p.MouthAngle > maxMouthAngle {
			t.Fatalf("mouth angle out of range: %v", p.MouthAngle)
		}
	}
	if p.Tile() != (TilePos{5, 1}) || p.X != center(5) {
		t.Fatalf("expected to rest at centre of tile 5, got %v (x=%v)", p.Tile(), p.X)
	}
	if p.Moved() {
		t.Fatal("player pressed against a wall should not report movement")
	}
	angle := p.MouthAngle
	p.Update(16)
	if p.MouthAngle != angle {
		t.Fatalf("mouth should be frozen when not moving: %v -> %v", angle, p.MouthAngle)
	}
}

func TestPlayerWrapsThroughTunnel(t *testing.T) {
	m := mustMaze(t,
		"######",
		"T    T",
		"######",
	)
	p := NewPlayer(m, TilePos{4, 1}, 0.2)
	p.SetDirection(DirRight)
	width := float64(6 * testTile)
	wrapped := false
	last := p.X
	for i := 0; i < 100; i++ {
		p.Update(16)
		if p.X < last {
			wrapped = true
			break
		}
		last = p.X
	}
	if !wrapped {
		t.Fatal("player never wrapped around")
	}
	if last <= width {
		t.Fatalf("wrap happened before leaving the maze: last x %v", last)
	}
	if p.Y != center(1) {
		t.Fatalf("wrap changed y to %v", p.Y)
	}
}

func TestPlayerResetAndDoorRules(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#   #",
		"##-##",
		"#___#",
		"#####",
	)
	p := NewPlayer(m, TilePos{2, 1}, 0.1)
	p.SetDirection(DirDown)
	for i := 0; i < 20; i++ {
		p.Update(16)
	}
	if p.Tile() != (TilePos{2, 1}) || p.CurrentDir != DirNone {
		t.Fatalf("player must not enter the door, at %v heading %v", p.Tile(), p.CurrentDir)
	}

	p.SetDirection(DirLeft)
	p.Update(16)
	p.Reset()
	if p.Tile() != (TilePos{2, 1}) || p.CurrentDir != DirNone || p.DesiredDir != DirNone {
		t.Fatalf("reset left state behind: %+v", p)
	}
	tx, ty := p.TileCoords()
	if tx != 2 || ty != 1 {
		t.Fatalf("tile coords after reset = %v,%v", tx, ty)
	}
}
