package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	"github.com/absolutebasti/Pac-Man/internal/round"
	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

const glyphW = 7 // basicfont.Face7x13 advance

var (
	wallColor       = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	doorColor       = color.RGBA{R: 255, G: 184, B: 255, A: 255}
	pelletColor     = color.RGBA{R: 255, G: 184, B: 151, A: 255}
	playerColor     = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	frightenedColor = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	pupilColor      = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	readyColor      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	gameOverColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	hintColor       = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	ghostColors = [...]color.RGBA{
		entities.Blinky: {R: 255, G: 0, B: 0, A: 255},
		entities.Pinky:  {R: 255, G: 184, B: 255, A: 255},
		entities.Inky:   {R: 0, G: 255, B: 255, A: 255},
		entities.Clyde:  {R: 255, G: 184, B: 82, A: 255},
	}

	popupColors = [...]color.RGBA{
		round.PopupPellet: {R: 255, G: 255, B: 255, A: 255},
		round.PopupPower:  {R: 255, G: 184, B: 255, A: 255},
		round.PopupGhost:  {R: 0, G: 255, B: 255, A: 255},
	}
)

// whiteSubImage is the 1x1 source for filled paths, created on first use.
var whiteSubImage *ebiten.Image

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Use an offscreen image at native resolution then scale up
	nativeW, nativeH := g.nativeSize()
	if g.off == nil {
		g.off = ebiten.NewImage(nativeW, nativeH)
	}
	off := g.off
	off.Clear()

	snap := g.round.Snapshot()
	top := float32(hudRows * snap.Maze.TileSize)

	drawMaze(off, snap.Maze, top)
	for _, gv := range snap.Ghosts {
		drawGhost(off, gv, snap.Maze.TileSize, top)
	}
	if snap.State != round.StateGameOver {
		drawPlayer(off, snap.Player, snap.Maze.TileSize, top)
	}
	g.drawPopups(off, top)
	drawHUD(off, snap, nativeW, nativeH)
	drawOverlay(off, snap, nativeW, top)

	if a := g.effects.FlashAlpha(); a > 0 {
		vector.DrawFilledRect(off, 0, 0, float32(nativeW), float32(nativeH), color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 160)}, false)
	}

	op := &ebiten.DrawImageOptions{}
	dx, dy := g.effects.ShakeOffset()
	op.GeoM.Translate(dx, dy)
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  tick: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.round.Tick()))
	}
}

func drawMaze(dst *ebiten.Image, m round.MazeView, top float32) {
	ts := float32(m.TileSize)
	wall := func(x, y int) bool {
		if x < 0 || x >= m.Cols || y < 0 || y >= m.Rows {
			return true
		}
		return m.Tiles[y][x] == tm.TileWall
	}
	inset := ts / 4

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			px := float32(x) * ts
			py := top + float32(y)*ts
			cx := px + ts/2
			cy := py + ts/2

			switch m.Tiles[y][x] {
			case tm.TileWall:
				// Outline only the faces that border a corridor.
				if !wall(x, y-1) {
					vector.StrokeLine(dst, px, py+inset, px+ts, py+inset, 2, wallColor, true)
				}
				if !wall(x, y+1) {
					vector.StrokeLine(dst, px, py+ts-inset, px+ts, py+ts-inset, 2, wallColor, true)
				}
				if !wall(x-1, y) {
					vector.StrokeLine(dst, px+inset, py, px+inset, py+ts, 2, wallColor, true)
				}
				if !wall(x+1, y) {
					vector.StrokeLine(dst, px+ts-inset, py, px+ts-inset, py+ts, 2, wallColor, true)
				}
			case tm.TileDoor:
				vector.DrawFilledRect(dst, px, cy-1, ts, 3, doorColor, false)
			case tm.TilePellet:
				vector.DrawFilledCircle(dst, cx, cy, ts/8, pelletColor, true)
			case tm.TilePower:
				if !m.PowerBlink {
					vector.DrawFilledCircle(dst, cx, cy, ts/3, pelletColor, true)
				}
			}
		}
	}
}

// facingAngle is the screen angle of a direction; y grows downwards.
func facingAngle(d entities.Direction) float64 {
	switch d {
	case entities.DirDown:
		return math.Pi / 2
	case entities.DirLeft:
		return math.Pi
	case entities.DirUp:
		return -math.Pi / 2
	}
	return 0
}

func drawPlayer(dst *ebiten.Image, p round.PlayerView, tileSize int, top float32) {
	r := float32(tileSize)/2 - 1
	x, y := float32(p.X), top+float32(p.Y)
	mouth := p.MouthAngle
	if !p.Alive {
		// The mouth opens all the way round as the death plays out.
		mouth += (math.Pi - mouth) * p.DeathProgress
		if mouth >= math.Pi-0.01 {
			return
		}
	}
	if mouth <= 0.01 {
		vector.DrawFilledCircle(dst, x, y, r, playerColor, true)
		return
	}
	fillWedge(dst, x, y, r, facingAngle(p.Dir), mouth, playerColor)
}

// fillWedge draws a disc with a wedge of half-angle mouth cut out around
// angle facing.
func fillWedge(dst *ebiten.Image, x, y, r float32, facing, mouth float64, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(x, y)
	path.Arc(x, y, r, float32(facing+mouth), float32(facing+2*math.Pi-mouth), vector.Clockwise)
	path.Close()
	fillPath(dst, &path, clr)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	dst.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawGhost(dst *ebiten.Image, gv round.GhostView, tileSize int, top float32) {
	r := float32(tileSize)/2 - 1
	x, y := float32(gv.X), top+float32(gv.Y)

	body := ghostColors[gv.Identity]
	scared := gv.Mode == entities.ModeFrightened
	if scared {
		body = frightenedColor
		if gv.Flashing {
			body = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
	}

	// Dome, skirt and three feet that shuffle with the animation frame.
	vector.DrawFilledCircle(dst, x, y-1, r, body, true)
	vector.DrawFilledRect(dst, x-r, y-1, 2*r, r-1, body, false)
	foot := r / 3
	shift := float32(gv.Frame) * foot
	for i := 0; i < 3; i++ {
		fx := x - r + foot + shift + float32(i)*2*foot
		if fx > x+r {
			fx -= 2 * r
		}
		vector.DrawFilledCircle(dst, fx, y+r-2, foot, body, true)
	}

	if scared {
		face := color.RGBA{R: 255, G: 184, B: 151, A: 255}
		if gv.Flashing {
			face = gameOverColor
		}
		vector.DrawFilledRect(dst, x-r/2-1, y-r/3, 2, 2, face, false)
		vector.DrawFilledRect(dst, x+r/2-1, y-r/3, 2, 2, face, false)
		vector.StrokeLine(dst, x-r/2, y+r/3, x+r/2, y+r/3, 1, face, true)
		return
	}

	dx, dy := entities.DirDelta(gv.Dir)
	for _, side := range []float32{-1, 1} {
		ex, ey := x+side*r/2.5, y-r/4
		vector.DrawFilledCircle(dst, ex, ey, r/3, color.White, true)
		vector.DrawFilledCircle(dst, ex+float32(dx)*r/6, ey+float32(dy)*r/6, r/6, pupilColor, true)
	}
}

func (g *Game) drawPopups(dst *ebiten.Image, top float32) {
	for _, p := range g.effects.activePopups() {
		c := popupColors[p.category]
		a := p.alpha()
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * a)}
		s := fmt.Sprintf("+%d", p.points)
		x := int(p.x) - len(s)*glyphW/2
		y := int(top) + int(p.y+p.offsetY())
		text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
	}
}

func drawHUD(dst *ebiten.Image, snap round.Snapshot, w, h int) {
	ts := snap.Maze.TileSize
	text.Draw(dst, fmt.Sprintf("SCORE %d", snap.Score), basicfont.Face7x13, 4, ts+4, color.White)
	hi := fmt.Sprintf("HIGH %d", snap.HighScore)
	text.Draw(dst, hi, basicfont.Face7x13, w-len(hi)*glyphW-4, ts+4, color.White)

	// Remaining lives as small runners along the bottom edge.
	r := float32(ts)/2 - 2
	by := float32(h) - float32(ts)
	for i := 0; i < snap.Lives; i++ {
		fillWedge(dst, float32(ts)+float32(i)*float32(ts)*1.5, by, r, math.Pi, 0.4, playerColor)
	}
	lvl := fmt.Sprintf("LEVEL %d", snap.Level)
	text.Draw(dst, lvl, basicfont.Face7x13, w-len(lvl)*glyphW-4, h-ts+4, color.White)
}

func drawOverlay(dst *ebiten.Image, snap round.Snapshot, w int, top float32) {
	ts := snap.Maze.TileSize
	// Row below the ghost house, where the arcade prints READY!.
	msgY := int(top) + 17*ts + ts - 3
	center := func(s string, y int, clr color.Color) {
		text.Draw(dst, s, basicfont.Face7x13, (w-len(s)*glyphW)/2, y, clr)
	}
	switch snap.State {
	case round.StateStart:
		center("PRESS SPACE TO START", msgY, readyColor)
	case round.StateReady:
		center("READY!", msgY, readyColor)
	case round.StatePaused:
		center("PAUSED", msgY, color.White)
		center("P OR SPACE TO RESUME", msgY+2*ts, hintColor)
	case round.StateGameOver:
		center("GAME OVER", msgY, gameOverColor)
		center("SPACE TO PLAY AGAIN", msgY+2*ts, hintColor)
	}
}
