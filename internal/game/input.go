package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	"github.com/absolutebasti/Pac-Man/internal/round"
)

// intent is one frame of player input, independent of the device.
type intent struct {
	dir        entities.Direction
	space      bool // confirm or pause depending on state
	confirm    bool
	pause      bool
	fullscreen bool
	quit       bool
}

var steerKeys = []struct {
	keys []ebiten.Key
	dir  entities.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, entities.DirUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, entities.DirDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, entities.DirLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, entities.DirRight},
}

func readInput() intent {
	var in intent
	for _, s := range steerKeys {
		for _, k := range s.keys {
			if ebiten.IsKeyPressed(k) {
				in.dir = s.dir
				break
			}
		}
		if in.dir != entities.DirNone {
			break
		}
	}
	in.space = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

// controller is the part of a round the input drives.
type controller interface {
	State() round.State
	Steer(entities.Direction)
	Confirm()
	TogglePause()
}

// applyIntent forwards input to the round. Space starts or restarts the
// game on the start and game over screens and pauses during play.
func applyIntent(c controller, in intent) {
	if in.dir != entities.DirNone {
		c.Steer(in.dir)
	}
	if in.space {
		switch c.State() {
		case round.StateStart, round.StateGameOver:
			c.Confirm()
		case round.StatePlaying, round.StatePaused:
			c.TogglePause()
		}
	}
	if in.confirm {
		c.Confirm()
	}
	if in.pause {
		c.TogglePause()
	}
}
