package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/absolutebasti/Pac-Man/internal/config"
	"github.com/absolutebasti/Pac-Man/internal/highscore"
	"github.com/absolutebasti/Pac-Man/internal/round"
)

// hudRows is the number of tile rows reserved above and below the maze.
const hudRows = 2

// Game adapts a round to ebiten: it reads input, feeds the round fixed
// time steps and hands the round's events to audio, effects and storage.
type Game struct {
	round   *round.Round
	store   *highscore.Store
	audio   *AudioManager
	effects *Effects

	saved      int
	scale      float64
	fullscreen bool
	debug      bool
	off        *ebiten.Image
}

func New(cfg *config.Config) (*Game, error) {
	store := highscore.NewStore(cfg.HighScoreDir)
	settings := cfg.Tuning.RoundSettings()
	settings.HighScore = store.Load()

	r, err := round.New(settings, round.WithRandom(round.NewRandom(cfg.Seed)))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	jitter := rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	g := &Game{
		round:   r,
		store:   store,
		audio:   NewAudioManager(cfg.SoundsDir, cfg.AudioEnabled),
		effects: NewEffects(jitter.Float64),
		saved:   settings.HighScore,
		debug:   cfg.Debug,
	}

	// Compute initial scale to fit within ~75% of the display area
	nativeW, nativeH := g.nativeSize()
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	g.scale = math.Floor(math.Min(scaleW, scaleH)*4) / 4
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g, nil
}

func (g *Game) nativeSize() (int, int) {
	cols, rows, ts := g.round.Maze().Bounds()
	return cols * ts, (rows + 2*hudRows) * ts
}

func (g *Game) ScreenWidth() int {
	w, _ := g.nativeSize()
	return int(float64(w) * g.scale)
}

func (g *Game) ScreenHeight() int {
	_, h := g.nativeSize()
	return int(float64(h) * g.scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) Update() error {
	in := readInput()
	if in.fullscreen {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	return g.step(in, 1000/float64(ebiten.TPS()))
}

// step runs one frame: input, simulation, then event fan-out.
func (g *Game) step(in intent, dtMs float64) error {
	if in.quit {
		g.persist(g.round.HighScore())
		return ebiten.Termination
	}
	before := g.round.State()
	applyIntent(g.round, in)
	if before == round.StateGameOver && g.round.State() != round.StateGameOver {
		g.effects.Reset()
	}
	g.dispatch(g.round.Update(dtMs))
	g.effects.Update(dtMs)
	return nil
}

func (g *Game) dispatch(events []round.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case round.CuePellet, round.CuePowerPellet, round.CueGhostEaten, round.CuePlayerDied:
			g.audio.Cue(ev.Kind)
		case round.EffectShake, round.EffectScorePopup, round.EffectPowerFlash:
			g.effects.Trigger(ev)
		case round.EventHighScore:
			g.persist(ev.Points)
		case round.EventLevelComplete:
			log.Printf("level %d cleared, score %d", ev.Points, g.round.Score())
		case round.EventGameOver:
			g.persist(g.round.HighScore())
		}
	}
}

// persist writes a new high score. Failures are logged and play goes on.
func (g *Game) persist(score int) {
	if score <= g.saved {
		return
	}
	if err := g.store.Save(score); err != nil {
		log.Printf("highscore: %v", err)
		return
	}
	g.saved = score
}
