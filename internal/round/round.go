package round

import (
	"errors"
	"fmt"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	tm "github.com/absolutebasti/Pac-Man/internal/tilemap"
)

// State is the round controller's top-level state.
type State int

const (
	StateStart State = iota
	StateReady
	StatePlaying
	StatePaused
	StateDying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrInvalidSettings = errors.New("invalid round settings")

// Settings configures a round. Speeds are in tiles per second, durations in
// milliseconds.
type Settings struct {
	TileSize       int
	Layout         []string // nil selects the reference maze
	PlayerStart    entities.TilePos
	PlayerSpeed    float64
	GhostSpeed     float64
	FrightenedMs   float64
	ReadyMs        float64
	DeathMs        float64
	Lives          int
	GhostBonus     int
	PopupChance    float64
	WakaIntervalMs float64
	Schedule       []Phase
	HighScore      int
}

func DefaultSettings() Settings {
	return Settings{
		TileSize:       16,
		PlayerStart:    entities.TilePos{X: 14, Y: 23},
		PlayerSpeed:    8,
		GhostSpeed:     9.375,
		FrightenedMs:   6000,
		ReadyMs:        2000,
		DeathMs:        2000,
		Lives:          3,
		GhostBonus:     200,
		PopupChance:    0.3,
		WakaIntervalMs: 150,
		Schedule:       DefaultSchedule(),
	}
}

// Validate reports the first setting that cannot drive a round.
func (s Settings) Validate() error {
	switch {
	case s.TileSize < 4:
		return fmt.Errorf("%w: tile size %d is below 4", ErrInvalidSettings, s.TileSize)
	case s.PlayerSpeed <= 0 || s.GhostSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidSettings)
	case s.FrightenedMs <= 0 || s.ReadyMs <= 0 || s.DeathMs <= 0:
		return fmt.Errorf("%w: durations must be positive", ErrInvalidSettings)
	case s.Lives < 1:
		return fmt.Errorf("%w: need at least one life", ErrInvalidSettings)
	case s.GhostBonus < 0 || s.HighScore < 0:
		return fmt.Errorf("%w: negative points", ErrInvalidSettings)
	case s.PopupChance < 0 || s.PopupChance > 1:
		return fmt.Errorf("%w: popup chance %.2f outside [0,1]", ErrInvalidSettings, s.PopupChance)
	case s.WakaIntervalMs < 0:
		return fmt.Errorf("%w: negative waka interval", ErrInvalidSettings)
	case len(s.Schedule) == 0:
		return fmt.Errorf("%w: empty mode schedule", ErrInvalidSettings)
	}
	for i, p := range s.Schedule {
		if p.Mode != entities.ModeScatter && p.Mode != entities.ModeChase {
			return fmt.Errorf("%w: schedule phase %d has mode %s", ErrInvalidSettings, i, p.Mode)
		}
		if i < len(s.Schedule)-1 && p.DurationMs <= 0 {
			return fmt.Errorf("%w: schedule phase %d needs a positive duration", ErrInvalidSettings, i)
		}
	}
	return nil
}

// pxPerMs converts tiles per second to pixels per millisecond.
func pxPerMs(tilesPerSec float64, tileSize int) float64 {
	return tilesPerSec * float64(tileSize) / 1000
}

type Option func(*Round)

// WithRandom replaces the seeded default random source.
func WithRandom(r RandomSource) Option {
	return func(rd *Round) { rd.rng = r }
}

// WithEventLog records every emitted event into l.
func WithEventLog(l *EventLog) Option {
	return func(rd *Round) { rd.log = l }
}

// Round owns one game: the maze, the actors, the mode schedule and every
// timer and counter. It is driven by Update and never blocks.
type Round struct {
	settings Settings
	maze     *tm.TileMap
	player   *entities.Player
	ghosts   []*entities.Ghost
	schedule *ModeSchedule
	detector Detector
	rng      RandomSource
	log      *EventLog

	state      State
	score      int
	highScore  int
	lives      int
	level      int
	readyTimer float64
	deathTimer float64
	sinceWaka  float64

	tick   int
	clock  float64
	events []Event
}

// New builds a round in the start state.
func New(s Settings, opts ...Option) (*Round, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var maze *tm.TileMap
	if s.Layout == nil {
		maze = tm.NewDefaultMap(s.TileSize)
	} else {
		m, err := tm.Parse(s.Layout, s.TileSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		maze = m
	}

	r := &Round{
		settings:  s,
		maze:      maze,
		schedule:  NewModeSchedule(s.Schedule),
		detector:  NewDetector(s.TileSize),
		highScore: s.HighScore,
	}
	for _, o := range opts {
		o(r)
	}
	if r.rng == nil {
		r.rng = NewRandom(1)
	}

	r.player = entities.NewPlayer(maze, s.PlayerStart, pxPerMs(s.PlayerSpeed, s.TileSize))
	cfg := entities.GhostConfig{
		Speed:        pxPerMs(s.GhostSpeed, s.TileSize),
		FrightenedMs: s.FrightenedMs,
	}
	for _, id := range entities.Identities {
		r.ghosts = append(r.ghosts, entities.NewGhost(id, maze, r.player, r.rng, cfg))
	}
	r.resetGame()
	r.state = StateStart
	return r, nil
}

// Confirm starts the first game from the start screen or a new one after
// game over. It is ignored in every other state.
func (r *Round) Confirm() {
	switch r.state {
	case StateStart:
		r.enterReady()
	case StateGameOver:
		r.resetGame()
		r.enterReady()
	}
}

// TogglePause switches between playing and paused. Timers keep their values.
func (r *Round) TogglePause() {
	switch r.state {
	case StatePlaying:
		r.state = StatePaused
	case StatePaused:
		r.state = StatePlaying
	}
}

// Steer buffers a direction for the player while playing.
func (r *Round) Steer(d entities.Direction) {
	if r.state == StatePlaying {
		r.player.SetDirection(d)
	}
}

// Update advances the round by dtMs milliseconds and returns the events
// emitted during the tick.
func (r *Round) Update(dtMs float64) []Event {
	r.events = nil
	r.tick++

	switch r.state {
	case StateReady:
		r.clock += dtMs
		r.readyTimer -= dtMs
		if r.readyTimer <= 0 {
			r.readyTimer = 0
			r.state = StatePlaying
		}
	case StatePlaying:
		r.clock += dtMs
		r.step(dtMs)
	case StateDying:
		r.clock += dtMs
		r.deathTimer -= dtMs
		if r.deathTimer <= 0 {
			r.deathTimer = 0
			r.resetActors()
			r.enterReady()
		}
	}
	return r.events
}

func (r *Round) step(dtMs float64) {
	r.maze.Update(dtMs)
	r.player.Update(dtMs)
	r.sinceWaka += dtMs

	if p, ok := r.detector.Pellet(r.player, r.maze); ok {
		r.eatPellet(p)
	}
	if r.maze.IsComplete() {
		r.completeLevel()
		return
	}

	r.advanceSchedule(dtMs)
	for _, g := range r.ghosts {
		g.Update(dtMs)
	}
	r.resolveContacts()
}

func (r *Round) eatPellet(p tm.Pellet) {
	r.addScore(p.Points)
	x, y := r.player.Pixel()
	if p.Power {
		for _, g := range r.ghosts {
			g.SetMode(entities.ModeFrightened)
		}
		r.emit(Event{Kind: CuePowerPellet})
		r.emit(Event{Kind: EffectPowerFlash})
		r.emit(Event{Kind: EffectScorePopup, X: x, Y: y, Points: p.Points, Category: PopupPower})
		return
	}
	if r.sinceWaka >= r.settings.WakaIntervalMs {
		r.sinceWaka = 0
		r.emit(Event{Kind: CuePellet})
	}
	if r.rng.Float64() < r.settings.PopupChance {
		r.emit(Event{Kind: EffectScorePopup, X: x, Y: y, Points: p.Points, Category: PopupPellet})
	}
}

// advanceSchedule moves the global mode schedule. Frightened ghosts keep
// their mode when a phase changes.
func (r *Round) advanceSchedule(dtMs float64) {
	mode, changed := r.schedule.Advance(dtMs)
	if !changed {
		return
	}
	for _, g := range r.ghosts {
		if g.Mode != entities.ModeFrightened {
			g.SetMode(mode)
		}
	}
}

// resolveContacts eats every frightened ghost touching the player. The
// first non-frightened contact costs a life and ends the check.
func (r *Round) resolveContacts() {
	for _, g := range r.detector.Contacts(r.player, r.ghosts) {
		if g.Mode == entities.ModeFrightened {
			x, y := g.Pixel()
			r.addScore(r.settings.GhostBonus)
			r.emit(Event{Kind: EffectScorePopup, X: x, Y: y, Points: r.settings.GhostBonus, Category: PopupGhost})
			r.emit(Event{Kind: CueGhostEaten, Points: r.settings.GhostBonus})
			g.Reset()
			continue
		}
		r.loseLife()
		return
	}
}

func (r *Round) loseLife() {
	r.lives--
	r.emit(Event{Kind: EffectShake})
	r.emit(Event{Kind: CuePlayerDied})
	if r.lives <= 0 {
		r.lives = 0
		r.state = StateGameOver
		r.emit(Event{Kind: EventGameOver, Points: r.score})
		return
	}
	r.deathTimer = r.settings.DeathMs
	r.state = StateDying
}

func (r *Round) completeLevel() {
	r.emit(Event{Kind: EventLevelComplete, Points: r.level})
	r.level++
	r.maze.Reset()
	r.resetActors()
	r.enterReady()
}

func (r *Round) addScore(n int) {
	r.score += n
	if r.score > r.highScore {
		r.highScore = r.score
		r.emit(Event{Kind: EventHighScore, Points: r.highScore})
	}
}

func (r *Round) emit(ev Event) {
	r.events = append(r.events, ev)
	if r.log != nil {
		r.log.Add(r.tick, r.clock, ev)
	}
}

func (r *Round) enterReady() {
	r.readyTimer = r.settings.ReadyMs
	r.state = StateReady
}

// resetActors puts the player and ghosts back on their start tiles and
// rewinds the mode schedule.
func (r *Round) resetActors() {
	r.player.Reset()
	for _, g := range r.ghosts {
		g.Reset()
	}
	r.schedule.Reset()
	r.sinceWaka = r.settings.WakaIntervalMs
}

func (r *Round) resetGame() {
	r.score = 0
	r.lives = r.settings.Lives
	r.level = 1
	r.deathTimer = 0
	r.maze.Reset()
	r.resetActors()
}

func (r *Round) State() State { return r.state }

func (r *Round) Score() int { return r.score }

// HighScore is the best of the stored high score and the running score.
func (r *Round) HighScore() int { return r.highScore }

func (r *Round) Lives() int { return r.lives }

func (r *Round) Level() int { return r.level }

// ScheduleMode is the mode the global schedule currently prescribes.
func (r *Round) ScheduleMode() entities.Mode { return r.schedule.Mode() }

func (r *Round) Maze() *tm.TileMap { return r.maze }

func (r *Round) Player() *entities.Player { return r.player }

func (r *Round) Ghosts() []*entities.Ghost { return r.ghosts }

// Tick is the number of Update calls so far.
func (r *Round) Tick() int { return r.tick }

// PlayClockMs is the time spent in the ready, playing and dying states.
// Event log timestamps use it.
func (r *Round) PlayClockMs() float64 { return r.clock }

// DeathProgress runs from 0 to 1 while dying and is 0 otherwise.
func (r *Round) DeathProgress() float64 {
	if r.state != StateDying {
		return 0
	}
	return 1 - r.deathTimer/r.settings.DeathMs
}
