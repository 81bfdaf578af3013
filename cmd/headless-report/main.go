package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/absolutebasti/Pac-Man/internal/config"
	"github.com/absolutebasti/Pac-Man/internal/entities"
	"github.com/absolutebasti/Pac-Man/internal/round"
)

type runStats struct {
	runIndex int
	seed     int64

	ticks        int
	score        int
	level        int
	livesLost    int
	pellets      int
	powerPellets int
	ghostsEaten  int
	levelsClear  int
	finalState   round.State

	firstDeathTick int
	firstGhostTick int
}

// traceRun is the msgpack record written by -trace.
type traceRun struct {
	Run     int              `msgpack:"run"`
	Seed    int64            `msgpack:"seed"`
	Entries []round.LogEntry `msgpack:"entries"`
}

func main() {
	var runs int
	var ticks int
	var dt float64
	var seedBase int64
	var seedStep int64
	var tuningPath string
	var tracePath string
	var copyReport bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "ticks per run")
	flag.Float64Var(&dt, "dt", 1000.0/60.0, "milliseconds per tick")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&tuningPath, "tuning", "", "YAML tuning file (defaults when empty)")
	flag.StringVar(&tracePath, "trace", "", "write every run's event log as msgpack to this file")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.BoolVar(&verbose, "v", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if dt <= 0 {
		fmt.Println("error: -dt must be > 0")
		return
	}

	tuning := config.DefaultTuning()
	if tuningPath != "" {
		t, err := config.LoadTuning(tuningPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		tuning = t
	}
	settings := tuning.RoundSettings()

	var report bytes.Buffer
	out := io.MultiWriter(os.Stdout, &report)

	fmt.Fprintf(out, "=== Headless Round Report ===\n")
	fmt.Fprintf(out, "runs=%d ticks=%d dt=%.3fms seed_base=%d seed_step=%d\n\n", runs, ticks, dt, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	traces := make([]traceRun, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, log, err := runOnce(i+1, seed, ticks, dt, settings)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		all = append(all, stats)
		printRun(out, stats)
		if verbose {
			for _, e := range log.Entries() {
				fmt.Fprintln(out, "  "+e.String())
			}
			fmt.Fprintln(out)
		}
		if tracePath != "" {
			traces = append(traces, traceRun{Run: i + 1, Seed: seed, Entries: log.Entries()})
		}
	}

	printAggregate(out, all)

	if tracePath != "" {
		if err := writeTrace(tracePath, traces); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("trace written to %s\n", tracePath)
	}
	if copyReport {
		if err := clipboard.WriteAll(report.String()); err != nil {
			fmt.Printf("warning: clipboard unavailable: %v\n", err)
		} else {
			fmt.Println("report copied to clipboard")
		}
	}
}

func runOnce(runIndex int, seed int64, ticks int, dt float64, settings round.Settings) (runStats, *round.EventLog, error) {
	log := round.NewEventLog()
	r, err := round.New(settings, round.WithRandom(round.NewRandom(seed)), round.WithEventLog(log))
	if err != nil {
		return runStats{}, nil, err
	}
	pilot := newAutopilot(seed)
	r.Confirm()

	stats := runStats{runIndex: runIndex, seed: seed, firstDeathTick: -1, firstGhostTick: -1}
	remaining := r.Maze().Remaining()
	for tick := 1; tick <= ticks; tick++ {
		if r.State() == round.StateGameOver {
			break
		}
		pilot.steer(r)
		for _, ev := range r.Update(dt) {
			switch ev.Kind {
			case round.CuePlayerDied:
				if stats.firstDeathTick < 0 {
					stats.firstDeathTick = tick
				}
			case round.CueGhostEaten:
				if stats.firstGhostTick < 0 {
					stats.firstGhostTick = tick
				}
			}
		}
		// A cleared level refills the maze.
		if now := r.Maze().Remaining(); now < remaining {
			stats.pellets += remaining - now
			remaining = now
		} else if now > remaining {
			stats.pellets += remaining
			remaining = now
		}
		stats.ticks = tick
	}

	stats.score = r.Score()
	stats.level = r.Level()
	stats.finalState = r.State()
	stats.livesLost = log.Count(round.CuePlayerDied)
	stats.powerPellets = log.Count(round.CuePowerPellet)
	stats.ghostsEaten = log.Count(round.CueGhostEaten)
	stats.levelsClear = log.Count(round.EventLevelComplete)
	return stats, log, nil
}

// autopilot wanders the maze: it turns at random when blocked or when its
// countdown runs out, and avoids reversing while it has another way.
type autopilot struct {
	rng       *rand.Rand
	countdown int
}

func newAutopilot(seed int64) *autopilot {
	return &autopilot{rng: rand.New(rand.NewSource(seed * 7919))}
}

func (a *autopilot) steer(r *round.Round) {
	if r.State() != round.StatePlaying {
		return
	}
	p := r.Player()
	a.countdown--
	if p.Moved() && p.CurrentDir != entities.DirNone && a.countdown > 0 {
		return
	}
	if d := a.choose(r.Maze(), p); d != entities.DirNone {
		r.Steer(d)
	}
	a.countdown = 20 + a.rng.Intn(60)
}

func (a *autopilot) choose(m entities.Maze, p *entities.Player) entities.Direction {
	here := p.Tile()
	reverse := p.CurrentDir.Opposite()
	var open []entities.Direction
	for _, d := range []entities.Direction{entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight} {
		if d != reverse && entities.CanEnter(m, here, d, entities.PlayerRules) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		if entities.CanEnter(m, here, reverse, entities.PlayerRules) {
			return reverse
		}
		return entities.DirNone
	}
	return open[a.rng.Intn(len(open))]
}

func writeTrace(path string, traces []traceRun) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer f.Close()
	if err := msgpack.NewEncoder(f).Encode(traces); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return nil
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "outcome: state=%s score=%d level=%d ticks=%d\n", rs.finalState, rs.score, rs.level, rs.ticks)
	fmt.Fprintf(w, "eaten: pellets=%d power_pellets=%d ghosts=%d levels_cleared=%d\n",
		rs.pellets, rs.powerPellets, rs.ghostsEaten, rs.levelsClear)
	fmt.Fprintf(w, "markers: lives_lost=%d first_death=%d first_ghost=%d\n\n",
		rs.livesLost, rs.firstDeathTick, rs.firstGhostTick)
}

func printAggregate(w io.Writer, all []runStats) {
	totalScore := 0
	totalPellets := 0
	totalPower := 0
	totalGhosts := 0
	totalLives := 0
	bestScore := 0
	bestSeed := int64(0)
	deathTicks := make([]int, 0, len(all))
	states := map[string]int{}

	for _, rs := range all {
		totalScore += rs.score
		totalPellets += rs.pellets
		totalPower += rs.powerPellets
		totalGhosts += rs.ghostsEaten
		totalLives += rs.livesLost
		if rs.score > bestScore {
			bestScore, bestSeed = rs.score, rs.seed
		}
		if rs.firstDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.firstDeathTick)
		}
		states[rs.finalState.String()]++
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d\n", len(all))
	fmt.Fprintf(w, "avg_per_run: score=%.1f pellets=%.1f power_pellets=%.1f ghosts=%.1f lives_lost=%.1f\n",
		avg(totalScore, len(all)), avg(totalPellets, len(all)), avg(totalPower, len(all)), avg(totalGhosts, len(all)), avg(totalLives, len(all)))
	fmt.Fprintf(w, "best: score=%d seed=%d\n", bestScore, bestSeed)
	fmt.Fprintf(w, "first_death_avg_tick=%s\n", avgTickString(deathTicks))
	fmt.Fprintf(w, "final_states: %s\n", joinCounts(states))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}
