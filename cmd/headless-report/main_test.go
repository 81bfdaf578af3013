package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	"github.com/absolutebasti/Pac-Man/internal/round"
)

func TestAvg(t *testing.T) {
	assert.Equal(t, 0.0, avg(10, 0))
	assert.Equal(t, 2.5, avg(10, 4))
}

func TestAvgTickString(t *testing.T) {
	assert.Equal(t, "n/a", avgTickString(nil))
	assert.Equal(t, "15.0", avgTickString([]int{10, 20}))
}

func TestJoinCountsSorted(t *testing.T) {
	assert.Equal(t, "none", joinCounts(nil))
	got := joinCounts(map[string]int{"playing": 2, "game-over": 1})
	assert.Equal(t, "game-over=1,playing=2", got)
}

func TestRunOnceIsDeterministic(t *testing.T) {
	settings := round.DefaultSettings()
	a, logA, err := runOnce(1, 7, 1500, 1000.0/60.0, settings)
	require.NoError(t, err)
	b, logB, err := runOnce(1, 7, 1500, 1000.0/60.0, settings)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, len(logA.Entries()), len(logB.Entries()))
	assert.Positive(t, a.pellets, "autopilot should eat something")
	assert.GreaterOrEqual(t, a.score, a.pellets*10)
}

func TestRunOnceRejectsBadSettings(t *testing.T) {
	settings := round.DefaultSettings()
	settings.Lives = 0
	_, _, err := runOnce(1, 1, 10, 16, settings)
	assert.ErrorIs(t, err, round.ErrInvalidSettings)
}

func TestAutopilotOnlyPicksOpenDirections(t *testing.T) {
	r, err := round.New(round.DefaultSettings())
	require.NoError(t, err)
	pilot := newAutopilot(3)
	p := r.Player()
	for i := 0; i < 50; i++ {
		d := pilot.choose(r.Maze(), p)
		require.NotEqual(t, entities.DirNone, d)
		assert.True(t, entities.CanEnter(r.Maze(), p.Tile(), d, entities.PlayerRules), "picked blocked %s", d)
	}
}

func TestWriteTraceDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.msgpack")
	in := []traceRun{{
		Run:  1,
		Seed: 42,
		Entries: []round.LogEntry{
			{Tick: 3, ClockMs: 48, Event: round.Event{Kind: round.CuePowerPellet, X: 16, Y: 56, Points: 50}},
		},
	}}
	require.NoError(t, writeTrace(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []traceRun
	require.NoError(t, msgpack.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestPrintAggregate(t *testing.T) {
	var buf bytes.Buffer
	printAggregate(&buf, []runStats{
		{seed: 1, score: 100, pellets: 10, finalState: round.StateGameOver, firstDeathTick: 40},
		{seed: 2, score: 300, pellets: 30, finalState: round.StatePlaying, firstDeathTick: -1},
	})
	out := buf.String()
	assert.True(t, strings.Contains(out, "best: score=300 seed=2"), out)
	assert.True(t, strings.Contains(out, "first_death_avg_tick=40.0"), out)
	assert.True(t, strings.Contains(out, "final_states: game-over=1,playing=1"), out)
}
