package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/absolutebasti/Pac-Man/internal/entities"
	"github.com/absolutebasti/Pac-Man/internal/round"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// PhaseSpec is one mode schedule entry as written in a tuning file. The
// mode is "scatter" or "chase"; ms is ignored on the last entry.
type PhaseSpec struct {
	Mode entities.Mode `yaml:"mode"`
	Ms   float64       `yaml:"ms,omitempty"`
}

// Tuning holds the gameplay numbers that can be overridden from YAML.
// Speeds are tiles per second, durations milliseconds.
type Tuning struct {
	TileSize       int         `yaml:"tile_size"`
	PlayerSpeed    float64     `yaml:"player_speed"`
	GhostSpeed     float64     `yaml:"ghost_speed"`
	FrightenedMs   float64     `yaml:"frightened_ms"`
	ReadyMs        float64     `yaml:"ready_ms"`
	DeathMs        float64     `yaml:"death_ms"`
	Lives          int         `yaml:"lives"`
	GhostBonus     int         `yaml:"ghost_bonus"`
	PopupChance    float64     `yaml:"popup_chance"`
	WakaIntervalMs float64     `yaml:"waka_interval_ms"`
	Schedule       []PhaseSpec `yaml:"schedule"`
}

// DefaultTuning mirrors round.DefaultSettings.
func DefaultTuning() Tuning {
	s := round.DefaultSettings()
	t := Tuning{
		TileSize:       s.TileSize,
		PlayerSpeed:    s.PlayerSpeed,
		GhostSpeed:     s.GhostSpeed,
		FrightenedMs:   s.FrightenedMs,
		ReadyMs:        s.ReadyMs,
		DeathMs:        s.DeathMs,
		Lives:          s.Lives,
		GhostBonus:     s.GhostBonus,
		PopupChance:    s.PopupChance,
		WakaIntervalMs: s.WakaIntervalMs,
	}
	for _, p := range s.Schedule {
		t.Schedule = append(t.Schedule, PhaseSpec{Mode: p.Mode, Ms: p.DurationMs})
	}
	return t
}

// ReadTuning decodes YAML over the defaults. Unknown keys are rejected.
func ReadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: open tuning: %w", err)
	}
	defer f.Close()
	t, err := ReadTuning(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the tuning through the round settings it produces.
func (t Tuning) Validate() error {
	if err := t.RoundSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTuning, err)
	}
	return nil
}

// RoundSettings converts the tuning into settings for a new round.
func (t Tuning) RoundSettings() round.Settings {
	s := round.DefaultSettings()
	s.TileSize = t.TileSize
	s.PlayerSpeed = t.PlayerSpeed
	s.GhostSpeed = t.GhostSpeed
	s.FrightenedMs = t.FrightenedMs
	s.ReadyMs = t.ReadyMs
	s.DeathMs = t.DeathMs
	s.Lives = t.Lives
	s.GhostBonus = t.GhostBonus
	s.PopupChance = t.PopupChance
	s.WakaIntervalMs = t.WakaIntervalMs
	s.Schedule = make([]round.Phase, 0, len(t.Schedule))
	for _, p := range t.Schedule {
		s.Schedule = append(s.Schedule, round.Phase{Mode: p.Mode, DurationMs: p.Ms})
	}
	return s
}

// YAML renders the tuning in the same format ReadTuning accepts.
func (t Tuning) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
