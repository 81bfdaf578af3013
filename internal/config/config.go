package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/absolutebasti/Pac-Man/internal/highscore"
)

const defaultSoundsDir = "assets/sounds"

// Config is everything the game reads from its environment.
type Config struct {
	HighScoreDir string
	AudioEnabled bool
	SoundsDir    string
	Seed         int64
	Debug        bool
	TuningPath   string
	Tuning       Tuning
}

// Load reads .env files (default ".env" in the working directory) into the
// process environment and then builds the config from it. Variables already
// set in the environment win over the file. A missing file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: ignoring env file: %v", err)
		}
	}
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		SoundsDir: defaultSoundsDir,
		Tuning:    DefaultTuning(),
	}

	if dir, ok := lookup("PACMAN_CONFIG_DIR"); ok && dir != "" {
		cfg.HighScoreDir = dir
	} else {
		dir, err := highscore.DefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.HighScoreDir = dir
	}

	// Audio is off unless enabled; disabling wins.
	cfg.AudioEnabled = envFlag(lookup, "PACMAN_ENABLE_AUDIO") && !envFlag(lookup, "PACMAN_DISABLE_AUDIO")
	cfg.Debug = envFlag(lookup, "PACMAN_DEBUG")

	if dir, ok := lookup("PACMAN_SOUNDS_DIR"); ok && dir != "" {
		cfg.SoundsDir = dir
	}

	cfg.Seed = time.Now().UnixNano()
	if v, ok := lookup("PACMAN_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: PACMAN_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if path, ok := lookup("PACMAN_TUNING"); ok && path != "" {
		t, err := LoadTuning(path)
		if err != nil {
			return nil, err
		}
		cfg.TuningPath = path
		cfg.Tuning = t
	}
	return cfg, nil
}

func envFlag(lookup func(string) (string, bool), key string) bool {
	v, ok := lookup(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
