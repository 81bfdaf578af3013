package highscore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	configDirName   = "pacman"
	highScoreTxtFN  = "highscore.txt"  // legacy
	highScoreJSONFN = "highscore.json" // current
)

var ErrNegativeScore = errors.New("score must be non-negative")

// Record is the on-disk form of the high score.
type Record struct {
	Name  string `json:"name,omitempty"`
	Score int    `json:"score"`
}

// DefaultDir is UserConfigDir()/pacman.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("highscore: locate config dir: %w", err)
	}
	return filepath.Join(base, configDirName), nil
}

// Store persists a single high score in Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file the score is written to.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, highScoreJSONFN)
}

// Load reads the persisted high score. JSON is preferred, the legacy text
// file is the fallback. Returns 0 if nothing usable is found.
func (s *Store) Load() int {
	if rec, ok := s.loadJSON(); ok {
		return rec.Score
	}
	if n, ok := s.loadLegacy(); ok {
		return n
	}
	return 0
}

// Save writes score unless a higher one is already stored. The file is
// replaced atomically. An old leaderboard array is collapsed into a single
// record that keeps the best entry's name.
func (s *Store) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	if current := s.Load(); current > score {
		return nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("highscore: create %s: %w", s.Dir, err)
	}
	prev, _ := s.loadJSON()
	data, err := json.MarshalIndent(Record{Name: prev.Name, Score: score}, "", "  ")
	if err != nil {
		return err
	}
	path := s.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("highscore: write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("highscore: replace: %w", err)
	}
	return nil
}

// loadJSON accepts a single record or a leaderboard array, in which case the
// best entry wins.
func (s *Store) loadJSON() (Record, bool) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return Record{}, false
	}
	var arr []Record
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) == 0 {
			return Record{}, false
		}
		best := arr[0]
		for _, r := range arr[1:] {
			if r.Score > best.Score {
				best = r
			}
		}
		return best, best.Score >= 0
	}
	var obj Record
	if err := json.Unmarshal(data, &obj); err == nil && obj.Score >= 0 {
		return obj, true
	}
	return Record{}, false
}

func (s *Store) loadLegacy() (int, bool) {
	f, err := os.Open(filepath.Join(s.Dir, highScoreTxtFN))
	if err != nil {
		return 0, false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
