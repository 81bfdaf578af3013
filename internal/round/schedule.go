package round

import "github.com/absolutebasti/Pac-Man/internal/entities"

// Phase is one entry of the scatter/chase schedule.
type Phase struct {
	Mode       entities.Mode
	DurationMs float64
}

// DefaultSchedule alternates scatter and chase, ending in permanent chase.
func DefaultSchedule() []Phase {
	return []Phase{
		{Mode: entities.ModeScatter, DurationMs: 7000},
		{Mode: entities.ModeChase, DurationMs: 20000},
		{Mode: entities.ModeScatter, DurationMs: 7000},
		{Mode: entities.ModeChase, DurationMs: 20000},
		{Mode: entities.ModeScatter, DurationMs: 5000},
		{Mode: entities.ModeChase, DurationMs: 20000},
		{Mode: entities.ModeScatter, DurationMs: 5000},
		{Mode: entities.ModeChase},
	}
}

// ModeSchedule tracks the position in the global mode schedule. The last
// phase never ends; its duration is ignored.
type ModeSchedule struct {
	phases  []Phase
	index   int
	elapsed float64
}

func NewModeSchedule(phases []Phase) *ModeSchedule {
	return &ModeSchedule{phases: append([]Phase(nil), phases...)}
}

// Mode is the mode of the current phase.
func (s *ModeSchedule) Mode() entities.Mode { return s.phases[s.index].Mode }

func (s *ModeSchedule) Index() int { return s.index }

func (s *ModeSchedule) ElapsedMs() float64 { return s.elapsed }

// Advance accumulates play time and reports the new mode when a phase
// boundary was crossed. Leftover time carries into the next phase.
func (s *ModeSchedule) Advance(dtMs float64) (entities.Mode, bool) {
	last := len(s.phases) - 1
	if s.index == last {
		return s.Mode(), false
	}
	s.elapsed += dtMs
	changed := false
	for s.index < last && s.elapsed >= s.phases[s.index].DurationMs {
		s.elapsed -= s.phases[s.index].DurationMs
		s.index++
		changed = true
	}
	if s.index == last {
		s.elapsed = 0
	}
	return s.Mode(), changed
}

// Reset rewinds to the first phase.
func (s *ModeSchedule) Reset() {
	s.index = 0
	s.elapsed = 0
}
