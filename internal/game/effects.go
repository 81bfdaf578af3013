package game

import "github.com/absolutebasti/Pac-Man/internal/round"

const (
	popupLifeMs   = 1000.0
	popupRise     = 20.0 // pixels over a popup's life
	shakeMs       = 500.0
	shakeStrength = 5.0
	flashMs       = 300.0
)

type popup struct {
	x, y     float64
	points   int
	category round.PopupCategory
	age      float64
}

// alpha fades a popup out over its life.
func (p popup) alpha() float64 { return 1 - p.age/popupLifeMs }

// offsetY lifts the popup as it ages.
func (p popup) offsetY() float64 { return -popupRise * p.age / popupLifeMs }

// Effects renders the round's visual effect triggers and expires them on
// its own clock.
type Effects struct {
	popups []popup
	shake  float64
	flash  float64
	jitter func() float64 // uniform in [0,1)
}

func NewEffects(jitter func() float64) *Effects {
	return &Effects{jitter: jitter}
}

// Trigger starts the effect for ev. Non-effect events are ignored.
func (e *Effects) Trigger(ev round.Event) {
	switch ev.Kind {
	case round.EffectShake:
		e.shake = shakeMs
	case round.EffectPowerFlash:
		e.flash = flashMs
	case round.EffectScorePopup:
		e.popups = append(e.popups, popup{x: ev.X, y: ev.Y, points: ev.Points, category: ev.Category})
	}
}

func (e *Effects) Update(dtMs float64) {
	e.shake = max(e.shake-dtMs, 0)
	e.flash = max(e.flash-dtMs, 0)
	live := e.popups[:0]
	for _, p := range e.popups {
		p.age += dtMs
		if p.age < popupLifeMs {
			live = append(live, p)
		}
	}
	e.popups = live
}

// ShakeOffset is the screen displacement for this frame. It shrinks as the
// shake runs out.
func (e *Effects) ShakeOffset() (dx, dy float64) {
	if e.shake <= 0 || e.jitter == nil {
		return 0, 0
	}
	amp := shakeStrength * e.shake / shakeMs
	return (e.jitter()*2 - 1) * amp, (e.jitter()*2 - 1) * amp
}

// FlashAlpha is the opacity of the power flash overlay.
func (e *Effects) FlashAlpha() float64 { return e.flash / flashMs }

func (e *Effects) activePopups() []popup { return e.popups }

// Reset drops every running effect.
func (e *Effects) Reset() {
	e.popups = e.popups[:0]
	e.shake = 0
	e.flash = 0
}
