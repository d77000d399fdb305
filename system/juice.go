package system

import (
	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
)

// JuiceSystem manages the lifecycle of hit markers
type JuiceSystem struct {
	effects []component.JuiceComponent
}

func NewJuiceSystem() *JuiceSystem {
	return &JuiceSystem{}
}

func (s *JuiceSystem) Name() string {
	return "juice"
}

func (s *JuiceSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFrameTick,
		event.EventGameReset,
	}
}

func (s *JuiceSystem) HandleEvent(_ *engine.Game, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFrameTick:
		s.decay()
	case event.EventGameReset:
		s.effects = s.effects[:0]
	}
}

// Spawn creates a marker at full lifetime
func (s *JuiceSystem) Spawn(x, y float64) {
	s.effects = append(s.effects, component.JuiceComponent{
		X:     x,
		Y:     y,
		Rune:  component.JuiceRune,
		Timer: parameter.JuiceLifetimeTicks,
	})
}

// decay ages every marker by one tick and drops expired ones
func (s *JuiceSystem) decay() {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Timer--
		if e.Timer <= 0 {
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
}

// Len returns the number of live markers
func (s *JuiceSystem) Len() int {
	return len(s.effects)
}

func (s *JuiceSystem) Contribute(snap *engine.Snapshot) {
	snap.Effects = make([]engine.EffectView, len(s.effects))
	for i, e := range s.effects {
		snap.Effects[i] = engine.EffectView{
			X:    e.X,
			Y:    e.Y,
			Rune: e.Rune,
			Fade: float64(e.Timer) / parameter.JuiceLifetimeTicks,
		}
	}
}
