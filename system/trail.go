package system

import (
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/event"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// TrailSystem keeps the most recent gesture detections as the blade path
// Fixed-capacity ring; the oldest point is evicted once full
type TrailSystem struct {
	points [parameter.GesturePathCapacity]vmath.Point
	head   int // Index of the oldest point
	count  int
}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Name() string {
	return "trail"
}

func (s *TrailSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGesturePoint,
		event.EventGameReset,
	}
}

func (s *TrailSystem) HandleEvent(_ *engine.Game, ev event.GameEvent) {
	switch ev.Type {
	case event.EventGesturePoint:
		if p, ok := ev.Payload.(*event.GesturePointPayload); ok {
			s.Push(vmath.Point{X: p.X, Y: p.Y})
		}
	case event.EventGameReset:
		s.Clear()
	}
}

// Push appends a detection, evicting the oldest when at capacity
func (s *TrailSystem) Push(p vmath.Point) {
	if s.count < len(s.points) {
		s.points[(s.head+s.count)%len(s.points)] = p
		s.count++
		return
	}
	s.points[s.head] = p
	s.head = (s.head + 1) % len(s.points)
}

// Current returns a copy of the path ordered oldest to newest
func (s *TrailSystem) Current() []vmath.Point {
	out := make([]vmath.Point, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.points[(s.head+i)%len(s.points)]
	}
	return out
}

// Len returns the number of points held
func (s *TrailSystem) Len() int {
	return s.count
}

// Clear empties the path
func (s *TrailSystem) Clear() {
	s.head = 0
	s.count = 0
}

func (s *TrailSystem) Contribute(snap *engine.Snapshot) {
	snap.Path = s.Current()
}
