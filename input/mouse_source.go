package input

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/vmath"
)

// MouseSource is the terminal gesture source
// The UI loop feeds it gesture intents; points reach the game only while started
type MouseSource struct {
	sink atomic.Pointer[func(vmath.Point)]
}

func NewMouseSource() *MouseSource {
	return &MouseSource{}
}

// Start implements engine.GestureSource
func (s *MouseSource) Start(sink func(vmath.Point)) error {
	if sink == nil {
		return errors.New("mouse source: nil sink")
	}
	s.sink.Store(&sink)
	return nil
}

// Stop implements engine.GestureSource; later Feed calls are dropped
func (s *MouseSource) Stop() {
	s.sink.Store(nil)
}

// Feed forwards a point to the game, returning false when stopped
func (s *MouseSource) Feed(p vmath.Point) bool {
	sink := s.sink.Load()
	if sink == nil {
		return false
	}
	(*sink)(p)
	return true
}
