package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/fruit-fighter/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventFrameTick})
	q.Push(GameEvent{Type: EventGesturePoint})
	q.Push(GameEvent{Type: EventSpawnTick})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Consume(nil)
	want := []EventType{EventFrameTick, EventGesturePoint, EventSpawnTick}
	if len(got) != len(want) {
		t.Fatalf("Consume() returned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i].Type, want[i])
		}
	}

	if again := q.Consume(nil); len(again) != 0 {
		t.Errorf("second Consume() = %v, want empty", again)
	}
}

func TestEventQueueFullRejectsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	accepted := 0
	for i := 0; i < total; i++ {
		if q.Push(GameEvent{Type: EventGesturePoint, Payload: i}) {
			accepted++
		}
	}
	if accepted != parameter.EventQueueSize {
		t.Errorf("accepted = %d, want %d", accepted, parameter.EventQueueSize)
	}
	if q.Dropped() != 10 {
		t.Errorf("Dropped() = %d, want 10", q.Dropped())
	}

	got := q.Consume(nil)
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Consume() returned %d events, want %d", len(got), parameter.EventQueueSize)
	}
	if first := got[0].Payload.(int); first != 0 {
		t.Errorf("oldest payload = %d, want 0", first)
	}
	if last := got[len(got)-1].Payload.(int); last != parameter.EventQueueSize-1 {
		t.Errorf("newest payload = %d, want %d", last, parameter.EventQueueSize-1)
	}

	// Space frees up once consumed
	if !q.Push(GameEvent{Type: EventFrameTick}) {
		t.Error("Push after Consume rejected")
	}
}

func TestEventQueueConsumeReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	buf := make([]GameEvent, 0, 8)
	q.Push(GameEvent{Type: EventSpawnTick})

	got := q.Consume(buf)
	if len(got) != 1 || &got[0] != &buf[:1][0] {
		t.Errorf("Consume did not append into the supplied buffer")
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventGesturePoint})
			}
		}()
	}
	wg.Wait()

	received := len(q.Consume(nil))
	if received != producers*perProducer {
		t.Errorf("received %d events, want %d", received, producers*perProducer)
	}
}

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterRegistrationOrder(t *testing.T) {
	var log []string
	r := NewRouter[*int]()
	r.Register(&recordingHandler{name: "spawn", types: []EventType{EventFrameTick, EventSpawnTick}, log: &log})
	r.Register(&recordingHandler{name: "collision", types: []EventType{EventFrameTick}, log: &log})
	r.Register(&recordingHandler{name: "juice", types: []EventType{EventFrameTick}, log: &log})

	if n := r.HandlerCount(EventFrameTick); n != 3 {
		t.Errorf("HandlerCount(FrameTick) = %d, want 3", n)
	}

	calls := 0
	r.Dispatch(&calls, GameEvent{Type: EventFrameTick})
	r.Dispatch(&calls, GameEvent{Type: EventSpawnTick})
	r.Dispatch(&calls, GameEvent{Type: EventGameReset})

	want := []string{
		"spawn:EventFrameTick", "collision:EventFrameTick", "juice:EventFrameTick",
		"spawn:EventSpawnTick",
	}
	if len(log) != len(want) {
		t.Fatalf("dispatch log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("dispatch %d = %q, want %q", i, log[i], want[i])
		}
	}
	if calls != 4 {
		t.Errorf("context mutated %d times, want 4", calls)
	}
}

func TestGesturePointPool(t *testing.T) {
	p := AcquireGesturePoint(12, 34)
	if p.X != 12 || p.Y != 34 {
		t.Fatalf("AcquireGesturePoint = %+v, want {12 34}", *p)
	}
	Release(GameEvent{Type: EventGesturePoint, Payload: p})
	if p.X != 0 || p.Y != 0 {
		t.Errorf("released payload not zeroed: %+v", *p)
	}

	// Non-pooled payloads pass through untouched
	resize := &ViewportResizePayload{Width: 10, Height: 20}
	Release(GameEvent{Type: EventViewportResize, Payload: resize})
	if resize.Width != 10 {
		t.Error("Release must not touch non-pooled payloads")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTick.String() != "Tick" {
		t.Errorf("EventTick.String() = %q, want Tick", EventTick.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("EventType(999).String() = %q, want Unknown", EventType(999).String())
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		want   EventType
		wantOK bool
	}{
		{"Tick", EventTick, true},
		{"tick", EventTick, true},
		{"EventGameReset", EventGameReset, true},
		{"EventNope", 0, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
