package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("game.hits")
	b := reg.Ints.Get("game.hits")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}

	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("game.hits = %d, want 3", got)
	}
	if !reg.Ints.Has("game.hits") {
		t.Error("Has(game.hits) = false, want true")
	}
	if reg.Ints.Has("game.misses") {
		t.Error("Has(game.misses) = true, want false")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicString]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("game.phase").Store("Active")
			}
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestRangeSortedOrder(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(key string, _ *AtomicString) {
		keys = append(keys, key)
	})
	if got := strings.Join(keys, ","); got != "a,b,c" {
		t.Errorf("Range order = %q, want %q", got, "a,b,c")
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "Active", "Active"},
		{"ascii", strings.Repeat("x", MaxStringLen+5), strings.Repeat("x", MaxStringLen)},
		// 19 ASCII bytes then a 4-byte rune straddling the limit
		{"rune boundary", strings.Repeat("x", MaxStringLen-1) + "🍉", strings.Repeat("x", MaxStringLen-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AtomicString
			s.Store(tt.in)
			if got := s.Load(); got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}

	var zero AtomicString
	if zero.Load() != "" {
		t.Errorf("zero value Load() = %q, want empty", zero.Load())
	}
}

func TestExport(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("engine.ticks").Store(42)
	reg.Strings.Get("game.phase").Store("GameOver")
	reg.Bools.Get("engine.running").Store(true)

	out := reg.Export()
	if len(out) != 3 {
		t.Fatalf("len(Export()) = %d, want 3", len(out))
	}
	if out["engine.ticks"] != int64(42) {
		t.Errorf("engine.ticks = %v, want 42", out["engine.ticks"])
	}
	if out["game.phase"] != "GameOver" {
		t.Errorf("game.phase = %v, want GameOver", out["game.phase"])
	}
	if out["engine.running"] != true {
		t.Errorf("engine.running = %v, want true", out["engine.running"])
	}
}
