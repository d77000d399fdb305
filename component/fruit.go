package component

// FruitComponent is a falling glyph entity in viewport pixel space
// Anchor (X, Y) is the glyph baseline origin; hitboxes extend up and right from it
type FruitComponent struct {
	ID    uint64
	X     float64
	Y     float64
	Speed float64 // Pixels per frame tick, y only, never negative
	Glyph Glyph
	Size  float64 // Base glyph size captured at spawn, drives hitbox scale
}
