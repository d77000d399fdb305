package component

// JuiceComponent is a transient hit marker that fades over a fixed tick count
type JuiceComponent struct {
	X     float64
	Y     float64
	Rune  rune
	Timer int // Remaining frame ticks
}
