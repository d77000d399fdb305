package input

import "github.com/lixenwraith/fruit-fighter/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Esc, Ctrl+C
	IntentReset  // r
	IntentResize // Terminal resize event

	IntentGesture // Left button press or drag, one point per cell entered
	IntentRelease // Left button released
)

// Intent is the semantic result of one terminal event
type Intent struct {
	Type IntentType

	// IntentGesture: pixel-space point at the centre of the pointer cell
	Point vmath.Point

	// IntentResize: new screen size in cells
	Cols int
	Rows int
}
