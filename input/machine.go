package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-fighter/render"
)

// Machine translates tcell events into intents
// Tracks the left button so drags emit one gesture point per cell entered
type Machine struct {
	mapper render.CellMapper

	dragging bool
	lastCol  int
	lastRow  int
}

func NewMachine(mapper render.CellMapper) *Machine {
	return &Machine{mapper: mapper}
}

// Reset drops drag state
func (m *Machine) Reset() {
	m.dragging = false
}

// Process returns the intent for ev, or nil when the event is ignored
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return &Intent{Type: IntentResize, Cols: cols, Rows: rows}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	return KeyIntent(ev.Key(), ev.Rune())
}

// KeyIntent maps a key and its rune to an intent
func KeyIntent(key tcell.Key, ch rune) *Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'r', 'R':
			return &Intent{Type: IntentReset}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	col, row := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		if m.dragging {
			m.dragging = false
			return &Intent{Type: IntentRelease}
		}
		return nil
	}

	// Same cell as the previous point adds nothing to the path
	if m.dragging && col == m.lastCol && row == m.lastRow {
		return nil
	}
	m.dragging = true
	m.lastCol, m.lastRow = col, row

	return &Intent{
		Type:  IntentGesture,
		Point: m.mapper.ToPixel(col, row),
	}
}
