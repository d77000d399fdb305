package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-fighter/component"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/parameter"
	"github.com/lixenwraith/fruit-fighter/physics"
	"github.com/lixenwraith/fruit-fighter/status"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

const (
	heartFull  = '♥'
	heartEmpty = '♡'
	trailRune  = '•'
	hitboxRune = '·'
)

// TerminalRenderer draws game snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	mapper CellMapper
	ascii  bool
	debug  bool
	status *status.Registry
}

// NewTerminalRenderer creates a renderer; status may be nil when debug is off
func NewTerminalRenderer(screen tcell.Screen, mapper CellMapper, ascii, debug bool, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		mapper: mapper,
		ascii:  ascii,
		debug:  debug,
		status: reg,
	}
}

// Mapper returns the cell/pixel mapping in use
func (r *TerminalRenderer) Mapper() CellMapper {
	return r.mapper
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.debug {
		r.drawHitboxes(snap.Fruits, defaultStyle)
	}
	r.drawTrail(snap.Path, defaultStyle)
	r.drawFruits(snap.Fruits, defaultStyle)
	r.drawEffects(snap.Effects, defaultStyle)
	r.drawHeader(snap, defaultStyle)
	r.drawFooter(snap, defaultStyle)

	switch snap.Phase {
	case engine.PhaseIdle:
		r.drawBanner([]string{"GET READY"}, defaultStyle)
	case engine.PhaseGameOver:
		r.drawBanner([]string{
			"GAME OVER",
			fmt.Sprintf("Final score: %d", snap.Score),
			"press r to try again",
		}, defaultStyle)
	}

	r.screen.Show()
}

// setCell writes a rune if the cell lies inside the playfield rows
func (r *TerminalRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if col < 0 || col >= w || row < HeaderRows || row >= h-FooterRows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// drawSegment rasterizes a pixel-space segment onto cells
func (r *TerminalRenderer) drawSegment(a, b vmath.Point, ch rune, style tcell.Style) {
	x1, y1 := r.mapper.ToCell(a)
	x2, y2 := r.mapper.ToCell(b)
	vmath.TraverseLine(x1, y1, x2, y2, func(x, y int) bool {
		r.setCell(x, y, ch, style)
		return true
	})
}

// drawTrail connects consecutive path points oldest to newest
func (r *TerminalRenderer) drawTrail(path []vmath.Point, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbTrail)
	if len(path) == 1 {
		col, row := r.mapper.ToCell(path[0])
		r.setCell(col, row, trailRune, style)
		return
	}
	for i := 0; i+1 < len(path); i++ {
		r.drawSegment(path[i], path[i+1], trailRune, style)
	}
}

// drawHitboxes outlines each fruit polygon, debug only
func (r *TerminalRenderer) drawHitboxes(fruits []component.FruitComponent, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHitbox)
	for i := range fruits {
		poly := physics.FruitHitbox(&fruits[i])
		for j := range poly {
			a, b := poly.Edge(j)
			r.drawSegment(a, b, hitboxRune, style)
		}
	}
}

// drawFruits places each glyph at the centre of its hitbox bounds
func (r *TerminalRenderer) drawFruits(fruits []component.FruitComponent, defaultStyle tcell.Style) {
	for i := range fruits {
		f := &fruits[i]
		bounds := physics.FruitHitbox(f).Bounds()
		centre := bounds.Min.Add(bounds.Max).Scale(0.5)
		col, row := r.mapper.ToCell(centre)

		ch := f.Glyph.Rune()
		style := defaultStyle
		if r.ascii {
			ch = f.Glyph.ASCII()
			style = style.Foreground(FruitColor[f.Glyph.String()]).Bold(true)
		}
		r.setCell(col, row, ch, style)
	}
}

// drawEffects draws juice markers dimming with their fade ratio
func (r *TerminalRenderer) drawEffects(effects []engine.EffectView, defaultStyle tcell.Style) {
	for _, e := range effects {
		col, row := r.mapper.ToCell(vmath.Point{X: e.X, Y: e.Y})
		ch := e.Rune
		if r.ascii {
			ch = component.JuiceRuneASCII
		}
		r.setCell(col, row, ch, defaultStyle.Foreground(JuiceColor(e.Fade)))
	}
}

// drawHeader draws score on the left and lives as hearts on the right
func (r *TerminalRenderer) drawHeader(snap engine.Snapshot, defaultStyle tcell.Style) {
	w, _ := r.screen.Size()
	style := defaultStyle.Foreground(RgbHeader).Bold(true)

	r.drawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), style)

	x := w - 1 - parameter.InitialLives*2
	for i := 0; i < parameter.InitialLives; i++ {
		ch, color := heartFull, RgbHeart
		if i >= snap.Lives {
			ch, color = heartEmpty, RgbHeartLost
		}
		if r.ascii {
			ch = '*'
			if i >= snap.Lives {
				ch = '-'
			}
		}
		r.screen.SetContent(x+i*2, 0, ch, nil, defaultStyle.Foreground(color))
	}
}

// footerMetrics are the debug footer readouts, short labels keep the line within 80 columns
var footerMetrics = []struct{ label, key string }{
	{"ticks", "engine.ticks"},
	{"hits", "game.hits"},
	{"misses", "game.misses"},
	{"spawned", "spawn.count"},
	{"skipped", "spawn.skipped"},
	{"dropped", "engine.dropped"},
}

// drawFooter shows key hints, or metrics when debug is on
func (r *TerminalRenderer) drawFooter(snap engine.Snapshot, defaultStyle tcell.Style) {
	_, h := r.screen.Size()
	style := defaultStyle.Foreground(RgbStatus)

	text := "drag mouse to slice  r reset  q quit"
	if r.debug && r.status != nil {
		// Phase leads so narrow terminals keep it
		parts := []string{"phase=" + snap.Phase.String()}
		for _, m := range footerMetrics {
			parts = append(parts, fmt.Sprintf("%s=%d", m.label, r.status.Ints.Get(m.key).Load()))
		}
		text = strings.Join(parts, " ")
	}
	r.drawText(1, h-1, text, style)
}

// drawBanner draws centred lines in a filled box over the playfield
func (r *TerminalRenderer) drawBanner(lines []string, defaultStyle tcell.Style) {
	w, h := r.screen.Size()

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, len([]rune(l)))
	}
	boxWidth += 4
	boxHeight := len(lines) + 2

	startX := (w - boxWidth) / 2
	startY := (h - boxHeight) / 2
	style := defaultStyle.Background(RgbOverlayBg).Foreground(RgbOverlayFg).Bold(true)

	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			r.screen.SetContent(startX+x, startY+y, ' ', nil, style)
		}
	}
	for i, l := range lines {
		lineX := startX + (boxWidth-len([]rune(l)))/2
		r.drawText(lineX, startY+1+i, l, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
