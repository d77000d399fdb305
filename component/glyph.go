package component

// Glyph is the closed set of fruit kinds
// The unexported method seals the set: only this package can add a kind, and
// every switch over Glyph panics on a foreign value
type Glyph interface {
	// Rune is the display glyph
	Rune() rune
	// ASCII is the single-width fallback for terminals without emoji
	ASCII() rune
	String() string
	glyph()
}

type (
	Banana     struct{}
	Kiwi       struct{}
	Apple      struct{}
	Watermelon struct{}
	Grape      struct{}
)

func (Banana) Rune() rune     { return '🍌' }
func (Banana) ASCII() rune    { return ')' }
func (Banana) String() string { return "banana" }
func (Banana) glyph()         {}

func (Kiwi) Rune() rune     { return '🥝' }
func (Kiwi) ASCII() rune    { return '*' }
func (Kiwi) String() string { return "kiwi" }
func (Kiwi) glyph()         {}

func (Apple) Rune() rune     { return '🍎' }
func (Apple) ASCII() rune    { return '@' }
func (Apple) String() string { return "apple" }
func (Apple) glyph()         {}

func (Watermelon) Rune() rune     { return '🍉' }
func (Watermelon) ASCII() rune    { return 'O' }
func (Watermelon) String() string { return "watermelon" }
func (Watermelon) glyph()         {}

func (Grape) Rune() rune     { return '🍇' }
func (Grape) ASCII() rune    { return '%' }
func (Grape) String() string { return "grape" }
func (Grape) glyph()         {}

// Glyphs lists every kind in spawn sampling order
var Glyphs = [...]Glyph{Banana{}, Kiwi{}, Apple{}, Watermelon{}, Grape{}}

// Juice marker glyphs
const (
	JuiceRune      = '🍹'
	JuiceRuneASCII = '#'
)
