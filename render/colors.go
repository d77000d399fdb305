package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(12, 12, 20)
	RgbHeader     = tcell.NewRGBColor(230, 230, 230)
	RgbHeart      = tcell.NewRGBColor(230, 40, 60)
	RgbHeartLost  = tcell.NewRGBColor(80, 80, 90)
	RgbTrail      = tcell.NewRGBColor(120, 220, 255)
	RgbHitbox     = tcell.NewRGBColor(90, 90, 110)
	RgbOverlayBg  = tcell.NewRGBColor(30, 10, 20)
	RgbOverlayFg  = tcell.NewRGBColor(255, 220, 120)
	RgbStatus     = tcell.NewRGBColor(140, 140, 160)
)

// FruitColor is the ASCII-mode tint per glyph kind
var FruitColor = map[string]tcell.Color{
	"banana":     tcell.NewRGBColor(250, 220, 60),
	"kiwi":       tcell.NewRGBColor(140, 200, 60),
	"apple":      tcell.NewRGBColor(230, 50, 50),
	"watermelon": tcell.NewRGBColor(60, 180, 80),
	"grape":      tcell.NewRGBColor(150, 80, 200),
}

// JuiceColor fades the juice marker towards the background as fade drops to 0
func JuiceColor(fade float64) tcell.Color {
	fade = min(max(fade, 0), 1)
	lerp := func(bg, fg int32) int32 {
		return bg + int32(float64(fg-bg)*fade)
	}
	return tcell.NewRGBColor(lerp(12, 255), lerp(12, 140), lerp(20, 40))
}
