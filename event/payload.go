package event

// GesturePointPayload is one detection in viewport pixel space, already mirrored
type GesturePointPayload struct {
	X float64
	Y float64
}

// ViewportResizePayload contains the new viewport size in pixels
type ViewportResizePayload struct {
	Width  float64
	Height float64
}
