package event

import "sync"

// Gesture detections arrive at camera rate; pooling keeps the hot path allocation free
var gesturePointPool = sync.Pool{
	New: func() any { return &GesturePointPayload{} },
}

// AcquireGesturePoint returns a pooled payload set to (x, y)
func AcquireGesturePoint(x, y float64) *GesturePointPayload {
	p := gesturePointPool.Get().(*GesturePointPayload)
	p.X, p.Y = x, y
	return p
}

// Release returns pooled payloads to their pool after dispatch
// Events with non-pooled payloads are ignored
func Release(ev GameEvent) {
	switch p := ev.Payload.(type) {
	case *GesturePointPayload:
		if p != nil {
			*p = GesturePointPayload{}
			gesturePointPool.Put(p)
		}
	}
}
