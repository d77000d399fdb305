package network

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// MessageType identifies the semantic meaning of a client message
type MessageType string

const (
	MsgPoint     MessageType = "point"     // Gesture point in virtual pixels
	MsgLandmarks MessageType = "landmarks" // One hand of normalized landmarks
	MsgResize    MessageType = "resize"    // Client viewport changed
	MsgReset     MessageType = "reset"     // Restart the session
)

// IndexFingerTip is the landmark index tracked as the blade
const IndexFingerTip = 8

// Landmark is a normalized hand landmark, coordinates in [0, 1]
type Landmark struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// ClientMessage is everything a client may send, discriminated by Type
type ClientMessage struct {
	Type      MessageType `msgpack:"type"`
	X         float64     `msgpack:"x,omitempty"`
	Y         float64     `msgpack:"y,omitempty"`
	Width     float64     `msgpack:"w,omitempty"`
	Height    float64     `msgpack:"h,omitempty"`
	Landmarks []Landmark  `msgpack:"lm,omitempty"`
}

// EncodeClientMessage serializes a client message
func EncodeClientMessage(m *ClientMessage) ([]byte, error) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "encode client message")
	}
	return data, nil
}

// DecodeClientMessage parses and validates a client message
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var m ClientMessage
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decode client message")
	}
	switch m.Type {
	case MsgPoint, MsgLandmarks, MsgResize, MsgReset:
		return &m, nil
	default:
		return nil, errors.Errorf("unknown message type %q", m.Type)
	}
}

// MirrorLandmark maps a normalized camera landmark into viewport pixels
// The camera image is mirrored so moving right moves the blade right
func MirrorLandmark(l Landmark, vp engine.Viewport) vmath.Point {
	return vmath.Pt((1-l.X)*vp.Width, l.Y*vp.Height)
}

// FruitFrame is one fruit on the wire
type FruitFrame struct {
	ID    uint64  `msgpack:"id"`
	Glyph string  `msgpack:"g"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Size  float64 `msgpack:"s"`
}

// EffectFrame is one juice marker on the wire
type EffectFrame struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	Rune string  `msgpack:"r"`
	Fade float64 `msgpack:"f"`
}

// Frame is the per-frame state pushed to every peer
type Frame struct {
	Frame   uint64        `msgpack:"frame"`
	Width   float64       `msgpack:"w"`
	Height  float64       `msgpack:"h"`
	Score   int           `msgpack:"score"`
	Lives   int           `msgpack:"lives"`
	Phase   string        `msgpack:"phase"`
	Fruits  []FruitFrame  `msgpack:"fruits"`
	Effects []EffectFrame `msgpack:"effects"`
	Path    [][2]float64  `msgpack:"path"`
}

// NewFrame flattens a snapshot into its wire form
func NewFrame(snap engine.Snapshot) Frame {
	f := Frame{
		Frame:   snap.Frame,
		Width:   snap.Viewport.Width,
		Height:  snap.Viewport.Height,
		Score:   snap.Score,
		Lives:   snap.Lives,
		Phase:   snap.Phase.String(),
		Fruits:  make([]FruitFrame, len(snap.Fruits)),
		Effects: make([]EffectFrame, len(snap.Effects)),
		Path:    make([][2]float64, len(snap.Path)),
	}
	for i, fr := range snap.Fruits {
		f.Fruits[i] = FruitFrame{
			ID:    fr.ID,
			Glyph: fr.Glyph.String(),
			X:     fr.X,
			Y:     fr.Y,
			Size:  fr.Size,
		}
	}
	for i, e := range snap.Effects {
		f.Effects[i] = EffectFrame{X: e.X, Y: e.Y, Rune: string(e.Rune), Fade: e.Fade}
	}
	for i, p := range snap.Path {
		f.Path[i] = [2]float64{p.X, p.Y}
	}
	return f
}

// EncodeFrame serializes a snapshot for broadcast
func EncodeFrame(snap engine.Snapshot) ([]byte, error) {
	f := NewFrame(snap)
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, errors.Wrap(err, "encode frame")
	}
	return data, nil
}

// DecodeFrame parses a broadcast frame
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	return &f, nil
}
