package render

import "image/color"

// OpKind names a recorded draw call.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeCircle
	OpDrawText
)

// Op is one recorded draw call. Fields not used by the kind stay zero.
type Op struct {
	Kind          OpKind
	X, Y, W, H, R float64
	Width         float64
	Text          string
	Color         color.Color
}

// Recorder is a Surface that remembers every call instead of drawing.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, X: cx, Y: cy, R: radius, Width: width, Color: clr})
}

func (r *Recorder) DrawText(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawText, X: x, Y: y, Text: s, Color: clr})
}

// Texts returns the text of every DrawText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
