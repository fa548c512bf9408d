// Package geometry answers pairwise spatial questions about diagram elements.
package geometry

import (
	"math"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, W, H float64
}

func Bounds(e types.Element) Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
func (r Rect) Area() float64    { return r.W * r.H }

// Gap is the empty distance between two aligned elements.
type Gap struct {
	Direction Direction
	Distance  float64
}

// GapBetween returns the gap between a and b along the axis they are aligned
// on. Horizontal alignment (|y1-y2| < min(h)/2) is tried first. ok is false
// when the pair is aligned on neither axis or overlaps/touches along it.
func GapBetween(a, b types.Element) (g Gap, ok bool) {
	return RectGap(Bounds(a), Bounds(b))
}

func RectGap(r1, r2 Rect) (Gap, bool) {
	if math.Abs(r1.Y-r2.Y) < math.Min(r1.H, r2.H)*0.5 {
		switch {
		case r1.Right() < r2.X:
			return Gap{Horizontal, r2.X - r1.Right()}, true
		case r2.Right() < r1.X:
			return Gap{Horizontal, r1.X - r2.Right()}, true
		}
	}
	if math.Abs(r1.X-r2.X) < math.Min(r1.W, r2.W)*0.5 {
		switch {
		case r1.Bottom() < r2.Y:
			return Gap{Vertical, r2.Y - r1.Bottom()}, true
		case r2.Bottom() < r1.Y:
			return Gap{Vertical, r1.Y - r2.Bottom()}, true
		}
	}
	return Gap{}, false
}

// Overlaps reports whether the bounding boxes of a and b intersect.
// Touching edges are not an overlap.
func Overlaps(a, b types.Element) bool {
	return RectOverlaps(Bounds(a), Bounds(b))
}

func RectOverlaps(r1, r2 Rect) bool {
	return !(r1.Right() <= r2.X || r2.Right() <= r1.X ||
		r1.Bottom() <= r2.Y || r2.Bottom() <= r1.Y)
}
