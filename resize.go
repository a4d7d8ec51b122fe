package quill

import "math"

// Handle is a resize or crop grip, expressed as the set of box edges it moves.
type Handle uint8

const (
	EdgeTop Handle = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// The eight grips around a box.
const (
	HandleN  = EdgeTop
	HandleNE = EdgeTop | EdgeRight
	HandleE  = EdgeRight
	HandleSE = EdgeBottom | EdgeRight
	HandleS  = EdgeBottom
	HandleSW = EdgeBottom | EdgeLeft
	HandleW  = EdgeLeft
	HandleNW = EdgeTop | EdgeLeft
)

var allHandles = [...]Handle{HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW}

// String returns the compass name ("n", "se", ...).
func (h Handle) String() string {
	var s string
	if h&EdgeTop != 0 {
		s += "n"
	}
	if h&EdgeBottom != 0 {
		s += "s"
	}
	if h&EdgeRight != 0 {
		s += "e"
	}
	if h&EdgeLeft != 0 {
		s += "w"
	}
	return s
}

// ParseHandle parses a compass name produced by String.
func ParseHandle(name string) (Handle, bool) {
	for _, h := range allHandles {
		if h.String() == name {
			return h, true
		}
	}
	return 0, false
}

// position returns the grip location on r.
func (h Handle) position(r Rect) Vec2 {
	p := r.Center()
	if h&EdgeLeft != 0 {
		p.X = r.X
	}
	if h&EdgeRight != 0 {
		p.X = r.MaxX()
	}
	if h&EdgeTop != 0 {
		p.Y = r.Y
	}
	if h&EdgeBottom != 0 {
		p.Y = r.MaxY()
	}
	return p
}

// hitHandle returns the grip of r within radius of p. Corners win over edges
// because they are checked first.
func hitHandle(r Rect, p Vec2, radius float64) (Handle, bool) {
	for _, h := range [...]Handle{HandleNW, HandleNE, HandleSE, HandleSW, HandleN, HandleE, HandleS, HandleW} {
		if p.Sub(h.position(r)).Len() <= radius {
			return h, true
		}
	}
	return 0, false
}

// ResizeRect moves the edges named by h by delta d. With keepAspect the
// dimension perpendicular to the dragged edge follows the original ratio,
// anchored at the opposite edge. Both sides are held at minSize or larger;
// when a side would shrink below it, the dragged edge stops, and a locked
// ratio survives the stop.
func ResizeRect(r0 Rect, h Handle, d Vec2, keepAspect bool, minSize float64) Rect {
	ratio := 0.0
	if keepAspect && r0.Width > 0 && r0.Height > 0 {
		ratio = r0.Width / r0.Height
	}
	return resizeRect(r0, h, d, ratio, minSize)
}

// resizeRect is ResizeRect with an explicit width/height ratio (0 = free).
func resizeRect(r0 Rect, h Handle, d Vec2, ratio, minSize float64) Rect {
	w, ht := r0.Width, r0.Height
	if h&EdgeRight != 0 {
		w += d.X
	}
	if h&EdgeLeft != 0 {
		w -= d.X
	}
	if h&EdgeBottom != 0 {
		ht += d.Y
	}
	if h&EdgeTop != 0 {
		ht -= d.Y
	}

	// With a ratio the dragged dimension is clamped first so the derived one
	// keeps the ratio and still respects minSize.
	switch {
	case ratio > 0 && h&(EdgeLeft|EdgeRight) != 0:
		w = math.Max(w, math.Max(minSize, minSize*ratio))
		ht = w / ratio
	case ratio > 0 && h&(EdgeTop|EdgeBottom) != 0:
		ht = math.Max(ht, math.Max(minSize, minSize/ratio))
		w = ht * ratio
	default:
		w = math.Max(w, minSize)
		ht = math.Max(ht, minSize)
	}
	if math.IsNaN(w) || math.IsNaN(ht) {
		return r0
	}

	out := Rect{X: r0.X, Y: r0.Y, Width: w, Height: ht}
	if h&EdgeLeft != 0 {
		out.X = r0.MaxX() - w
	}
	if h&EdgeTop != 0 {
		out.Y = r0.MaxY() - ht
	}
	return out
}

// scaleElement maps the captured geometry of an element from the from box to
// the to box.
func scaleElement(el Element, start dragStart, from, to Rect) Element {
	sx, sy := 1.0, 1.0
	if from.Width > 0 {
		sx = to.Width / from.Width
	}
	if from.Height > 0 {
		sy = to.Height / from.Height
	}
	mapPoint := func(p Vec2) Vec2 {
		return Vec2{to.X + (p.X-from.X)*sx, to.Y + (p.Y-from.Y)*sy}
	}
	if el.Type.HasPoints() {
		pts := make([]Vec2, len(start.points))
		for i, p := range start.points {
			pts[i] = mapPoint(p)
		}
		el.Points = pts
	}
	origin := mapPoint(Vec2{start.x, start.y})
	el.X, el.Y = origin.X, origin.Y
	el.Width = start.width * sx
	el.Height = start.height * sy
	return el
}
