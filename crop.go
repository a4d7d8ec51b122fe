package quill

import "math"

// CropSession is an open crop of one image element. Box and Bounds are in
// canvas space; Bounds is the uncropped image rectangle the box may not leave.
// Aspect is a width/height lock, or 0 for a free crop.
type CropSession struct {
	ElementID string
	Box       Rect
	Bounds    Rect
	Aspect    float64
}

// resizeCrop drags the crop box edges named by h, then clamps to bounds.
func resizeCrop(box0 Rect, h Handle, d Vec2, bounds Rect, aspect, minSize float64) Rect {
	r := resizeRect(box0, h, d, aspect, minSize)

	// Clamp the moving edges to the source bounds.
	minX := math.Max(r.X, bounds.X)
	minY := math.Max(r.Y, bounds.Y)
	maxX := math.Min(r.MaxX(), bounds.MaxX())
	maxY := math.Min(r.MaxY(), bounds.MaxY())
	w := math.Max(maxX-minX, minSize)
	ht := math.Max(maxY-minY, minSize)

	if aspect > 0 {
		if w/ht > aspect {
			w = ht * aspect
		} else {
			ht = w / aspect
		}
	}

	out := Rect{X: box0.X, Y: box0.Y, Width: w, Height: ht}
	if h&EdgeLeft != 0 {
		out.X = box0.MaxX() - w
	}
	if h&EdgeTop != 0 {
		out.Y = box0.MaxY() - ht
	}
	return out
}

// moveCrop translates the crop box by d without leaving bounds.
func moveCrop(box0 Rect, d Vec2, bounds Rect) Rect {
	out := box0
	out.X = clamp(box0.X+d.X, bounds.X, math.Max(bounds.X, bounds.MaxX()-box0.Width))
	out.Y = clamp(box0.Y+d.Y, bounds.Y, math.Max(bounds.Y, bounds.MaxY()-box0.Height))
	return out
}
