package quill

import "math"

const defaultSnapThreshold = 5.0 // screen pixels

// Axis selects the coordinate a guide constrains.
type Axis uint8

const (
	AxisX Axis = iota // vertical guide line at X = Position
	AxisY             // horizontal guide line at Y = Position
)

// Guide is an alignment line shown while dragging. Start and End span the
// moving element along the perpendicular axis.
type Guide struct {
	Axis     Axis
	Position float64
	Start    float64
	End      float64
}

// SnapResult is the correction to apply to a drag offset.
type SnapResult struct {
	Offset Vec2
	Guides []Guide
}

// edges returns the min, center and max coordinates of r on axis.
func edges(r Rect, axis Axis) [3]float64 {
	if axis == AxisX {
		return [3]float64{r.X, r.X + r.Width/2, r.MaxX()}
	}
	return [3]float64{r.Y, r.Y + r.Height/2, r.MaxY()}
}

type snapMatch struct {
	found  bool
	delta  float64
	target float64
	moving int
}

// bestMatch finds the single (moving, static) candidate pair with the smallest
// distance under threshold. Ties keep the first pair found.
func bestMatch(moving []Rect, static []float64, axis Axis, threshold float64) snapMatch {
	best := snapMatch{delta: math.Inf(1)}
	for i, m := range moving {
		for _, mc := range edges(m, axis) {
			for _, sc := range static {
				d := sc - mc
				if math.Abs(d) < threshold && math.Abs(d) < math.Abs(best.delta) {
					best = snapMatch{found: true, delta: d, target: sc, moving: i}
				}
			}
		}
	}
	return best
}

// ResolveSnap aligns the moving rectangles (already offset by the raw drag)
// with the static ones. Each axis is solved independently: the winning pair
// hard-snaps that axis and yields one guide. No winner leaves the axis alone.
func ResolveSnap(moving, static []Rect, threshold float64) SnapResult {
	var res SnapResult
	if len(moving) == 0 || len(static) == 0 || threshold <= 0 {
		return res
	}

	var xs, ys []float64
	for _, r := range static {
		e := edges(r, AxisX)
		xs = append(xs, e[:]...)
		e = edges(r, AxisY)
		ys = append(ys, e[:]...)
	}

	mx := bestMatch(moving, xs, AxisX, threshold)
	my := bestMatch(moving, ys, AxisY, threshold)
	if mx.found {
		res.Offset.X = mx.delta
	}
	if my.found {
		res.Offset.Y = my.delta
	}

	if mx.found {
		r := moving[mx.moving].Translate(res.Offset)
		res.Guides = append(res.Guides, Guide{Axis: AxisX, Position: mx.target, Start: r.Y, End: r.MaxY()})
	}
	if my.found {
		r := moving[my.moving].Translate(res.Offset)
		res.Guides = append(res.Guides, Guide{Axis: AxisY, Position: my.target, Start: r.X, End: r.MaxX()})
	}
	return res
}
