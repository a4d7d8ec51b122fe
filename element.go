package quill

import (
	"math"
	"slices"
)

// ElementType distinguishes how an element's geometry is interpreted.
type ElementType uint8

const (
	ElementPath      ElementType = iota // freehand stroke, geometry in Points
	ElementRectangle                    // box shape, geometry in X/Y/Width/Height
	ElementCircle                       // ellipse inscribed in X/Y/Width/Height
	ElementTriangle                     // isosceles triangle inscribed in X/Y/Width/Height
	ElementArrow                        // two-point arrow, geometry in Points
	ElementLine                         // two-point line, geometry in Points
	ElementText                         // text block anchored at X/Y
	ElementImage                        // raster image, croppable
	ElementGroup                        // container; bounds are the union of its descendants
)

// HasPoints reports whether the element's geometry lives in Points rather than
// X/Y/Width/Height.
func (t ElementType) HasPoints() bool {
	return t == ElementPath || t == ElementArrow || t == ElementLine
}

// Element is one item on the board. Points are absolute canvas coordinates.
type Element struct {
	ID       string
	Type     ElementType
	ParentID string

	X, Y, Width, Height float64
	Points              []Vec2

	Color       string
	StrokeWidth float64
	Opacity     float64
	Text        string

	Locked bool
	Hidden bool
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	e.Points = slices.Clone(e.Points)
	return e
}

// Equal reports whether e and o describe the same element state.
func (e Element) Equal(o Element) bool {
	return e.ID == o.ID && e.Type == o.Type && e.ParentID == o.ParentID &&
		e.X == o.X && e.Y == o.Y && e.Width == o.Width && e.Height == o.Height &&
		e.Color == o.Color && e.StrokeWidth == o.StrokeWidth && e.Opacity == o.Opacity &&
		e.Text == o.Text && e.Locked == o.Locked && e.Hidden == o.Hidden &&
		slices.Equal(e.Points, o.Points)
}

// cloneElements deep-copies an element list so snapshots never share point slices.
func cloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i := range els {
		out[i] = els[i].Clone()
	}
	return out
}

func equalElements(a, b []Element) bool {
	return slices.EqualFunc(a, b, Element.Equal)
}

func indexOf(els []Element, id string) int {
	for i := range els {
		if els[i].ID == id {
			return i
		}
	}
	return -1
}

func findElement(els []Element, id string) (Element, bool) {
	if i := indexOf(els, id); i >= 0 {
		return els[i], true
	}
	return Element{}, false
}

// DefaultBounds is the BoundsProvider used when none is supplied.
type DefaultBounds struct{}

// ElementBounds returns the canvas-space bounding box of el. Groups take the
// union of their descendants; an empty group has zero bounds at its origin.
func (DefaultBounds) ElementBounds(el Element, all []Element) Rect {
	switch {
	case el.Type == ElementGroup:
		var r Rect
		found := false
		for _, d := range descendants(el.ID, all) {
			if d.Type == ElementGroup {
				continue
			}
			b := DefaultBounds{}.ElementBounds(d, all)
			if !found {
				r, found = b, true
			} else {
				r = r.Union(b)
			}
		}
		if !found {
			return Rect{X: el.X, Y: el.Y}
		}
		return r
	case el.Type.HasPoints():
		return pointsBounds(el.Points)
	default:
		return RectFromPoints(Vec2{el.X, el.Y}, Vec2{el.X + el.Width, el.Y + el.Height})
	}
}

func pointsBounds(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// descendants walks parent links downward from id. Cycles are cut by the
// visited set.
func descendants(id string, all []Element) []Element {
	var out []Element
	visited := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, el := range all {
			if el.ParentID == parent && !visited[el.ID] {
				visited[el.ID] = true
				out = append(out, el)
				queue = append(queue, el.ID)
			}
		}
	}
	return out
}

// translateElement moves an element so that its captured start position is
// offset by d.
func translateElement(el Element, start dragStart, d Vec2) Element {
	if el.Type.HasPoints() {
		pts := make([]Vec2, len(start.points))
		for i, p := range start.points {
			pts[i] = p.Add(d)
		}
		el.Points = pts
	}
	el.X = start.x + d.X
	el.Y = start.y + d.Y
	return el
}
