package quill

import "math"

// Vec2 is a 2D vector used for positions, offsets and deltas in both screen
// and canvas space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the rectangle spanned by two corners, normalized to
// non-negative extents.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// PointerKind identifies the physical device behind a pointer.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota // mouse or trackpad
	PointerTouch                    // finger on a touch screen
	PointerPen                      // stylus
)

// String returns the lower-case device name.
func (k PointerKind) String() string {
	switch k {
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	default:
		return "mouse"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Tool is the active editing tool selected by the user.
type Tool uint8

const (
	ToolSelect      Tool = iota // pick, marquee, drag, resize
	ToolPan                     // drag to pan the view
	ToolDraw                    // freehand pen
	ToolHighlighter             // freehand pen with reduced opacity
	ToolText                    // click to place a text element
	ToolRectangle               // drag out a rectangle
	ToolCircle                  // drag out an ellipse
	ToolTriangle                // drag out a triangle
	ToolArrow                   // two-point arrow
	ToolLine                    // two-point line
	ToolErase                   // delete paths under the pointer
	ToolLasso                   // freeform polygon selection
)

var toolNames = [...]string{
	ToolSelect:      "select",
	ToolPan:         "pan",
	ToolDraw:        "draw",
	ToolHighlighter: "highlighter",
	ToolText:        "text",
	ToolRectangle:   "rectangle",
	ToolCircle:      "circle",
	ToolTriangle:    "triangle",
	ToolArrow:       "arrow",
	ToolLine:        "line",
	ToolErase:       "erase",
	ToolLasso:       "lasso",
}

// String returns the tool name used in scripts and logs.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

// ParseTool returns the tool with the given name.
func ParseTool(name string) (Tool, bool) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), true
		}
	}
	return ToolSelect, false
}

// Transform is the board's view transform: canvas points are scaled by Zoom
// and then offset by Pan to land in surface-local screen space.
type Transform struct {
	Zoom float64
	Pan  Vec2
}

// IdentityTransform is the transform of an unzoomed, unpanned board.
var IdentityTransform = Transform{Zoom: 1}

// Style holds the stroke settings applied to newly created elements.
type Style struct {
	Color       string
	StrokeWidth float64
	Opacity     float64
}

// DefaultStyle is the style of a freshly constructed Engine.
var DefaultStyle = Style{Color: "#1e1e1e", StrokeWidth: 2, Opacity: 1}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
