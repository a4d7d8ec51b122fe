package quill

// Mapper converts between screen coordinates and canvas coordinates. It holds
// no cached state: the surface rectangle and view transform are read on every
// call so a resized or scrolled surface is picked up immediately.
type Mapper struct {
	Surface SurfaceGeometry
	View    TransformStore
}

// Origin returns the surface's top-left corner in screen space.
func (m Mapper) Origin() Vec2 {
	if m.Surface == nil {
		return Vec2{}
	}
	r := m.Surface.SurfaceRect()
	return Vec2{r.X, r.Y}
}

// CanvasPoint converts screen coordinates to canvas coordinates.
func (m Mapper) CanvasPoint(sx, sy float64) Vec2 {
	return ScreenToCanvas(m.View.Transform(), m.Origin(), Vec2{sx, sy})
}

// ScreenPoint converts a canvas point back to screen coordinates.
func (m Mapper) ScreenPoint(p Vec2) Vec2 {
	return CanvasToScreen(m.View.Transform(), m.Origin(), p)
}

// ScreenToCanvas applies (screen - origin - pan) / zoom. A non-positive zoom
// is treated as 1 so the result stays finite.
func ScreenToCanvas(t Transform, origin, screen Vec2) Vec2 {
	z := t.Zoom
	if z <= 0 {
		z = 1
	}
	return screen.Sub(origin).Sub(t.Pan).Scale(1 / z)
}

// CanvasToScreen is the inverse of ScreenToCanvas.
func CanvasToScreen(t Transform, origin, p Vec2) Vec2 {
	z := t.Zoom
	if z <= 0 {
		z = 1
	}
	return p.Scale(z).Add(t.Pan).Add(origin)
}
