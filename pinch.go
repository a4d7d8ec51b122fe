package quill

import "math"

const (
	defaultMinZoom = 0.1
	defaultMaxZoom = 10.0
)

// PinchContext is captured once when a touch gesture enters pinch-pan. The
// anchor is the canvas point under the initial centroid; it stays fixed for
// the whole gesture so the content under the fingers does not drift.
type PinchContext struct {
	Zoom            float64
	Pan             Vec2
	Anchor          Vec2
	InitialDistance float64
	IDs             [2]int
}

// CapturePinch snapshots the transform and the anchor centroid for a and b.
// Returns false when the pointers coincide.
func CapturePinch(t Transform, origin Vec2, a, b PointerSnapshot) (PinchContext, bool) {
	dist := b.Screen.Sub(a.Screen).Len()
	if dist <= 0 {
		return PinchContext{}, false
	}
	centroid := a.Screen.Add(b.Screen).Scale(0.5)
	return PinchContext{
		Zoom:            t.Zoom,
		Pan:             t.Pan,
		Anchor:          ScreenToCanvas(t, origin, centroid),
		InitialDistance: dist,
		IDs:             [2]int{a.ID, b.ID},
	}, true
}

// Resolve computes the transform for the current screen positions of the pair.
// Zoom is clamped to [minZoom, maxZoom]. Returns false when either distance is
// non-positive.
func (c PinchContext) Resolve(origin, a, b Vec2, minZoom, maxZoom float64) (Transform, bool) {
	dist := b.Sub(a).Len()
	if dist <= 0 || c.InitialDistance <= 0 {
		return Transform{}, false
	}
	zoom := clamp(c.Zoom*dist/c.InitialDistance, minZoom, maxZoom)
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return Transform{}, false
	}
	centroid := a.Add(b).Scale(0.5).Sub(origin)
	return Transform{
		Zoom: zoom,
		Pan:  centroid.Sub(c.Anchor.Scale(zoom)),
	}, true
}

// ZoomAround returns t zoomed by factor while keeping the canvas point under
// the surface-local screen point fixed.
func ZoomAround(t Transform, local Vec2, factor, minZoom, maxZoom float64) Transform {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) || t.Zoom <= 0 {
		return t
	}
	anchor := local.Sub(t.Pan).Scale(1 / t.Zoom)
	zoom := clamp(t.Zoom*factor, minZoom, maxZoom)
	return Transform{Zoom: zoom, Pan: local.Sub(anchor.Scale(zoom))}
}
