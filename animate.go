package quill

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewTween holds active tweens for zoom and pan.
type viewTween struct {
	zoom   *gween.Tween
	panX   *gween.Tween
	panY   *gween.Tween
	target Transform
}

// AnimateTo moves the view to target over d, advanced by Tick. A pan, pinch
// or wheel zoom stops the animation. A non-positive d jumps immediately.
func (e *Engine) AnimateTo(target Transform, d time.Duration) {
	target.Zoom = clamp(target.Zoom, e.cfg.MinZoom, e.cfg.MaxZoom)
	if d <= 0 {
		e.tween = nil
		e.queueTransform(target)
		return
	}
	from := e.currentView()
	secs := float32(d.Seconds())
	e.tween = &viewTween{
		zoom:   gween.New(float32(from.Zoom), float32(target.Zoom), secs, ease.OutCubic),
		panX:   gween.New(float32(from.Pan.X), float32(target.Pan.X), secs, ease.OutCubic),
		panY:   gween.New(float32(from.Pan.Y), float32(target.Pan.Y), secs, ease.OutCubic),
		target: target,
	}
}

// ResetView animates back to 100% zoom with no pan.
func (e *Engine) ResetView(d time.Duration) {
	e.AnimateTo(IdentityTransform, d)
}

// Animating reports whether a view animation is in progress.
func (e *Engine) Animating() bool { return e.tween != nil }

// advanceTween steps the view animation by dt seconds.
func (e *Engine) advanceTween(dt float32) {
	tw := e.tween
	z, doneZ := tw.zoom.Update(dt)
	x, doneX := tw.panX.Update(dt)
	y, doneY := tw.panY.Update(dt)
	if doneZ && doneX && doneY {
		// Land exactly; float32 tweens drift.
		e.tween = nil
		e.queueTransform(tw.target)
		return
	}
	e.queueTransform(Transform{Zoom: float64(z), Pan: Vec2{float64(x), float64(y)}})
}
