package quill

// pointerSession routes raw pointer events for one kind of input. Both
// sessions share the engine's mapper and tool dispatch.
type pointerSession interface {
	down(e *Engine, ev PointerEvent)
	move(e *Engine, ev PointerEvent)
	up(e *Engine, ev PointerEvent, cancelled bool)
}

// session picks the handler for ev. Without touch support every pointer is
// treated as a mouse.
func (e *Engine) session(ev PointerEvent) pointerSession {
	if e.touchEnabled && tracksKind(ev.Kind) {
		return touchSession{}
	}
	return mouseSession{}
}

// --- Mouse ---

// mouseSession drives one gesture at a time from a single pointer.
type mouseSession struct{}

func (mouseSession) down(e *Engine, ev PointerEvent) {
	if e.active.g != nil {
		return
	}
	e.dispatch(ev, e.canvasPoint(ev))
}

func (mouseSession) move(e *Engine, ev PointerEvent) {
	if e.active.g == nil || e.active.pointerID != ev.ID {
		return
	}
	e.active.g.move(e, ev, e.canvasPoint(ev))
}

func (mouseSession) up(e *Engine, ev PointerEvent, cancelled bool) {
	if e.active.g == nil || e.active.pointerID != ev.ID {
		return
	}
	e.endGesture(e.canvasPoint(ev), cancelled)
}

// --- Touch ---

// touchSession classifies concurrent touch and pen pointers. One pointer
// edits like a mouse; a second one takes over for pinch-pan navigation.
type touchSession struct{}

func (touchSession) down(e *Engine, ev PointerEvent) {
	p := e.canvasPoint(ev)
	prev := e.touch
	e.touch = TouchDown(prev, ev, p)
	if c, ok := e.surface.(PointerCapturer); ok {
		c.CapturePointer(ev.ID)
	}

	switch {
	case e.touch.Mode == GesturePinchPan:
		if prev.Mode != GesturePinchPan {
			e.enterPinch(p)
		} else {
			e.reanchorPinch()
		}
	case prev.Mode == GestureNone && e.touch.Mode == GestureSinglePointer:
		if e.canArmLongPress(ev, p) {
			e.longPress.arm(ev.ID, e.now(ev), e.cfg.LongPressDelay, p, ev.Screen)
			return
		}
		e.dispatch(ev, p)
	}
}

func (touchSession) move(e *Engine, ev PointerEvent) {
	p := e.canvasPoint(ev)
	e.touch = TouchMove(e.touch, ev, p)

	switch e.touch.Mode {
	case GesturePinchPan:
		e.updatePinch()
	case GestureSinglePointer:
		if e.longPress.armed && e.longPress.pointerID == ev.ID {
			if !e.longPress.movedBeyond(p, e.cfg.LongPressSlop/e.zoom()) {
				return
			}
			// Moving before the timer fires makes it a pan.
			start := e.longPress.screen
			e.longPress.disarm()
			e.begin(&panGesture{startScreen: start, startPan: e.currentView().Pan}, ev.ID, ev.Kind)
		}
		if e.active.g != nil && e.active.pointerID == ev.ID {
			e.active.g.move(e, ev, p)
		}
	}
}

func (touchSession) up(e *Engine, ev PointerEvent, cancelled bool) {
	p := e.canvasPoint(ev)
	prev := e.touch
	if cancelled {
		e.touch = TouchCancel(prev, ev)
	} else {
		e.touch = TouchUp(prev, ev)
	}
	if c, ok := e.surface.(PointerCapturer); ok {
		c.ReleasePointer(ev.ID)
	}

	if e.longPress.armed && e.longPress.pointerID == ev.ID {
		e.longPress.disarm()
		if !cancelled {
			// A tap on empty canvas.
			e.SetSelection(nil)
		}
	}
	if e.active.g != nil && e.active.pointerID == ev.ID {
		e.endGesture(p, cancelled)
	}

	switch {
	case e.touch.Mode == GesturePinchPan:
		e.reanchorPinch()
	case prev.Mode == GesturePinchPan:
		e.leavePinch()
	}
}

// canArmLongPress reports whether a lone touch should wait for the long
// press timer instead of dispatching immediately.
func (e *Engine) canArmLongPress(ev PointerEvent, p Vec2) bool {
	if ev.Kind != PointerTouch || e.tool != ToolSelect || e.editing != "" || e.crop != nil || e.spaceHeld() {
		return false
	}
	return e.onEmptyCanvas(p)
}

// --- Pinch ---

// enterPinch aborts any single-pointer gesture and snapshots the pinch
// context.
func (e *Engine) enterPinch(p Vec2) {
	e.longPress.disarm()
	if e.active.g != nil {
		e.endGesture(p, true)
	}
	e.tween = nil
	e.capturePinch()
}

// reanchorPinch recaptures the context when the first two pointers changed
// identity, e.g. one of them lifted while a third stayed down.
func (e *Engine) reanchorPinch() {
	a, b, ok := e.touch.Pair()
	if !ok {
		return
	}
	if e.pinch != nil && e.pinch.IDs == [2]int{a.ID, b.ID} {
		return
	}
	e.capturePinch()
}

func (e *Engine) capturePinch() {
	a, b, ok := e.touch.Pair()
	if !ok {
		e.pinch = nil
		return
	}
	ctx, ok := CapturePinch(e.currentView(), e.Mapper().Origin(), a, b)
	if !ok {
		e.pinch = nil
		return
	}
	e.pinch = &ctx
	Logger().Debug("quill: pinch anchored", "zoom", ctx.Zoom, "anchor_x", ctx.Anchor.X, "anchor_y", ctx.Anchor.Y)
}

func (e *Engine) updatePinch() {
	if e.pinch == nil {
		e.capturePinch()
		return
	}
	a, b, ok := e.touch.Pair()
	if !ok {
		return
	}
	t, ok := e.pinch.Resolve(e.Mapper().Origin(), a.Screen, b.Screen, e.cfg.MinZoom, e.cfg.MaxZoom)
	if ok {
		e.queueTransform(t)
	}
}

// leavePinch flushes the final transform. A finger still down stays idle:
// gestures only start on a down from zero pointers.
func (e *Engine) leavePinch() {
	e.flushTransform()
	e.pinch = nil
}
