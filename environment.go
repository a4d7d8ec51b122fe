package quill

// Platform describes the input capabilities of the host, as far as they can
// be sniffed at startup.
type Platform struct {
	// PointerEvents is true when the host delivers unified pointer events
	// (id, kind, position) rather than mouse-only input.
	PointerEvents bool
	// MaxTouchPoints is the number of simultaneous touches the device reports.
	MaxTouchPoints int
	// Mobile is set when the OS or user agent identifies a phone or tablet.
	Mobile bool
	// CoarsePointer mirrors a "pointer: coarse" media query.
	CoarsePointer bool
	// PrimaryPointer is the kind of the device's primary pointer.
	PrimaryPointer PointerKind
}

// ShouldEnableTouch reports whether touch gestures (pinch, long press) should
// be enabled for a session on p. All three conditions must hold: pointer
// events, a touch-like device, and a primary pointer that is not a mouse.
func ShouldEnableTouch(p Platform) bool {
	if !p.PointerEvents {
		return false
	}
	touchLike := p.MaxTouchPoints > 0 || p.Mobile || p.CoarsePointer
	return touchLike && p.PrimaryPointer != PointerMouse
}
