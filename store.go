package quill

import "github.com/google/uuid"

// ElementStore owns the live element list. Silent updates (commit=false) only
// touch the live list; CommitAction additionally records an undo checkpoint.
type ElementStore interface {
	Elements() []Element
	SetElements(update func([]Element) []Element, commit bool)
	CommitAction(update func([]Element) []Element)
	Descendants(id string, all []Element) []Element
}

// BoundsProvider computes canvas-space bounding boxes.
type BoundsProvider interface {
	ElementBounds(el Element, all []Element) Rect
}

// IDGenerator produces unique element ids.
type IDGenerator interface {
	NewID() string
}

// SurfaceGeometry reports the rendering surface rectangle in screen
// coordinates. It is queried on every coordinate conversion.
type SurfaceGeometry interface {
	SurfaceRect() Rect
}

// TransformStore holds the board's pan/zoom. Updates through it never enter
// undo history.
type TransformStore interface {
	Transform() Transform
	UpdateTransformSilent(update func(Transform) Transform)
}

// Undoer is implemented by element stores that keep history. The engine
// discovers it by type assertion for keyboard shortcuts.
type Undoer interface {
	Undo() bool
	Redo() bool
}

// PointerCapturer is implemented by surfaces that can route a pointer's
// events to themselves while it is outside their bounds.
type PointerCapturer interface {
	CapturePointer(pointerID int)
	ReleasePointer(pointerID int)
}

// UUIDGenerator generates random UUID strings.
type UUIDGenerator struct{}

// NewID returns a new random UUID.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// StaticSurface is a SurfaceGeometry with a fixed rectangle.
type StaticSurface Rect

// SurfaceRect returns the rectangle.
func (s StaticSurface) SurfaceRect() Rect { return Rect(s) }
