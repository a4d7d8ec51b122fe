package quill

import "slices"

// GestureMode classifies the current multi-pointer touch state.
type GestureMode uint8

const (
	GestureNone          GestureMode = iota // no touch or pen pointer down
	GestureSinglePointer                    // exactly one pointer down
	GesturePinchPan                         // two or more pointers down
)

// String returns the mode name.
func (m GestureMode) String() string {
	switch m {
	case GestureSinglePointer:
		return "singlePointer"
	case GesturePinchPan:
		return "pinchPan"
	default:
		return "none"
	}
}

// PointerSnapshot is the last known position of one active pointer.
type PointerSnapshot struct {
	ID     int
	Kind   PointerKind
	Screen Vec2
	Canvas Vec2
}

// TouchState tracks active touch and pen pointers in the order they went
// down. Mouse pointers never enter it. Mode is always a function of the
// pointer count. Values are immutable: reducers return a new state.
type TouchState struct {
	pointers []PointerSnapshot
	Mode     GestureMode
}

func gestureModeFor(n int) GestureMode {
	switch {
	case n == 0:
		return GestureNone
	case n == 1:
		return GestureSinglePointer
	default:
		return GesturePinchPan
	}
}

func tracksKind(k PointerKind) bool {
	return k == PointerTouch || k == PointerPen
}

// Len returns the number of tracked pointers.
func (s TouchState) Len() int { return len(s.pointers) }

// Pointers returns the tracked pointers in tracking order.
func (s TouchState) Pointers() []PointerSnapshot { return slices.Clone(s.pointers) }

// Pointer returns the snapshot for id.
func (s TouchState) Pointer(id int) (PointerSnapshot, bool) {
	for _, p := range s.pointers {
		if p.ID == id {
			return p, true
		}
	}
	return PointerSnapshot{}, false
}

// Pair returns the first two tracked pointers, which drive pinch math.
func (s TouchState) Pair() (a, b PointerSnapshot, ok bool) {
	if len(s.pointers) < 2 {
		return PointerSnapshot{}, PointerSnapshot{}, false
	}
	return s.pointers[0], s.pointers[1], true
}

func (s TouchState) with(pointers []PointerSnapshot) TouchState {
	return TouchState{pointers: pointers, Mode: gestureModeFor(len(pointers))}
}

// TouchDown inserts or refreshes the snapshot for ev. Mouse events are ignored.
func TouchDown(s TouchState, ev PointerEvent, canvas Vec2) TouchState {
	if !tracksKind(ev.Kind) {
		return s
	}
	snap := PointerSnapshot{ID: ev.ID, Kind: ev.Kind, Screen: ev.Screen, Canvas: canvas}
	pointers := slices.Clone(s.pointers)
	for i := range pointers {
		if pointers[i].ID == ev.ID {
			pointers[i] = snap
			return s.with(pointers)
		}
	}
	return s.with(append(pointers, snap))
}

// TouchMove updates the snapshot for ev. Untracked ids are ignored.
func TouchMove(s TouchState, ev PointerEvent, canvas Vec2) TouchState {
	if !tracksKind(ev.Kind) {
		return s
	}
	for i := range s.pointers {
		if s.pointers[i].ID == ev.ID {
			pointers := slices.Clone(s.pointers)
			pointers[i].Screen = ev.Screen
			pointers[i].Canvas = canvas
			return s.with(pointers)
		}
	}
	return s
}

// TouchUp removes the snapshot for ev.
func TouchUp(s TouchState, ev PointerEvent) TouchState {
	if !tracksKind(ev.Kind) {
		return s
	}
	i := slices.IndexFunc(s.pointers, func(p PointerSnapshot) bool { return p.ID == ev.ID })
	if i < 0 {
		return s
	}
	pointers := slices.Delete(slices.Clone(s.pointers), i, i+1)
	return s.with(pointers)
}

// TouchCancel is TouchUp: a cancelled pointer is simply gone.
func TouchCancel(s TouchState, ev PointerEvent) TouchState {
	return TouchUp(s, ev)
}
