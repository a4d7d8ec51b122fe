package quill

import (
	"math/rand/v2"
	"testing"
)

func TestTouchReducers(t *testing.T) {
	var s TouchState
	s = TouchDown(s, touchAt(1, 0, 0, t0), Vec2{})
	s = TouchDown(s, mouseAt(5, 5), Vec2{})
	if s.Len() != 1 || s.Mode != GestureSinglePointer {
		t.Fatalf("after one touch and a mouse: len=%d mode=%v", s.Len(), s.Mode)
	}
	s = TouchDown(s, touchAt(2, 10, 0, t0), Vec2{10, 0})
	if s.Mode != GesturePinchPan {
		t.Fatalf("mode = %v, want pinchPan", s.Mode)
	}
	s = TouchMove(s, touchAt(2, 20, 0, t0), Vec2{20, 0})
	if p, _ := s.Pointer(2); p.Screen != (Vec2{20, 0}) || p.Canvas != (Vec2{20, 0}) {
		t.Errorf("pointer 2 = %+v", p)
	}
	s = TouchMove(s, touchAt(9, 1, 1, t0), Vec2{})
	if s.Len() != 2 {
		t.Errorf("move of an unknown id changed the set")
	}
	a, b, ok := s.Pair()
	if !ok || a.ID != 1 || b.ID != 2 {
		t.Errorf("Pair() = %d,%d,%v", a.ID, b.ID, ok)
	}
	s = TouchCancel(s, touchAt(1, 0, 0, t0))
	if s.Len() != 1 || s.Mode != GestureSinglePointer {
		t.Errorf("after cancel: len=%d mode=%v", s.Len(), s.Mode)
	}
	s = TouchUp(s, touchAt(2, 0, 0, t0))
	if s.Mode != GestureNone {
		t.Errorf("mode = %v, want none", s.Mode)
	}
}

func TestTouchDownIsIdempotent(t *testing.T) {
	var s TouchState
	s = TouchDown(s, touchAt(1, 0, 0, t0), Vec2{})
	s = TouchDown(s, touchAt(1, 5, 5, t0), Vec2{5, 5})
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestTouchStateImmutable(t *testing.T) {
	var s TouchState
	s1 := TouchDown(s, touchAt(1, 0, 0, t0), Vec2{})
	s2 := TouchMove(s1, touchAt(1, 9, 9, t0), Vec2{9, 9})
	if p, _ := s1.Pointer(1); p.Screen != (Vec2{}) {
		t.Errorf("TouchMove mutated its input: %+v", p)
	}
	_ = TouchUp(s2, touchAt(1, 0, 0, t0))
	if s2.Len() != 1 {
		t.Errorf("TouchUp mutated its input")
	}
}

// Gesture mode must always follow the number of tracked pointers.
func TestGestureModeFollowsCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	kinds := []PointerKind{PointerMouse, PointerTouch, PointerPen}
	var s TouchState
	down := map[int]bool{}

	for i := 0; i < 2000; i++ {
		ev := touchAt(rng.IntN(5), rng.Float64()*100, rng.Float64()*100, t0)
		ev.Kind = kinds[rng.IntN(len(kinds))]
		tracked := ev.Kind != PointerMouse
		switch rng.IntN(4) {
		case 0:
			s = TouchDown(s, ev, ev.Screen)
			if tracked {
				down[ev.ID] = true
			}
		case 1:
			s = TouchMove(s, ev, ev.Screen)
		case 2:
			s = TouchUp(s, ev)
			if tracked {
				delete(down, ev.ID)
			}
		default:
			s = TouchCancel(s, ev)
			if tracked {
				delete(down, ev.ID)
			}
		}
		if s.Len() != len(down) {
			t.Fatalf("step %d: len=%d, want %d", i, s.Len(), len(down))
		}
		if s.Mode != gestureModeFor(len(down)) {
			t.Fatalf("step %d: mode=%v with %d pointers", i, s.Mode, len(down))
		}
	}
}

func TestGestureModeString(t *testing.T) {
	tests := []struct {
		m    GestureMode
		want string
	}{
		{GestureNone, "none"},
		{GestureSinglePointer, "singlePointer"},
		{GesturePinchPan, "pinchPan"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
