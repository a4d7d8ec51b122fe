package ebiteninput

import (
	"testing"

	"github.com/phanxgames/quill"
)

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos      string
		wantTouch bool
	}{
		{"android", true},
		{"ios", true},
		{"linux", false},
		{"darwin", false},
		{"windows", false},
		{"js", false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := quill.ShouldEnableTouch(platformFor(tt.goos)); got != tt.wantTouch {
				t.Errorf("ShouldEnableTouch(%s) = %v, want %v", tt.goos, got, tt.wantTouch)
			}
		})
	}
}

func TestTouchPointerIDAvoidsMouse(t *testing.T) {
	if touchPointerID(0) == mousePointerID {
		t.Error("touch id 0 collides with the mouse pointer")
	}
}

func TestCountClick(t *testing.T) {
	s := &Source{DoubleClickInterval: defaultDoubleClick}
	base := quill.Vec2{X: 10, Y: 10}
	t0 := s.lastClick.Add(1) // non-zero base time

	if got := s.countClick(t0, base); got != 1 {
		t.Fatalf("first click = %d, want 1", got)
	}
	if got := s.countClick(t0.Add(defaultDoubleClick/2), base); got != 2 {
		t.Fatalf("second click = %d, want 2", got)
	}
	if got := s.countClick(t0.Add(3*defaultDoubleClick), base); got != 1 {
		t.Fatalf("late click = %d, want 1", got)
	}
	far := quill.Vec2{X: 100, Y: 100}
	if got := s.countClick(t0.Add(3*defaultDoubleClick+1), far); got != 1 {
		t.Fatalf("distant click = %d, want 1", got)
	}
}
