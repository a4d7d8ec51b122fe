package quill

import (
	"testing"
	"time"
)

func TestLongPressTimer(t *testing.T) {
	var lp longPress
	if lp.due(t0.Add(time.Hour)) {
		t.Fatal("disarmed timer is due")
	}
	lp.arm(4, t0, 500*time.Millisecond, Vec2{10, 10}, Vec2{100, 100})
	tests := []struct {
		at   time.Duration
		want bool
	}{
		{0, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{time.Second, true},
	}
	for _, tt := range tests {
		if got := lp.due(t0.Add(tt.at)); got != tt.want {
			t.Errorf("due(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
	if lp.movedBeyond(Vec2{13, 14}, 5) {
		t.Error("a move of exactly the slop counts as beyond")
	}
	if !lp.movedBeyond(Vec2{13, 15}, 5) {
		t.Error("a move past the slop does not count")
	}
	lp.disarm()
	if lp.armed || lp.due(t0.Add(time.Hour)) {
		t.Error("disarm left the timer armed")
	}
}

func TestLongPressArmedWithoutClock(t *testing.T) {
	var lp longPress
	lp.arm(1, time.Time{}, 500*time.Millisecond, Vec2{}, Vec2{})
	if lp.due(t0) {
		t.Fatal("due on the first reading")
	}
	if lp.due(t0.Add(499 * time.Millisecond)) {
		t.Error("due before the delay")
	}
	if !lp.due(t0.Add(500 * time.Millisecond)) {
		t.Error("not due after the delay")
	}
}
