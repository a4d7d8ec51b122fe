package quill

import "testing"

func TestResizeCrop(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	tests := []struct {
		name   string
		box0   Rect
		h      Handle
		d      Vec2
		aspect float64
		want   Rect
	}{
		{"shrink se", bounds, HandleSE, Vec2{-50, -20}, 0, Rect{0, 0, 150, 80}},
		{"grow past bounds", Rect{10, 10, 50, 50}, HandleSE, Vec2{500, 500}, 0, Rect{10, 10, 190, 90}},
		{"nw past origin", Rect{10, 10, 50, 50}, HandleNW, Vec2{-100, -100}, 0, Rect{0, 0, 60, 60}},
		{"aspect lock", bounds, HandleE, Vec2{-100, 0}, 1, Rect{0, 0, 100, 100}},
		{"aspect lock clamped by height", Rect{0, 0, 50, 50}, HandleE, Vec2{300, 0}, 1, Rect{0, 0, 100, 100}},
		{"min size", bounds, HandleSE, Vec2{-500, -500}, 0, Rect{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resizeCrop(tt.box0, tt.h, tt.d, bounds, tt.aspect, 1); got != tt.want {
				t.Errorf("resizeCrop = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMoveCrop(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	box := Rect{X: 50, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		d    Vec2
		want Rect
	}{
		{Vec2{10, 10}, Rect{60, 30, 100, 50}},
		{Vec2{-100, -100}, Rect{0, 0, 100, 50}},
		{Vec2{100, 100}, Rect{100, 50, 100, 50}},
	}
	for _, tt := range tests {
		if got := moveCrop(box, tt.d, bounds); got != tt.want {
			t.Errorf("moveCrop(%v) = %+v, want %+v", tt.d, got, tt.want)
		}
	}
}
