package quill

import "testing"

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints(Vec2{10, 40}, Vec2{-5, 20})
	if want := (Rect{X: -5, Y: 20, Width: 15, Height: 20}); got != want {
		t.Errorf("RectFromPoints = %+v, want %+v", got, want)
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 10, true},
		{10.01, 5, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 10, 10}, true},
		{"shared edge", Rect{10, 0, 5, 5}, true},
		{"inside", Rect{2, 2, 1, 1}, true},
		{"apart", Rect{11, 0, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnionTranslate(t *testing.T) {
	u := Rect{0, 0, 10, 10}.Union(Rect{20, -5, 5, 5})
	if want := (Rect{0, -5, 25, 15}); u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
	if got := u.Translate(Vec2{1, 2}); got != (Rect{1, -3, 25, 15}) {
		t.Errorf("Translate = %+v", got)
	}
	if c := u.Center(); c != (Vec2{12.5, 2.5}) {
		t.Errorf("Center = %v", c)
	}
}

func TestParseTool(t *testing.T) {
	for i, name := range toolNames {
		tool, ok := ParseTool(name)
		if !ok || tool != Tool(i) || tool.String() != name {
			t.Errorf("ParseTool(%q) = %v, %v", name, tool, ok)
		}
	}
	if _, ok := ParseTool("chisel"); ok {
		t.Error("ParseTool accepted an unknown name")
	}
	if got := Tool(200).String(); got != "unknown" {
		t.Errorf("Tool(200).String() = %q", got)
	}
}

func TestPointerKindString(t *testing.T) {
	for k, want := range map[PointerKind]string{PointerMouse: "mouse", PointerTouch: "touch", PointerPen: "pen"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
