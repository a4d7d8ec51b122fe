package quill

import (
	"slices"
	"testing"
)

func TestSelectableAncestor(t *testing.T) {
	locked := Element{ID: "lg", Type: ElementGroup, Locked: true}
	all := []Element{
		{ID: "g", Type: ElementGroup},
		{ID: "inner", Type: ElementGroup, ParentID: "g"},
		{ID: "leaf", ParentID: "inner"},
		locked,
		{ID: "lockedChild", ParentID: "lg"},
		{ID: "orphan", ParentID: "gone"},
		{ID: "solo"},
		{ID: "c1", ParentID: "c2"},
		{ID: "c2", ParentID: "c1"},
	}
	tests := []struct {
		id, want string
	}{
		{"leaf", "g"},
		{"inner", "g"},
		{"solo", "solo"},
		{"lockedChild", ""},
		{"lg", ""},
		{"orphan", "orphan"},
		{"missing", ""},
		{"c1", "c2"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := selectableAncestor(tt.id, all); got != tt.want {
				t.Errorf("selectableAncestor(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestHitTestTopmost(t *testing.T) {
	hidden := rectEl("hidden", 0, 0, 100, 100)
	hidden.Hidden = true
	all := []Element{
		rectEl("bottom", 0, 0, 100, 100),
		rectEl("top", 50, 50, 100, 100),
		hidden,
	}
	tests := []struct {
		p    Vec2
		want string
	}{
		{Vec2{75, 75}, "top"},
		{Vec2{10, 10}, "bottom"},
		{Vec2{300, 300}, ""},
	}
	for _, tt := range tests {
		if got := hitTest(all, DefaultBounds{}, tt.p, 0); got != tt.want {
			t.Errorf("hitTest(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
	if got := hitTest(all, DefaultBounds{}, Vec2{153, 75}, 4); got != "top" {
		t.Errorf("slop hit = %q, want top", got)
	}
}

// Overlap, not containment, decides marquee membership.
func TestMarqueeSelect(t *testing.T) {
	all := []Element{
		rectEl("a", 10, 10, 20, 20),
		rectEl("b", 60, 60, 20, 20),
		rectEl("c", 90, 90, 50, 50),
		rectEl("d", 200, 200, 10, 10),
		{ID: "g", Type: ElementGroup},
		{ID: "gc", ParentID: "g", Type: ElementRectangle, X: 95, Y: 0, Width: 10, Height: 10},
	}
	got := marqueeSelect(all, DefaultBounds{}, RectFromPoints(Vec2{0, 0}, Vec2{100, 100}))
	if want := []string{"a", "b", "c", "g"}; !slices.Equal(got, want) {
		t.Errorf("marqueeSelect = %v, want %v", got, want)
	}
}

func TestLassoSelectConcave(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	poly := []Vec2{{0, 0}, {30, 0}, {30, 70}, {70, 70}, {70, 0}, {100, 0}, {100, 100}, {0, 100}}
	all := []Element{
		rectEl("leftArm", 10, 10, 10, 10),
		rectEl("notch", 45, 20, 10, 10),
		rectEl("base", 45, 80, 10, 10),
	}
	got := lassoSelect(all, DefaultBounds{}, poly)
	if want := []string{"leftArm", "base"}; !slices.Equal(got, want) {
		t.Errorf("lassoSelect = %v, want %v", got, want)
	}
	if lassoSelect(all, DefaultBounds{}, poly[:2]) != nil {
		t.Error("a two-point lasso selected something")
	}
}
