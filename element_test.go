package quill

import (
	"slices"
	"testing"
)

func TestDefaultBounds(t *testing.T) {
	all := []Element{
		{ID: "g", Type: ElementGroup, X: 7, Y: 7},
		{ID: "r", Type: ElementRectangle, ParentID: "g", X: 10, Y: 10, Width: 20, Height: 10},
		{ID: "p", Type: ElementPath, ParentID: "g", Points: []Vec2{{50, 0}, {40, 30}}},
		{ID: "empty", Type: ElementGroup, X: 3, Y: 4},
		{ID: "neg", Type: ElementRectangle, X: 10, Y: 10, Width: -5, Height: -5},
	}
	tests := []struct {
		id   string
		want Rect
	}{
		{"r", Rect{10, 10, 20, 10}},
		{"p", Rect{40, 0, 10, 30}},
		{"g", Rect{10, 0, 40, 30}},
		{"empty", Rect{3, 4, 0, 0}},
		{"neg", Rect{5, 5, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			el, _ := findElement(all, tt.id)
			if got := (DefaultBounds{}).ElementBounds(el, all); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDescendantsCycle(t *testing.T) {
	all := []Element{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "b"},
	}
	var ids []string
	for _, d := range descendants("a", all) {
		ids = append(ids, d.ID)
	}
	if !slices.Equal(ids, []string{"b", "c"}) {
		t.Errorf("descendants = %v, want [b c]", ids)
	}
}

func TestElementCloneAndEqual(t *testing.T) {
	a := Element{ID: "a", Type: ElementPath, Points: []Vec2{{1, 2}}}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone differs")
	}
	b.Points[0] = Vec2{9, 9}
	if a.Points[0] != (Vec2{1, 2}) {
		t.Error("clone shares points")
	}
	if a.Equal(b) {
		t.Error("Equal ignores points")
	}
}
