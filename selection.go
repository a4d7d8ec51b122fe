package quill

// selectableAncestor walks parent links from id to the topmost element. A
// locked element anywhere on the chain yields "". A parent id that no longer
// exists ends the walk at the last element found.
func selectableAncestor(id string, all []Element) string {
	cur, ok := findElement(all, id)
	if !ok {
		return ""
	}
	seen := map[string]bool{}
	for {
		if cur.Locked {
			return ""
		}
		seen[cur.ID] = true
		if cur.ParentID == "" || seen[cur.ParentID] {
			return cur.ID
		}
		parent, ok := findElement(all, cur.ParentID)
		if !ok {
			return cur.ID
		}
		cur = parent
	}
}

// hitTest returns the topmost visible, non-group element whose bounds contain
// p, or "" when nothing is hit. Later elements paint over earlier ones.
func hitTest(all []Element, bounds BoundsProvider, p Vec2, slop float64) string {
	for i := len(all) - 1; i >= 0; i-- {
		el := all[i]
		if el.Hidden || el.Type == ElementGroup {
			continue
		}
		b := bounds.ElementBounds(el, all)
		b = Rect{X: b.X - slop, Y: b.Y - slop, Width: b.Width + 2*slop, Height: b.Height + 2*slop}
		if b.Contains(p.X, p.Y) {
			return el.ID
		}
	}
	return ""
}

// selectWhere collects the selectable ancestors of every visible leaf element
// matching keep, without duplicates, in board order.
func selectWhere(all []Element, keep func(Element) bool) []string {
	var out []string
	seen := map[string]bool{}
	for _, el := range all {
		if el.Hidden || el.Type == ElementGroup || !keep(el) {
			continue
		}
		id := selectableAncestor(el.ID, all)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// marqueeSelect returns elements whose bounds overlap box.
func marqueeSelect(all []Element, bounds BoundsProvider, box Rect) []string {
	return selectWhere(all, func(el Element) bool {
		return bounds.ElementBounds(el, all).Intersects(box)
	})
}

// lassoSelect returns elements whose bounding-box center lies inside the
// closed polygon.
func lassoSelect(all []Element, bounds BoundsProvider, poly []Vec2) []string {
	if len(poly) < 3 {
		return nil
	}
	return selectWhere(all, func(el Element) bool {
		return pointInPolygon(bounds.ElementBounds(el, all).Center(), poly)
	})
}
