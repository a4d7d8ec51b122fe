package quill

// pointInPolygon tests p against the closed polygon poly using the even-odd
// rule. Works for concave and self-intersecting lasso paths.
func pointInPolygon(p Vec2, poly []Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := clamp(((p.X-a.X)*ab.X+(p.Y-a.Y)*ab.Y)/l2, 0, 1)
	return p.Sub(a.Add(ab.Scale(t))).Len()
}

// pathNear reports whether any segment of pts lies within radius of p. A
// single-point path is treated as a dot.
func pathNear(pts []Vec2, p Vec2, radius float64) bool {
	switch len(pts) {
	case 0:
		return false
	case 1:
		return p.Sub(pts[0]).Len() <= radius
	}
	for i := 1; i < len(pts); i++ {
		if distToSegment(p, pts[i-1], pts[i]) <= radius {
			return true
		}
	}
	return false
}
