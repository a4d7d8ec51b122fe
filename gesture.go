package quill

import (
	"math"
	"slices"
	"strings"
)

// InteractionMode names the current gesture. Exactly one is active at a time.
type InteractionMode string

const (
	ModeNone         InteractionMode = "none"
	ModePan          InteractionMode = "pan"
	ModeDraw         InteractionMode = "draw"
	ModeDrawShape    InteractionMode = "drawShape"
	ModeDrawArrow    InteractionMode = "drawArrow"
	ModeDrawLine     InteractionMode = "drawLine"
	ModeErase        InteractionMode = "erase"
	ModeLasso        InteractionMode = "lasso"
	ModeSelectBox    InteractionMode = "selectBox"
	ModeDragElements InteractionMode = "dragElements"
	ModeCropMove     InteractionMode = "crop-move"
)

// ResizeMode returns the mode for resizing by handle h, e.g. "resize-se".
func ResizeMode(h Handle) InteractionMode { return InteractionMode("resize-" + h.String()) }

// CropMode returns the mode for dragging crop handle h, e.g. "crop-nw".
func CropMode(h Handle) InteractionMode { return InteractionMode("crop-" + h.String()) }

// kind folds the per-handle modes into one family name for metric labels.
func (m InteractionMode) kind() string {
	switch {
	case strings.HasPrefix(string(m), "resize-"):
		return "resize"
	case strings.HasPrefix(string(m), "crop-"):
		return "crop"
	default:
		return string(m)
	}
}

// dragStart is the geometry of one element captured when a drag or resize
// begins. Every move tick is computed from it, never from the previous tick.
type dragStart struct {
	x, y, width, height float64
	points              []Vec2
}

func captureStart(el Element) dragStart {
	return dragStart{x: el.X, y: el.Y, width: el.Width, height: el.Height, points: slices.Clone(el.Points)}
}

type endState struct {
	cancelled bool
	mutated   bool
}

// gesture is one variant of the interaction state machine. Each variant owns
// the data only it needs; dropping the value clears all of it.
type gesture interface {
	mode() InteractionMode
	move(e *Engine, ev PointerEvent, p Vec2)
	end(e *Engine, p Vec2, st endState)
}

// collapsed reports whether a freshly created element is still in its
// pointer-down state: a one-point path, a segment with equal ends or a
// zero-size shape.
func collapsed(el Element) bool {
	switch el.Type {
	case ElementPath:
		return len(el.Points) < 2
	case ElementArrow, ElementLine:
		return len(el.Points) < 2 || el.Points[0] == el.Points[len(el.Points)-1]
	default:
		return el.Width == 0 && el.Height == 0
	}
}

// dropCollapsed silently removes the element created by a cancelled gesture
// that never grew, so an aborted creation leaves no element and no
// checkpoint.
func (e *Engine) dropCollapsed(st endState, id string) bool {
	if !st.cancelled {
		return false
	}
	el, ok := findElement(e.store.Elements(), id)
	if !ok || !collapsed(el) {
		return false
	}
	e.store.SetElements(func(els []Element) []Element {
		return slices.DeleteFunc(els, func(x Element) bool { return x.ID == id })
	}, false)
	return true
}

// --- Pan ---

type panGesture struct {
	startScreen Vec2
	startPan    Vec2
}

func (g *panGesture) mode() InteractionMode { return ModePan }

// move pans in screen space; the canvas point is ignored.
func (g *panGesture) move(e *Engine, ev PointerEvent, _ Vec2) {
	t := e.currentView()
	t.Pan = g.startPan.Add(ev.Screen.Sub(g.startScreen))
	e.queueTransform(t)
}

func (g *panGesture) end(e *Engine, _ Vec2, _ endState) { e.flushTransform() }

// --- Draw ---

type drawGesture struct{ id string }

func (g *drawGesture) mode() InteractionMode { return ModeDraw }

func (g *drawGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	e.updateElement(g.id, func(el Element) Element {
		el.Points = append(slices.Clone(el.Points), p)
		return el
	})
}

func (g *drawGesture) end(e *Engine, _ Vec2, st endState) {
	if e.dropCollapsed(st, g.id) {
		return
	}
	e.commitGesture(st, g.id)
}

func (e *Engine) beginDraw(p Vec2) gesture {
	el := e.newElement(ElementPath, p)
	el.Points = []Vec2{p}
	if e.tool == ToolHighlighter {
		el.Opacity = e.cfg.HighlighterOpacity
	}
	e.setSilent(func(els []Element) []Element { return append(els, el) })
	return &drawGesture{id: el.ID}
}

// --- Shapes ---

type shapeGesture struct {
	id     string
	start  Vec2
	square bool
}

func (g *shapeGesture) mode() InteractionMode { return ModeDrawShape }

func (g *shapeGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	d := p.Sub(g.start)
	if g.square {
		side := math.Max(math.Abs(d.X), math.Abs(d.Y))
		d = Vec2{math.Copysign(side, d.X), math.Copysign(side, d.Y)}
	}
	r := RectFromPoints(g.start, g.start.Add(d))
	e.updateElement(g.id, func(el Element) Element {
		el.X, el.Y, el.Width, el.Height = r.X, r.Y, r.Width, r.Height
		return el
	})
}

func (g *shapeGesture) end(e *Engine, _ Vec2, st endState) {
	if e.dropCollapsed(st, g.id) {
		return
	}
	e.commitGesture(st, g.id)
}

func (e *Engine) beginShape(p Vec2, mods KeyModifiers) gesture {
	t := ElementRectangle
	switch e.tool {
	case ToolCircle:
		t = ElementCircle
	case ToolTriangle:
		t = ElementTriangle
	}
	el := e.newElement(t, p)
	e.setSilent(func(els []Element) []Element { return append(els, el) })
	return &shapeGesture{id: el.ID, start: p, square: mods&e.cfg.FreeResizeModifier != 0}
}

// --- Arrow and line ---

type segmentGesture struct {
	id    string
	arrow bool
}

func (g *segmentGesture) mode() InteractionMode {
	if g.arrow {
		return ModeDrawArrow
	}
	return ModeDrawLine
}

func (g *segmentGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	e.updateElement(g.id, func(el Element) Element {
		if len(el.Points) < 2 {
			return el
		}
		el.Points = []Vec2{el.Points[0], p}
		return el
	})
}

func (g *segmentGesture) end(e *Engine, _ Vec2, st endState) {
	if e.dropCollapsed(st, g.id) {
		return
	}
	e.commitGesture(st, g.id)
}

func (e *Engine) beginSegment(p Vec2) gesture {
	t := ElementLine
	if e.tool == ToolArrow {
		t = ElementArrow
	}
	el := e.newElement(t, p)
	el.Points = []Vec2{p, p}
	e.setSilent(func(els []Element) []Element { return append(els, el) })
	return &segmentGesture{id: el.ID, arrow: t == ElementArrow}
}

// --- Erase ---

type eraseGesture struct{ erased []string }

func (g *eraseGesture) mode() InteractionMode { return ModeErase }

func (g *eraseGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	radius := e.style.StrokeWidth / e.zoom()
	var hit []string
	for _, el := range e.store.Elements() {
		if el.Type == ElementPath && !el.Locked && pathNear(el.Points, p, radius) {
			hit = append(hit, el.ID)
		}
	}
	if len(hit) == 0 {
		return
	}
	g.erased = append(g.erased, hit...)
	e.setSilent(func(els []Element) []Element {
		return slices.DeleteFunc(els, func(el Element) bool { return slices.Contains(hit, el.ID) })
	})
}

func (g *eraseGesture) end(e *Engine, _ Vec2, st endState) { e.commitGesture(st, g.erased...) }

// --- Lasso ---

type lassoGesture struct{ points []Vec2 }

func (g *lassoGesture) mode() InteractionMode { return ModeLasso }

func (g *lassoGesture) move(_ *Engine, _ PointerEvent, p Vec2) { g.points = append(g.points, p) }

// end closes the polygon and adds everything inside to the selection.
// Cancelled lassos select nothing.
func (g *lassoGesture) end(e *Engine, _ Vec2, st endState) {
	if st.cancelled {
		return
	}
	e.addToSelection(lassoSelect(e.store.Elements(), e.bounds, g.points))
}

// --- Marquee ---

type marqueeGesture struct {
	start Vec2
	box   Rect
	moved bool
}

func (g *marqueeGesture) mode() InteractionMode { return ModeSelectBox }

func (g *marqueeGesture) move(_ *Engine, _ PointerEvent, p Vec2) {
	g.box = RectFromPoints(g.start, p)
	g.moved = true
}

func (g *marqueeGesture) end(e *Engine, _ Vec2, st endState) {
	if st.cancelled || !g.moved {
		return
	}
	e.SetSelection(marqueeSelect(e.store.Elements(), e.bounds, g.box))
}

// --- Drag ---

type dragGesture struct {
	start      Vec2
	roots      []string             // selected ids being moved
	rootBounds []Rect               // bounds of roots at start, same order
	starts     map[string]dragStart // roots and all their descendants
	static     []Rect               // snap candidates
}

func (g *dragGesture) mode() InteractionMode { return ModeDragElements }

func (g *dragGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	d := p.Sub(g.start)
	if e.cfg.SnapEnabled && len(g.static) > 0 {
		moving := make([]Rect, len(g.rootBounds))
		for i, r := range g.rootBounds {
			moving[i] = r.Translate(d)
		}
		res := ResolveSnap(moving, g.static, e.cfg.SnapThreshold/e.zoom())
		d = d.Add(res.Offset)
		e.guides = res.Guides
	}
	e.setSilent(func(els []Element) []Element {
		for i := range els {
			if s, ok := g.starts[els[i].ID]; ok {
				els[i] = translateElement(els[i], s, d)
			}
		}
		return els
	})
}

func (g *dragGesture) end(e *Engine, _ Vec2, st endState) { e.commitGesture(st, g.roots...) }

func (e *Engine) beginDrag(p Vec2) gesture {
	all := e.store.Elements()
	g := &dragGesture{start: p, roots: e.Selection(), starts: map[string]dragStart{}}
	for _, id := range g.roots {
		el, ok := findElement(all, id)
		if !ok || el.Locked {
			continue
		}
		g.rootBounds = append(g.rootBounds, e.bounds.ElementBounds(el, all))
		g.starts[id] = captureStart(el)
		for _, d := range e.store.Descendants(id, all) {
			g.starts[d.ID] = captureStart(d)
		}
	}
	if len(g.starts) == 0 {
		return nil
	}
	if e.cfg.SnapEnabled {
		for _, el := range all {
			if _, moving := g.starts[el.ID]; moving || el.Hidden || el.Type == ElementGroup {
				continue
			}
			g.static = append(g.static, e.bounds.ElementBounds(el, all))
		}
	}
	return g
}

// --- Resize ---

type resizeGesture struct {
	id         string
	handle     Handle
	start      Vec2
	from       Rect
	keepAspect bool
	starts     map[string]dragStart
}

func (g *resizeGesture) mode() InteractionMode { return ResizeMode(g.handle) }

func (g *resizeGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	to := ResizeRect(g.from, g.handle, p.Sub(g.start), g.keepAspect, e.cfg.MinElementSize)
	e.setSilent(func(els []Element) []Element {
		for i := range els {
			if s, ok := g.starts[els[i].ID]; ok {
				els[i] = scaleElement(els[i], s, g.from, to)
			}
		}
		return els
	})
}

func (g *resizeGesture) end(e *Engine, _ Vec2, st endState) { e.commitGesture(st, g.id) }

// beginResize starts a resize when exactly one element is selected and p is
// on one of its handles.
func (e *Engine) beginResize(p Vec2, mods KeyModifiers) gesture {
	if len(e.selection) != 1 {
		return nil
	}
	all := e.store.Elements()
	el, ok := findElement(all, e.selection[0])
	if !ok || el.Locked {
		return nil
	}
	from := e.bounds.ElementBounds(el, all)
	h, ok := hitHandle(from, p, e.cfg.HandleSize/e.zoom())
	if !ok {
		return nil
	}
	g := &resizeGesture{
		id:         el.ID,
		handle:     h,
		start:      p,
		from:       from,
		keepAspect: mods&e.cfg.FreeResizeModifier == 0 && el.Type != ElementText,
		starts:     map[string]dragStart{el.ID: captureStart(el)},
	}
	for _, d := range e.store.Descendants(el.ID, all) {
		g.starts[d.ID] = captureStart(d)
	}
	return g
}

// --- Crop ---

// cropGesture edits the open crop session's box. It never touches elements.
type cropGesture struct {
	handle Handle // 0 moves the whole box
	start  Vec2
	box0   Rect
}

func (g *cropGesture) mode() InteractionMode {
	if g.handle == 0 {
		return ModeCropMove
	}
	return CropMode(g.handle)
}

func (g *cropGesture) move(e *Engine, _ PointerEvent, p Vec2) {
	if e.crop == nil {
		return
	}
	d := p.Sub(g.start)
	if g.handle == 0 {
		e.crop.Box = moveCrop(g.box0, d, e.crop.Bounds)
		return
	}
	e.crop.Box = resizeCrop(g.box0, g.handle, d, e.crop.Bounds, e.crop.Aspect, e.cfg.MinElementSize)
}

func (g *cropGesture) end(*Engine, Vec2, endState) {}

// beginCrop starts a crop gesture from a handle or the box interior. Presses
// elsewhere during a crop session are ignored.
func (e *Engine) beginCrop(p Vec2) gesture {
	box := e.crop.Box
	if h, ok := hitHandle(box, p, e.cfg.HandleSize/e.zoom()); ok {
		return &cropGesture{handle: h, start: p, box0: box}
	}
	if box.Contains(p.X, p.Y) {
		return &cropGesture{start: p, box0: box}
	}
	return nil
}

// --- Select and text ---

// beginSelect resolves a select-tool press: a resize handle, an element, or
// empty canvas.
func (e *Engine) beginSelect(ev PointerEvent, p Vec2) gesture {
	if g := e.beginResize(p, ev.Modifiers); g != nil {
		return g
	}
	all := e.store.Elements()
	hit := hitTest(all, e.bounds, p, e.hitSlop())
	target := ""
	if hit != "" {
		target = selectableAncestor(hit, all)
	}
	if target == "" {
		e.SetSelection(nil)
		return &marqueeGesture{start: p, box: Rect{X: p.X, Y: p.Y}}
	}

	if ev.ClickCount >= 2 {
		if el, _ := findElement(all, hit); el.Type == ElementText && e.StartTextEdit(hit) {
			return nil
		}
	}
	switch {
	case ev.Modifiers&ModShift != 0:
		e.toggleSelected(target)
		if !e.isSelected(target) {
			return nil
		}
	case !e.isSelected(target):
		e.SetSelection([]string{target})
	}
	return e.beginDrag(p)
}

// hitSlop widens hit boxes so thin strokes stay clickable.
func (e *Engine) hitSlop() float64 { return e.cfg.HandleSize / 2 / e.zoom() }

// onEmptyCanvas reports whether a select-tool press at p would start a
// marquee.
func (e *Engine) onEmptyCanvas(p Vec2) bool {
	if len(e.selection) == 1 {
		all := e.store.Elements()
		if el, ok := findElement(all, e.selection[0]); ok && !el.Locked {
			if _, ok := hitHandle(e.bounds.ElementBounds(el, all), p, e.cfg.HandleSize/e.zoom()); ok {
				return false
			}
		}
	}
	all := e.store.Elements()
	hit := hitTest(all, e.bounds, p, e.hitSlop())
	return hit == "" || selectableAncestor(hit, all) == ""
}

// placeText creates an empty text element, commits it and opens it for
// editing. The tool falls back to select.
func (e *Engine) placeText(p Vec2) {
	el := e.newElement(ElementText, p)
	e.commit(func(els []Element) []Element { return append(els, el) }, el.ID)
	e.StartTextEdit(el.ID)
	e.SetTool(ToolSelect)
}
