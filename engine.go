package quill

import (
	"math"
	"slices"
	"time"
)

// PointerEvent is one raw pointer sample in screen coordinates.
type PointerEvent struct {
	ID         int
	Kind       PointerKind
	Screen     Vec2
	Button     MouseButton
	Modifiers  KeyModifiers
	ClickCount int // 2 for the second press of a double click
	Time       time.Time
}

// activeGesture is the single current gesture. The zero value is "none".
type activeGesture struct {
	g         gesture
	pointerID int
	kind      PointerKind
	mutated   bool
}

// Engine turns pointer input on one surface into board edits. It is not safe
// for concurrent use: all methods must be called from the input goroutine.
type Engine struct {
	cfg     Config
	store   ElementStore
	view    TransformStore
	surface SurfaceGeometry
	bounds  BoundsProvider
	ids     IDGenerator
	metrics *Metrics
	sink    EventSink

	touchEnabled bool
	tool         Tool
	style        Style

	active    activeGesture
	guides    []Guide
	selection []string
	editing   string
	crop      *CropSession

	touch     TouchState
	pinch     *PinchContext
	longPress longPress

	pendingView *Transform
	tween       *viewTween
	lastTick    time.Time

	keys     *KeySubscription
	handlers handlerRegistry
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option { return func(e *Engine) { e.cfg = cfg } }

// WithBounds replaces DefaultBounds.
func WithBounds(b BoundsProvider) Option { return func(e *Engine) { e.bounds = b } }

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(g IDGenerator) Option { return func(e *Engine) { e.ids = g } }

// WithPlatform sets the platform used to decide whether touch gestures are
// enabled. It is evaluated once, when the engine is built.
func WithPlatform(p Platform) Option {
	return func(e *Engine) { e.touchEnabled = ShouldEnableTouch(p) }
}

// WithMetrics attaches prometheus counters.
func WithMetrics(m *Metrics) Option { return func(e *Engine) { e.metrics = m } }

// WithStyle sets the initial stroke style.
func WithStyle(s Style) Option { return func(e *Engine) { e.style = s } }

// NewEngine creates an engine editing store, navigating view, and mapping
// coordinates against surface.
func NewEngine(store ElementStore, view TransformStore, surface SurfaceGeometry, opts ...Option) *Engine {
	e := &Engine{
		cfg:     DefaultConfig(),
		store:   store,
		view:    view,
		surface: surface,
		bounds:  DefaultBounds{},
		ids:     UUIDGenerator{},
		tool:    ToolSelect,
		style:   DefaultStyle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Accessors ---

// Mapper returns the coordinate mapper for this engine's surface and view.
func (e *Engine) Mapper() Mapper { return Mapper{Surface: e.surface, View: e.view} }

// TouchEnabled reports the session's touch-gesture decision.
func (e *Engine) TouchEnabled() bool { return e.touchEnabled }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// Style returns the stroke style for new elements.
func (e *Engine) Style() Style { return e.style }

// SetStyle sets the stroke style for new elements.
func (e *Engine) SetStyle(s Style) { e.style = s }

// Mode returns the current interaction mode.
func (e *Engine) Mode() InteractionMode {
	if e.active.g == nil {
		return ModeNone
	}
	return e.active.g.mode()
}

// GestureMode returns the touch classification.
func (e *Engine) GestureMode() GestureMode { return e.touch.Mode }

// Guides returns the alignment guides of the current move tick.
func (e *Engine) Guides() []Guide { return slices.Clone(e.guides) }

// Marquee returns the selection box while a marquee gesture is active.
func (e *Engine) Marquee() (Rect, bool) {
	if g, ok := e.active.g.(*marqueeGesture); ok {
		return g.box, true
	}
	return Rect{}, false
}

// Lasso returns the lasso polygon while a lasso gesture is active.
func (e *Engine) Lasso() []Vec2 {
	if g, ok := e.active.g.(*lassoGesture); ok {
		return slices.Clone(g.points)
	}
	return nil
}

// SetTool switches tools. Any pending long press is dropped.
func (e *Engine) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.longPress.disarm()
	e.tool = t
	e.emit(Event{Type: EventToolChange, Tool: t})
}

// --- Pointer entry points ---

// PointerDown handles a pointer press.
func (e *Engine) PointerDown(ev PointerEvent) { e.session(ev).down(e, ev) }

// PointerMove handles pointer motion.
func (e *Engine) PointerMove(ev PointerEvent) { e.session(ev).move(e, ev) }

// PointerUp handles a pointer release.
func (e *Engine) PointerUp(ev PointerEvent) { e.session(ev).up(e, ev, false) }

// PointerCancel handles a pointer the platform took away. Cleanup matches
// PointerUp, but history is only committed if the gesture changed elements.
func (e *Engine) PointerCancel(ev PointerEvent) { e.session(ev).up(e, ev, true) }

// Tick is called once per animation frame. It fires a due long press,
// advances view animations and flushes the coalesced pan/zoom.
func (e *Engine) Tick(now time.Time) {
	if e.longPress.due(now) {
		lp := e.longPress
		e.longPress.disarm()
		if e.touch.Mode == GestureSinglePointer && e.active.g == nil {
			e.SetSelection(nil)
			e.begin(&marqueeGesture{start: lp.down, box: Rect{X: lp.down.X, Y: lp.down.Y}}, lp.pointerID, PointerTouch)
		}
	}
	if e.tween != nil && !e.lastTick.IsZero() {
		e.advanceTween(float32(now.Sub(e.lastTick).Seconds()))
	}
	e.flushTransform()
	e.lastTick = now
}

func (e *Engine) canvasPoint(ev PointerEvent) Vec2 {
	return e.Mapper().CanvasPoint(ev.Screen.X, ev.Screen.Y)
}

func (e *Engine) zoom() float64 {
	z := e.view.Transform().Zoom
	if z <= 0 {
		return 1
	}
	return z
}

func (e *Engine) now(ev PointerEvent) time.Time {
	if ev.Time.IsZero() {
		return e.lastTick
	}
	return ev.Time
}

// --- Gesture lifecycle ---

// begin makes g the current gesture. Elements created while building g were
// written with setSilent before g existed, so the mutated flag carries over.
func (e *Engine) begin(g gesture, pointerID int, kind PointerKind) {
	e.active = activeGesture{g: g, pointerID: pointerID, kind: kind, mutated: e.active.mutated}
	mode := g.mode()
	if mode == ModePan {
		e.tween = nil
	}
	e.metrics.gestureStarted(mode)
	Logger().Debug("quill: gesture start", "mode", string(mode), "pointer", pointerID)
	e.emit(Event{Type: EventGestureStart, Mode: mode})
}

// endGesture drops every piece of transient state before letting the variant
// finish, so nothing can leak into the next gesture.
func (e *Engine) endGesture(p Vec2, cancelled bool) {
	cur := e.active
	e.active = activeGesture{}
	e.guides = nil
	if cur.g == nil {
		return
	}
	mode := cur.g.mode()
	cur.g.end(e, p, endState{cancelled: cancelled, mutated: cur.mutated})
	if cancelled {
		e.metrics.gestureCancelled()
	}
	Logger().Debug("quill: gesture end", "mode", string(mode), "cancelled", cancelled)
	e.emit(Event{Type: EventGestureEnd, Mode: mode, Cancelled: cancelled})
}

// dispatch maps the active tool and hit target to a new gesture.
func (e *Engine) dispatch(ev PointerEvent, p Vec2) {
	e.longPress.disarm()

	if e.editing != "" {
		e.EndTextEdit()
		return
	}
	if e.crop != nil {
		if g := e.beginCrop(p); g != nil {
			e.begin(g, ev.ID, ev.Kind)
		}
		return
	}
	if ev.Kind == PointerMouse && ev.Button == MouseButtonRight {
		return
	}
	if e.wantsPan(ev) {
		e.begin(&panGesture{startScreen: ev.Screen, startPan: e.currentView().Pan}, ev.ID, ev.Kind)
		return
	}

	var g gesture
	switch e.tool {
	case ToolText:
		e.placeText(p)
		return
	case ToolDraw, ToolHighlighter:
		g = e.beginDraw(p)
	case ToolRectangle, ToolCircle, ToolTriangle:
		g = e.beginShape(p, ev.Modifiers)
	case ToolArrow, ToolLine:
		g = e.beginSegment(p)
	case ToolErase:
		g = &eraseGesture{}
	case ToolLasso:
		g = &lassoGesture{points: []Vec2{p}}
	case ToolSelect:
		g = e.beginSelect(ev, p)
	}
	if g != nil {
		e.begin(g, ev.ID, ev.Kind)
	}
}

func (e *Engine) wantsPan(ev PointerEvent) bool {
	if e.tool == ToolPan || e.spaceHeld() {
		return true
	}
	return ev.Kind == PointerMouse && ev.Button == MouseButtonMiddle
}

// --- Element mutation helpers ---

// setSilent applies update to the live list without a checkpoint and marks
// the current gesture as having mutated the board.
func (e *Engine) setSilent(update func([]Element) []Element) {
	e.store.SetElements(update, false)
	e.active.mutated = true
}

// commit records one undo checkpoint.
func (e *Engine) commit(update func([]Element) []Element, ids ...string) {
	e.store.CommitAction(update)
	e.metrics.committed()
	e.emit(Event{Type: EventCommit, ElementIDs: ids})
}

// commitGesture issues the single end-of-gesture commit. A cancelled gesture
// that never touched the board does not commit.
func (e *Engine) commitGesture(st endState, ids ...string) {
	if st.cancelled && !st.mutated {
		return
	}
	e.commit(func(els []Element) []Element { return els }, ids...)
}

// updateElement applies fn to the element with id. A missing element is a
// no-op so a concurrent delete never breaks the gesture.
func (e *Engine) updateElement(id string, fn func(Element) Element) {
	e.setSilent(func(els []Element) []Element {
		i := indexOf(els, id)
		if i < 0 {
			Logger().Warn("quill: element vanished mid-gesture", "id", id)
			return els
		}
		els[i] = fn(els[i])
		return els
	})
}

func (e *Engine) newElement(t ElementType, p Vec2) Element {
	return Element{
		ID:          e.ids.NewID(),
		Type:        t,
		X:           p.X,
		Y:           p.Y,
		Color:       e.style.Color,
		StrokeWidth: e.style.StrokeWidth,
		Opacity:     e.style.Opacity,
	}
}

// --- Selection ---

// Selection returns the selected element ids in selection order.
func (e *Engine) Selection() []string { return slices.Clone(e.selection) }

// SetSelection replaces the selection.
func (e *Engine) SetSelection(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	if slices.Equal(next, e.selection) {
		return
	}
	e.selection = next
	e.emit(Event{Type: EventSelectionChange, ElementIDs: e.Selection()})
}

func (e *Engine) isSelected(id string) bool { return slices.Contains(e.selection, id) }

func (e *Engine) addToSelection(ids []string) {
	e.SetSelection(append(e.Selection(), ids...))
}

func (e *Engine) toggleSelected(id string) {
	if e.isSelected(id) {
		e.SetSelection(slices.DeleteFunc(e.Selection(), func(s string) bool { return s == id }))
		return
	}
	e.addToSelection([]string{id})
}

// pruneSelection drops ids that no longer exist, e.g. after undo.
func (e *Engine) pruneSelection() {
	all := e.store.Elements()
	e.SetSelection(slices.DeleteFunc(e.Selection(), func(id string) bool { return indexOf(all, id) < 0 }))
}

// DeleteSelection removes the selected elements and their descendants in one
// commit.
func (e *Engine) DeleteSelection() bool {
	if len(e.selection) == 0 || e.active.g != nil {
		return false
	}
	all := e.store.Elements()
	doomed := map[string]bool{}
	for _, id := range e.selection {
		doomed[id] = true
		for _, d := range e.store.Descendants(id, all) {
			doomed[d.ID] = true
		}
	}
	ids := e.Selection()
	e.commit(func(els []Element) []Element {
		return slices.DeleteFunc(els, func(el Element) bool { return doomed[el.ID] })
	}, ids...)
	e.SetSelection(nil)
	return true
}

// --- History ---

// Undo steps the board back one checkpoint when the store keeps history.
// It is refused while a gesture is in progress.
func (e *Engine) Undo() bool {
	u, ok := e.store.(Undoer)
	if !ok || e.active.g != nil || !u.Undo() {
		return false
	}
	e.metrics.undone()
	Logger().Debug("quill: undo")
	e.pruneSelection()
	e.emit(Event{Type: EventUndo})
	return true
}

// Redo steps the board forward one checkpoint.
func (e *Engine) Redo() bool {
	u, ok := e.store.(Undoer)
	if !ok || e.active.g != nil || !u.Redo() {
		return false
	}
	e.metrics.redone()
	Logger().Debug("quill: redo")
	e.pruneSelection()
	e.emit(Event{Type: EventRedo})
	return true
}

// --- Text edit and crop sessions ---

// StartTextEdit enters edit mode on a text element.
func (e *Engine) StartTextEdit(id string) bool {
	el, ok := findElement(e.store.Elements(), id)
	if !ok || el.Type != ElementText || el.Locked {
		return false
	}
	e.longPress.disarm()
	e.editing = id
	e.SetSelection([]string{id})
	e.emit(Event{Type: EventTextEditStart, ElementIDs: []string{id}})
	return true
}

// EndTextEdit leaves edit mode.
func (e *Engine) EndTextEdit() {
	if e.editing == "" {
		return
	}
	id := e.editing
	e.editing = ""
	e.emit(Event{Type: EventTextEditEnd, ElementIDs: []string{id}})
}

// EditingID returns the text element in edit mode, or "".
func (e *Engine) EditingID() string { return e.editing }

// StartCrop opens a crop session on an image element. aspect locks the box
// ratio (width/height); 0 leaves it free.
func (e *Engine) StartCrop(id string, aspect float64) bool {
	all := e.store.Elements()
	el, ok := findElement(all, id)
	if !ok || el.Type != ElementImage || el.Locked {
		return false
	}
	e.longPress.disarm()
	b := e.bounds.ElementBounds(el, all)
	e.crop = &CropSession{ElementID: id, Box: b, Bounds: b, Aspect: aspect}
	return true
}

// CropSession returns the open crop session.
func (e *Engine) CropSession() (CropSession, bool) {
	if e.crop == nil {
		return CropSession{}, false
	}
	return *e.crop, true
}

// ConfirmCrop closes the session and reports the final box. Applying it to
// the image is left to the listener of EventCropConfirm.
func (e *Engine) ConfirmCrop() (Rect, bool) {
	if e.crop == nil {
		return Rect{}, false
	}
	s := *e.crop
	e.crop = nil
	e.emit(Event{Type: EventCropConfirm, ElementIDs: []string{s.ElementID}, Crop: s.Box})
	return s.Box, true
}

// CancelCrop discards the crop session.
func (e *Engine) CancelCrop() {
	if e.crop == nil {
		return
	}
	id := e.crop.ElementID
	e.crop = nil
	e.emit(Event{Type: EventCropCancel, ElementIDs: []string{id}})
}

// --- Navigation ---

func (e *Engine) currentView() Transform {
	if e.pendingView != nil {
		return *e.pendingView
	}
	return e.view.Transform()
}

// queueTransform stores the latest navigation target. Only the newest value
// survives until the next flush.
func (e *Engine) queueTransform(t Transform) {
	e.pendingView = &t
}

func (e *Engine) flushTransform() {
	if e.pendingView == nil {
		return
	}
	t := *e.pendingView
	e.pendingView = nil
	e.view.UpdateTransformSilent(func(Transform) Transform { return t })
	e.metrics.zoomed(t.Zoom)
}

// ZoomAt zooms by WheelZoomStep^steps around a screen point, as for a mouse
// wheel. Positive steps zoom in.
func (e *Engine) ZoomAt(screen Vec2, steps float64) {
	if steps == 0 {
		return
	}
	e.tween = nil
	factor := math.Pow(e.cfg.WheelZoomStep, steps)
	local := screen.Sub(e.Mapper().Origin())
	e.queueTransform(ZoomAround(e.currentView(), local, factor, e.cfg.MinZoom, e.cfg.MaxZoom))
}
