// Package ebiteninput feeds Ebitengine mouse, touch, wheel and keyboard state
// into a quill.Engine once per frame.
package ebiteninput

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/quill"
)

const (
	mousePointerID        = 0
	defaultDoubleClick    = 400 * time.Millisecond
	defaultDoubleClickGap = 4.0 // screen pixels
)

var boundKeys = [...]struct {
	ebiten ebiten.Key
	quill  quill.Key
}{
	{ebiten.KeySpace, quill.KeySpace},
	{ebiten.KeyZ, quill.KeyZ},
	{ebiten.KeyY, quill.KeyY},
	{ebiten.KeyEscape, quill.KeyEscape},
	{ebiten.KeyDelete, quill.KeyDelete},
	{ebiten.KeyBackspace, quill.KeyBackspace},
}

// Source polls Ebitengine input. Call Update from Game.Update.
type Source struct {
	engine *quill.Engine
	keys   *quill.KeySubscription

	// DoubleClickInterval is the longest gap between presses that still
	// counts as a double click.
	DoubleClickInterval time.Duration

	mouseDown   bool
	mouseButton quill.MouseButton
	mouseLast   quill.Vec2
	lastClick   time.Time
	lastClickAt quill.Vec2
	clicks      int

	touches  map[ebiten.TouchID]quill.Vec2
	touchIDs []ebiten.TouchID

	now func() time.Time
}

// NewSource attaches a Source to e, taking over its keyboard subscription.
func NewSource(e *quill.Engine) *Source {
	return &Source{
		engine:              e,
		keys:                e.SubscribeKeys(),
		DoubleClickInterval: defaultDoubleClick,
		touches:             map[ebiten.TouchID]quill.Vec2{},
		now:                 time.Now,
	}
}

// Close releases the keyboard subscription.
func (s *Source) Close() {
	s.keys.Close()
}

// Update reads this frame's input, forwards it and ticks the engine.
func (s *Source) Update() {
	now := s.now()
	mods := readModifiers()

	s.processKeys(mods)
	s.processMouse(now, mods)
	s.processTouches(now, mods)
	s.processWheel()

	s.engine.Tick(now)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() quill.KeyModifiers {
	var mods quill.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= quill.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= quill.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= quill.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= quill.ModMeta
	}
	return mods
}

func (s *Source) processKeys(mods quill.KeyModifiers) {
	for _, k := range boundKeys {
		switch {
		case inpututil.IsKeyJustPressed(k.ebiten):
			s.keys.HandleKey(quill.KeyEvent{Key: k.quill, Down: true, Modifiers: mods})
		case inpututil.IsKeyJustReleased(k.ebiten):
			s.keys.HandleKey(quill.KeyEvent{Key: k.quill, Down: false, Modifiers: mods})
		}
	}
}

func (s *Source) processMouse(now time.Time, mods quill.KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	pos := quill.Vec2{X: float64(mx), Y: float64(my)}
	ev := quill.PointerEvent{
		ID:        mousePointerID,
		Kind:      quill.PointerMouse,
		Screen:    pos,
		Modifiers: mods,
		Time:      now,
	}

	if !s.mouseDown {
		button, ok := justPressedButton()
		if !ok {
			return
		}
		s.mouseDown = true
		s.mouseButton = button
		s.mouseLast = pos
		ev.Button = button
		ev.ClickCount = s.countClick(now, pos)
		s.engine.PointerDown(ev)
		return
	}

	// The button captured at press time owns the interaction.
	ev.Button = s.mouseButton
	if pos != s.mouseLast {
		s.mouseLast = pos
		s.engine.PointerMove(ev)
	}
	if inpututil.IsMouseButtonJustReleased(toEbitenButton(s.mouseButton)) {
		s.mouseDown = false
		s.engine.PointerUp(ev)
	}
}

func justPressedButton() (quill.MouseButton, bool) {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return quill.MouseButtonLeft, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		return quill.MouseButtonMiddle, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		return quill.MouseButtonRight, true
	}
	return 0, false
}

func toEbitenButton(b quill.MouseButton) ebiten.MouseButton {
	switch b {
	case quill.MouseButtonRight:
		return ebiten.MouseButtonRight
	case quill.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// countClick returns 1 for a fresh press and increments for presses that
// land close together in time and space.
func (s *Source) countClick(now time.Time, pos quill.Vec2) int {
	if !s.lastClick.IsZero() && now.Sub(s.lastClick) <= s.DoubleClickInterval &&
		pos.Sub(s.lastClickAt).Len() <= defaultDoubleClickGap {
		s.clicks++
	} else {
		s.clicks = 1
	}
	s.lastClick = now
	s.lastClickAt = pos
	return s.clicks
}

// touchPointerID keeps touch ids clear of the mouse pointer.
func touchPointerID(tid ebiten.TouchID) int { return int(tid) + 1 }

func (s *Source) processTouches(now time.Time, mods quill.KeyModifiers) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	seen := make(map[ebiten.TouchID]bool, len(s.touchIDs))
	for _, tid := range s.touchIDs {
		seen[tid] = true
		tx, ty := ebiten.TouchPosition(tid)
		pos := quill.Vec2{X: float64(tx), Y: float64(ty)}
		ev := quill.PointerEvent{
			ID:         touchPointerID(tid),
			Kind:       quill.PointerTouch,
			Screen:     pos,
			Modifiers:  mods,
			ClickCount: 1,
			Time:       now,
		}
		last, known := s.touches[tid]
		s.touches[tid] = pos
		switch {
		case !known:
			s.engine.PointerDown(ev)
		case last != pos:
			s.engine.PointerMove(ev)
		}
	}

	// Release touches that disappeared this frame.
	for tid, last := range s.touches {
		if seen[tid] {
			continue
		}
		delete(s.touches, tid)
		s.engine.PointerUp(quill.PointerEvent{
			ID:        touchPointerID(tid),
			Kind:      quill.PointerTouch,
			Screen:    last,
			Modifiers: mods,
			Time:      now,
		})
	}
}

func (s *Source) processWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.engine.ZoomAt(quill.Vec2{X: float64(mx), Y: float64(my)}, wy)
}
