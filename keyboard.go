package quill

// Key identifies the keys the engine binds. Other keys are left to the host.
type Key uint8

const (
	KeySpace Key = iota + 1
	KeyZ
	KeyY
	KeyEscape
	KeyDelete
	KeyBackspace
)

var keyNames = map[string]Key{
	"space":     KeySpace,
	"z":         KeyZ,
	"y":         KeyY,
	"escape":    KeyEscape,
	"delete":    KeyDelete,
	"backspace": KeyBackspace,
}

// ParseKey maps a lowercase key name such as "space" or "escape" to a Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key       Key
	Down      bool
	Modifiers KeyModifiers
}

// KeySubscription delivers keyboard input to an engine. An engine has at most
// one live subscription; Close detaches it and forgets held keys.
type KeySubscription struct {
	e         *Engine
	spaceDown bool
	closed    bool
}

// SubscribeKeys attaches keyboard handling, closing any previous
// subscription.
func (e *Engine) SubscribeKeys() *KeySubscription {
	if e.keys != nil {
		e.keys.Close()
	}
	s := &KeySubscription{e: e}
	e.keys = s
	return s
}

// Close detaches the subscription. It is safe to call more than once.
func (s *KeySubscription) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.spaceDown = false
	if s.e.keys == s {
		s.e.keys = nil
	}
}

// HandleKey applies the bindings below and reports whether the key was used.
//
//	Space (held)              pan with any tool
//	Ctrl/Cmd+Z                undo
//	Ctrl/Cmd+Shift+Z, Ctrl+Y  redo
//	Escape                    end text edit, cancel crop or clear selection
//	Delete, Backspace         delete the selection
//
// Shortcuts are ignored while a text element is being edited so the editor
// keeps them.
func (s *KeySubscription) HandleKey(ev KeyEvent) bool {
	if s.closed {
		return false
	}
	e := s.e
	if ev.Key == KeySpace {
		if e.editing != "" {
			return false
		}
		s.spaceDown = ev.Down
		return true
	}
	if !ev.Down {
		return false
	}
	if ev.Key == KeyEscape {
		switch {
		case e.editing != "":
			e.EndTextEdit()
		case e.crop != nil:
			e.CancelCrop()
		default:
			if len(e.selection) == 0 {
				return false
			}
			e.SetSelection(nil)
		}
		return true
	}
	if e.editing != "" {
		return false
	}

	command := ev.Modifiers&(ModCtrl|ModMeta) != 0
	switch {
	case command && ev.Key == KeyZ && ev.Modifiers&ModShift != 0:
		return e.Redo()
	case command && ev.Key == KeyZ:
		return e.Undo()
	case command && ev.Key == KeyY:
		return e.Redo()
	case ev.Key == KeyDelete || ev.Key == KeyBackspace:
		return e.DeleteSelection()
	}
	return false
}

func (e *Engine) spaceHeld() bool {
	return e.keys != nil && e.keys.spaceDown
}
