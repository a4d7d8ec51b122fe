package quill

import (
	"testing"
)

func TestSpaceHeldPans(t *testing.T) {
	board, e := newTestEngine(nil)
	e.SetTool(ToolDraw)
	keys := e.SubscribeKeys()
	if !keys.HandleKey(KeyEvent{Key: KeySpace, Down: true}) {
		t.Fatal("space not handled")
	}
	mouseDrag(e, Vec2{100, 100}, Vec2{130, 140})
	if got := board.Transform().Pan; got != (Vec2{30, 40}) {
		t.Errorf("pan = %v, want (30,40)", got)
	}
	if len(board.Elements()) != 0 {
		t.Errorf("space drag drew %d elements", len(board.Elements()))
	}

	keys.HandleKey(KeyEvent{Key: KeySpace})
	mouseDrag(e, Vec2{100, 100}, Vec2{130, 140})
	if len(board.Elements()) != 1 {
		t.Errorf("elements = %d after space release, want 1", len(board.Elements()))
	}
}

func TestUndoRedoShortcuts(t *testing.T) {
	tests := []struct {
		name string
		undo KeyEvent
		redo KeyEvent
	}{
		{"ctrl", KeyEvent{Key: KeyZ, Down: true, Modifiers: ModCtrl}, KeyEvent{Key: KeyY, Down: true, Modifiers: ModCtrl}},
		{"cmd shift", KeyEvent{Key: KeyZ, Down: true, Modifiers: ModMeta}, KeyEvent{Key: KeyZ, Down: true, Modifiers: ModMeta | ModShift}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, e := newTestEngine(nil)
			keys := e.SubscribeKeys()
			e.SetTool(ToolDraw)
			mouseDrag(e, Vec2{0, 0}, Vec2{10, 10})

			if !keys.HandleKey(tt.undo) {
				t.Fatal("undo not handled")
			}
			if len(board.Elements()) != 0 {
				t.Errorf("elements after undo = %d", len(board.Elements()))
			}
			if !keys.HandleKey(tt.redo) {
				t.Fatal("redo not handled")
			}
			if len(board.Elements()) != 1 {
				t.Errorf("elements after redo = %d", len(board.Elements()))
			}
			if keys.HandleKey(tt.redo) {
				t.Error("redo past the end reported success")
			}
		})
	}
}

func TestPlainZIsNotUndo(t *testing.T) {
	board, e := newTestEngine(nil)
	keys := e.SubscribeKeys()
	e.SetTool(ToolDraw)
	mouseDrag(e, Vec2{0, 0}, Vec2{10, 10})
	if keys.HandleKey(KeyEvent{Key: KeyZ, Down: true}) {
		t.Error("bare z handled")
	}
	if len(board.Elements()) != 1 {
		t.Error("bare z undid the stroke")
	}
}

func TestEscapePriority(t *testing.T) {
	_, e := newTestEngine([]Element{
		{ID: "t", Type: ElementText, X: 0, Y: 0, Width: 50, Height: 10},
	})
	keys := e.SubscribeKeys()
	e.StartTextEdit("t")

	esc := KeyEvent{Key: KeyEscape, Down: true}
	if !keys.HandleKey(esc) || e.EditingID() != "" {
		t.Fatalf("first escape: editing = %q", e.EditingID())
	}
	if len(e.Selection()) != 1 {
		t.Errorf("ending the edit cleared the selection")
	}
	if !keys.HandleKey(esc) || len(e.Selection()) != 0 {
		t.Errorf("second escape: selection = %v", e.Selection())
	}
	if keys.HandleKey(esc) {
		t.Error("escape with nothing to dismiss was handled")
	}
}

func TestEscapeCancelsCrop(t *testing.T) {
	_, e := newTestEngine([]Element{
		{ID: "img", Type: ElementImage, X: 0, Y: 0, Width: 100, Height: 80},
	})
	keys := e.SubscribeKeys()
	if !e.StartCrop("img", 0) {
		t.Fatal("StartCrop failed")
	}
	keys.HandleKey(KeyEvent{Key: KeyEscape, Down: true})
	if _, ok := e.CropSession(); ok {
		t.Error("crop still open after escape")
	}
}

func TestShortcutsIgnoredWhileEditing(t *testing.T) {
	board, e := newTestEngine([]Element{
		{ID: "t", Type: ElementText, X: 0, Y: 0, Width: 50, Height: 10},
	})
	keys := e.SubscribeKeys()
	e.StartTextEdit("t")
	for _, ev := range []KeyEvent{
		{Key: KeySpace, Down: true},
		{Key: KeyBackspace, Down: true},
		{Key: KeyZ, Down: true, Modifiers: ModCtrl},
	} {
		if keys.HandleKey(ev) {
			t.Errorf("key %v handled while editing", ev.Key)
		}
	}
	if len(board.Elements()) != 1 {
		t.Error("text element deleted while editing")
	}
	if e.spaceHeld() {
		t.Error("space recorded while editing")
	}
}

func TestDeleteKey(t *testing.T) {
	board, e := newTestEngine([]Element{rectEl("a", 0, 0, 10, 10), rectEl("b", 50, 0, 10, 10)})
	keys := e.SubscribeKeys()
	if keys.HandleKey(KeyEvent{Key: KeyDelete, Down: true}) {
		t.Error("delete with empty selection handled")
	}
	e.SetSelection([]string{"a"})
	if !keys.HandleKey(KeyEvent{Key: KeyBackspace, Down: true}) {
		t.Fatal("backspace not handled")
	}
	if els := board.Elements(); len(els) != 1 || els[0].ID != "b" {
		t.Errorf("elements = %+v, want only b", els)
	}
}

func TestKeySubscriptionClose(t *testing.T) {
	_, e := newTestEngine(nil)
	first := e.SubscribeKeys()
	first.HandleKey(KeyEvent{Key: KeySpace, Down: true})
	if !e.spaceHeld() {
		t.Fatal("space not held")
	}

	second := e.SubscribeKeys()
	if e.spaceHeld() {
		t.Error("space still held after resubscribing")
	}
	if first.HandleKey(KeyEvent{Key: KeySpace, Down: true}) {
		t.Error("replaced subscription still handles keys")
	}

	second.Close()
	second.Close()
	if second.HandleKey(KeyEvent{Key: KeySpace, Down: true}) || e.spaceHeld() {
		t.Error("closed subscription handles keys")
	}
}

func TestParseKey(t *testing.T) {
	for name, want := range keyNames {
		if got, ok := ParseKey(name); !ok || got != want {
			t.Errorf("ParseKey(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseKey("f13"); ok {
		t.Error("ParseKey accepted an unbound key")
	}
}
