package ecs

import (
	"testing"

	"github.com/phanxgames/quill"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []quill.Event
	BoardEventType.Subscribe(world, func(w donburi.World, e quill.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(quill.Event{Type: quill.EventGestureStart, Mode: quill.ModeDraw})
	sink.EmitEvent(quill.Event{
		Type:       quill.EventCropConfirm,
		ElementIDs: []string{"img"},
		Crop:       quill.Rect{X: 1, Y: 2, Width: 30, Height: 40},
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before ProcessEvents, got %d", len(received))
	}
	BoardEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != quill.EventGestureStart || received[0].Mode != quill.ModeDraw {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Crop.Width != 30 || received[1].ElementIDs[0] != "img" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_EngineEvents(t *testing.T) {
	world := donburi.NewWorld()
	board := quill.NewBoard(nil, quill.CommitAlways)
	engine := quill.NewEngine(board, board, quill.StaticSurface{Width: 800, Height: 600})
	engine.SetEventSink(NewDonburiSink(world))

	var commits int
	BoardEventType.Subscribe(world, func(w donburi.World, e quill.Event) {
		if e.Type == quill.EventCommit {
			commits++
		}
	})

	engine.SetTool(quill.ToolDraw)
	engine.PointerDown(quill.PointerEvent{ID: 1, Screen: quill.Vec2{X: 10, Y: 10}})
	engine.PointerMove(quill.PointerEvent{ID: 1, Screen: quill.Vec2{X: 20, Y: 20}})
	engine.PointerUp(quill.PointerEvent{ID: 1, Screen: quill.Vec2{X: 20, Y: 20}})
	BoardEventType.ProcessEvents(world)

	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}
}

func TestDonburiSink_FiltersTypes(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, quill.EventCommit, quill.EventUndo)

	var got []quill.EventType
	BoardEventType.Subscribe(world, func(w donburi.World, e quill.Event) {
		got = append(got, e.Type)
	})

	sink.EmitEvent(quill.Event{Type: quill.EventGestureStart})
	sink.EmitEvent(quill.Event{Type: quill.EventCommit})
	sink.EmitEvent(quill.Event{Type: quill.EventSelectionChange})
	sink.EmitEvent(quill.Event{Type: quill.EventUndo})
	BoardEventType.ProcessEvents(world)

	if len(got) != 2 || got[0] != quill.EventCommit || got[1] != quill.EventUndo {
		t.Errorf("delivered %v, want [commit undo]", got)
	}
}
