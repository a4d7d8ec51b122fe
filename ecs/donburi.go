package ecs

import (
	"slices"

	"github.com/phanxgames/quill"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BoardEventType carries quill engine events through a Donburi world.
var BoardEventType = events.NewEventType[quill.Event]()

type donburiSink struct {
	world donburi.World
	only  []quill.EventType
}

// NewDonburiSink returns an EventSink that publishes engine events on
// BoardEventType in world. Systems see them on the next ProcessEvents call,
// so a commit, a selection change or a crop confirm lands in the same frame
// order as the rest of the world's events.
//
// When only is non-empty, events of other types are dropped. A system that
// only persists edits can pass quill.EventCommit, quill.EventUndo and
// quill.EventRedo and skip the per-gesture chatter.
func NewDonburiSink(world donburi.World, only ...quill.EventType) quill.EventSink {
	return &donburiSink{world: world, only: only}
}

func (s *donburiSink) EmitEvent(event quill.Event) {
	if len(s.only) > 0 && !slices.Contains(s.only, event.Type) {
		return
	}
	BoardEventType.Publish(s.world, event)
}
