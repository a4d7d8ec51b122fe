package quill

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventGestureStart    EventType = iota // a gesture variant became current
	EventGestureEnd                       // the current gesture ended (up or cancel)
	EventCommit                           // a gesture or command recorded an undo checkpoint
	EventSelectionChange                  // the selected id set changed
	EventTextEditStart                    // a text element entered edit mode
	EventTextEditEnd                      // text edit mode ended
	EventCropConfirm                      // the crop box was confirmed; Crop holds it
	EventCropCancel                       // the crop session was discarded
	EventToolChange                       // the active tool changed
	EventUndo                             // history stepped back
	EventRedo                             // history stepped forward
	eventTypeCount
)

// Event carries engine state changes to listeners and bridges.
type Event struct {
	Type       EventType
	Mode       InteractionMode
	ElementIDs []string
	Tool       Tool
	Crop       Rect
	Cancelled  bool
}

// EventSink is the interface for optional bridges (e.g. an ECS world).
// When set on an Engine every event is forwarded to it after the callbacks.
type EventSink interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

// On registers fn for events of type t.
func (e *Engine) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount {
		return CallbackHandle{}
	}
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.byType[t] = append(e.handlers.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: t}
}

// SetEventSink sets the optional event bridge.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *Engine) emit(ev Event) {
	for _, h := range e.handlers.byType[ev.Type] {
		h.fn(ev)
	}
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}
