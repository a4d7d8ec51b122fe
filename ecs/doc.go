// Package ecs bridges quill's engine event stream into a [Donburi] world.
//
// [NewDonburiSink] publishes gesture start/end, commit, undo/redo, selection
// change, text edit and crop confirm events as [BoardEventType] events.
// Systems subscribe once and receive them on ProcessEvents:
//
//	engine.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.BoardEventType.Subscribe(world, func(w donburi.World, ev quill.Event) {
//		if ev.Type == quill.EventCropConfirm {
//			applyCrop(w, ev.ElementIDs[0], ev.Crop)
//		}
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
