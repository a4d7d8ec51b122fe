// Package quill is the interaction engine of an infinite-canvas whiteboard.
//
// Quill turns raw pointer, touch and keyboard input into canvas-space edits:
// freehand drawing, shapes, arrows and lines, erasing, lasso and marquee
// selection, dragging with snap alignment, resize by handle, crop-box
// editing, and pan/zoom navigation including two-finger pinch. Every
// mutating gesture ends in exactly one undo checkpoint.
//
// # Quick start
//
// [Board] is a ready-made element store with linear undo history and a view
// transform. Pair it with an [Engine] and feed the engine pointer events:
//
//	board := quill.NewBoard(nil, quill.CommitAlways)
//	engine := quill.NewEngine(board, board, quill.StaticSurface{Width: 800, Height: 600})
//	engine.SetTool(quill.ToolDraw)
//	engine.PointerDown(quill.PointerEvent{ID: 0, Screen: quill.Vec2{X: 10, Y: 10}})
//	engine.PointerMove(quill.PointerEvent{ID: 0, Screen: quill.Vec2{X: 40, Y: 25}})
//	engine.PointerUp(quill.PointerEvent{ID: 0, Screen: quill.Vec2{X: 40, Y: 25}})
//
// Call [Engine.Tick] once per frame. It fires long presses, advances view
// animations and applies coalesced pan and zoom updates. The ebiteninput
// subpackage does all of this for Ebitengine games.
//
// # Coordinates
//
// Screen points are mapped to canvas points through the surface origin and
// the view [Transform]: canvas = (screen - origin - pan) / zoom. Thresholds
// in [Config] are screen pixels and are divided by zoom before use.
//
// # Touch
//
// Touch gestures are enabled once per engine from the [Platform] passed to
// [WithPlatform]. A single pointer edits with the active tool; a second
// pointer aborts that gesture and starts pinch-pan, anchored at the canvas
// point under the initial centroid. A stationary touch on empty canvas with
// the select tool turns into a marquee after [Config.LongPressDelay].
//
// # History
//
// Live edits go through [ElementStore.SetElements] without a checkpoint.
// When the gesture ends the engine calls [ElementStore.CommitAction] once.
// [CommitIfChanged] skips checkpoints for gestures that changed nothing.
//
// # Events
//
// Register callbacks with [Engine.On], or bridge every event into another
// system with [Engine.SetEventSink]; package ecs provides a Donburi bridge.
//
// # Configuration and logging
//
// [LoadConfig] reads an optional YAML file and QUILL_* environment variables
// on top of [DefaultConfig]. The package logs through [log/slog]; it is
// silent until [SetLogger] is called.
package quill
