package quill

import (
	"fmt"
	"strings"
)

// CommitPolicy decides whether a commit that leaves the board unchanged still
// records an undo step.
type CommitPolicy uint8

const (
	// CommitAlways records one undo step per mutating gesture, even a no-op.
	CommitAlways CommitPolicy = iota
	// CommitIfChanged skips the checkpoint when the result equals the current one.
	CommitIfChanged
)

// String returns the policy name used in configuration.
func (p CommitPolicy) String() string {
	if p == CommitIfChanged {
		return "if-changed"
	}
	return "always"
}

// UnmarshalText parses "always" or "if-changed".
func (p *CommitPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "always":
		*p = CommitAlways
	case "if-changed", "ifchanged", "changed":
		*p = CommitIfChanged
	default:
		return fmt.Errorf("unknown commit policy %q", text)
	}
	return nil
}

// History is a linear list of element-list snapshots. Entries beyond Index
// form the redo stack. 0 <= Index < Len always holds.
type History struct {
	entries [][]Element
	index   int
}

// NewHistory creates a history whose only entry is initial.
func NewHistory(initial []Element) *History {
	return &History{entries: [][]Element{cloneElements(initial)}}
}

// Index returns the current checkpoint index.
func (h *History) Index() int { return h.index }

// Len returns the number of checkpoints including the redo stack.
func (h *History) Len() int { return len(h.entries) }

// Current returns a copy of the snapshot at Index.
func (h *History) Current() []Element { return cloneElements(h.entries[h.index]) }

// Entry returns a copy of snapshot i.
func (h *History) Entry(i int) []Element { return cloneElements(h.entries[i]) }

// Push records snapshot at Index+1, discarding any redo entries.
func (h *History) Push(snapshot []Element) {
	h.entries = append(h.entries[:h.index+1], cloneElements(snapshot))
	h.index = len(h.entries) - 1
}

// Undo steps back one checkpoint. Returns false at the floor.
func (h *History) Undo() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Redo steps forward one checkpoint. Returns false at the ceiling.
func (h *History) Redo() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// CanUndo reports whether Undo would move.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether Redo would move.
func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Board is an in-memory ElementStore and TransformStore backed by a History.
// It is the commit boundary between live edits and undo checkpoints.
type Board struct {
	live      []Element
	history   *History
	transform Transform
	policy    CommitPolicy
}

// NewBoard creates a board holding initial as its first checkpoint.
func NewBoard(initial []Element, policy CommitPolicy) *Board {
	return &Board{
		live:      cloneElements(initial),
		history:   NewHistory(initial),
		transform: IdentityTransform,
		policy:    policy,
	}
}

// History exposes the board's checkpoint list.
func (b *Board) History() *History { return b.history }

// Elements returns the live element list. Callers must not mutate it.
func (b *Board) Elements() []Element { return b.live }

// SetElements applies update to a copy of the live list. With commit set the
// result is also checkpointed.
func (b *Board) SetElements(update func([]Element) []Element, commit bool) {
	if commit {
		b.CommitAction(update)
		return
	}
	b.live = update(cloneElements(b.live))
}

// CommitAction applies update and pushes the result as a new checkpoint.
func (b *Board) CommitAction(update func([]Element) []Element) {
	next := update(cloneElements(b.live))
	b.live = next
	if b.policy == CommitIfChanged && equalElements(next, b.history.entries[b.history.index]) {
		Logger().Debug("quill: commit skipped, board unchanged", "index", b.history.index)
		return
	}
	b.history.Push(next)
	Logger().Debug("quill: commit", "index", b.history.index, "elements", len(next))
}

// Descendants returns every element below id in the parent hierarchy.
func (b *Board) Descendants(id string, all []Element) []Element {
	return descendants(id, all)
}

// Undo restores the previous checkpoint without pushing a new one.
func (b *Board) Undo() bool {
	if !b.history.Undo() {
		return false
	}
	b.live = b.history.Current()
	return true
}

// Redo restores the next checkpoint without pushing a new one.
func (b *Board) Redo() bool {
	if !b.history.Redo() {
		return false
	}
	b.live = b.history.Current()
	return true
}

// Transform returns the current view transform.
func (b *Board) Transform() Transform { return b.transform }

// UpdateTransformSilent replaces the view transform outside undo history.
func (b *Board) UpdateTransformSilent(update func(Transform) Transform) {
	b.transform = update(b.transform)
}
