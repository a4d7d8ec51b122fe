package quill

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string   `yaml:"action"`
	Pointer int      `yaml:"pointer,omitempty"`
	Kind    string   `yaml:"kind,omitempty"`
	Button  string   `yaml:"button,omitempty"`
	Mods    []string `yaml:"mods,omitempty"`
	Clicks  int      `yaml:"clicks,omitempty"`
	X       float64  `yaml:"x,omitempty"`
	Y       float64  `yaml:"y,omitempty"`
	FromX   float64  `yaml:"fromX,omitempty"`
	FromY   float64  `yaml:"fromY,omitempty"`
	ToX     float64  `yaml:"toX,omitempty"`
	ToY     float64  `yaml:"toY,omitempty"`
	Frames  int      `yaml:"frames,omitempty"`
	Ms      int      `yaml:"ms,omitempty"`
	Tool    string   `yaml:"tool,omitempty"`
	Key     string   `yaml:"key,omitempty"`
	Up      bool     `yaml:"up,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a recorded input script against an engine on a
// synthetic clock. It is used for reproducible gesture tests and demos.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	clock  time.Time
}

var errNoSteps = errors.New("no steps")

// LoadScript parses a YAML or JSON script of the form {"steps": [...]}.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", errNoSteps)
	}
	return &ScriptRunner{steps: s.Steps, clock: time.Unix(0, 0)}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool { return r.cursor >= len(r.steps) }

// Now returns the runner's synthetic clock.
func (r *ScriptRunner) Now() time.Time { return r.clock }

// Run executes all remaining steps against e.
func (r *ScriptRunner) Run(e *Engine) error {
	for !r.Done() {
		if err := r.Step(e); err != nil {
			return err
		}
	}
	return nil
}

// Step executes the next step. It returns an error naming the step on bad
// input; the cursor still advances.
func (r *ScriptRunner) Step(e *Engine) error {
	if r.Done() {
		return nil
	}
	i := r.cursor
	st := r.steps[i]
	r.cursor++
	if err := r.exec(e, st); err != nil {
		return fmt.Errorf("script step %d (%s): %w", i, st.Action, err)
	}
	return nil
}

func (r *ScriptRunner) exec(e *Engine, st scriptStep) error {
	switch st.Action {
	case "down", "move", "up", "cancel":
		ev, err := r.pointerEvent(st, Vec2{st.X, st.Y})
		if err != nil {
			return err
		}
		switch st.Action {
		case "down":
			e.PointerDown(ev)
		case "move":
			e.PointerMove(ev)
		case "up":
			e.PointerUp(ev)
		default:
			e.PointerCancel(ev)
		}
	case "drag":
		frames := max(st.Frames, 2)
		from, to := Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}
		ev, err := r.pointerEvent(st, from)
		if err != nil {
			return err
		}
		e.PointerDown(ev)
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			ev.Screen = from.Add(to.Sub(from).Scale(t))
			e.PointerMove(ev)
		}
		ev.Screen = to
		e.PointerMove(ev)
		e.PointerUp(ev)
	case "tick", "wait":
		r.clock = r.clock.Add(time.Duration(st.Ms) * time.Millisecond)
		e.Tick(r.clock)
	case "tool":
		t, ok := ParseTool(st.Tool)
		if !ok {
			return fmt.Errorf("unknown tool %q", st.Tool)
		}
		e.SetTool(t)
	case "key":
		k, ok := ParseKey(st.Key)
		if !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		mods, err := parseMods(st.Mods)
		if err != nil {
			return err
		}
		if e.keys == nil {
			e.SubscribeKeys()
		}
		e.keys.HandleKey(KeyEvent{Key: k, Down: !st.Up, Modifiers: mods})
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

func (r *ScriptRunner) pointerEvent(st scriptStep, screen Vec2) (PointerEvent, error) {
	kind := PointerMouse
	switch st.Kind {
	case "", "mouse":
	case "touch":
		kind = PointerTouch
	case "pen":
		kind = PointerPen
	default:
		return PointerEvent{}, fmt.Errorf("unknown pointer kind %q", st.Kind)
	}
	button := MouseButtonLeft
	switch st.Button {
	case "", "left":
	case "middle":
		button = MouseButtonMiddle
	case "right":
		button = MouseButtonRight
	default:
		return PointerEvent{}, fmt.Errorf("unknown button %q", st.Button)
	}
	mods, err := parseMods(st.Mods)
	if err != nil {
		return PointerEvent{}, err
	}
	return PointerEvent{
		ID:         st.Pointer,
		Kind:       kind,
		Screen:     screen,
		Button:     button,
		Modifiers:  mods,
		ClickCount: max(st.Clicks, 1),
		Time:       r.clock,
	}, nil
}

func parseMods(names []string) (KeyModifiers, error) {
	var m KeyModifiers
	for _, n := range names {
		switch n {
		case "shift":
			m |= ModShift
		case "ctrl":
			m |= ModCtrl
		case "alt":
			m |= ModAlt
		case "meta", "cmd":
			m |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}
