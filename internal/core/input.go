package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - menu navigation
	ActionDown             // S, Down arrow - menu navigation
	ActionLeft             // A, Left arrow - move left (held)
	ActionRight            // D, Right arrow - move right (held)
	ActionFire             // Space - fire (held)
	ActionConfirm          // Enter - start / confirm
	ActionBack             // B, Escape - go back
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionAnswerYes        // Y, 1 - affirmative answer in modal prompts
	ActionAnswerNo         // N, 2 - negative answer in modal prompts
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionAnswerYes:
		return "Yes"
	case ActionAnswerNo:
		return "No"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous control (kept pressed)
// rather than a one-shot command.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight || a == ActionFire
}

// InputFrame represents the input state for a single tick.
// Actions holds both the currently pressed controls and one-shot commands.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// Now is the host wall-clock time of this tick.
	Now time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// NewInputFrameAt creates an empty input frame stamped with the given time.
func NewInputFrameAt(now time.Time) InputFrame {
	f := NewInputFrame()
	f.Now = now
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrameAt(f.Now)
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldControls is the pressed-control set fed by input handlers.
// Terminals deliver key repeats but no key-up, so a press counts as held
// until Window has elapsed without a repeat. Hosts with real key-up events
// call Release directly.
type HeldControls struct {
	Window  time.Duration
	pressed map[Action]time.Time
}

// NewHeldControls creates an empty set with the given hold window.
func NewHeldControls(window time.Duration) *HeldControls {
	return &HeldControls{
		Window:  window,
		pressed: make(map[Action]time.Time),
	}
}

// Press marks a control as held as of now. Pressing one direction releases
// the opposite, since a terminal cannot report both at once.
func (h *HeldControls) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.pressed, ActionRight)
	case ActionRight:
		delete(h.pressed, ActionLeft)
	}
	h.pressed[a] = now
}

// Release drops a control immediately.
func (h *HeldControls) Release(a Action) {
	delete(h.pressed, a)
}

// ReleaseAll drops every control.
func (h *HeldControls) ReleaseAll() {
	clear(h.pressed)
}

// IsHeld reports whether a control is held at time now.
func (h *HeldControls) IsHeld(a Action, now time.Time) bool {
	at, ok := h.pressed[a]
	if !ok {
		return false
	}
	if h.Window > 0 && now.Sub(at) > h.Window {
		return false
	}
	return true
}

// Apply copies every held control into the frame, forgetting stale ones.
func (h *HeldControls) Apply(f *InputFrame, now time.Time) {
	for a := range h.pressed {
		if h.IsHeld(a, now) {
			f.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
}

// TouchTracker translates pointer gestures (touch or mouse drag) into the
// logical control set. A touch holds fire; horizontal movement beyond
// Threshold since the last anchor holds left or right.
type TouchTracker struct {
	Threshold float64

	active  bool
	anchorX float64
}

// NewTouchTracker creates a tracker with the given horizontal threshold,
// expressed in the caller's coordinate units.
func NewTouchTracker(threshold float64) *TouchTracker {
	return &TouchTracker{Threshold: threshold}
}

// Active reports whether a touch is in progress.
func (t *TouchTracker) Active() bool {
	return t.active
}

// Start begins a touch at x. Firing starts with the touch.
func (t *TouchTracker) Start(x float64, held *HeldControls, now time.Time) {
	t.active = true
	t.anchorX = x
	held.Press(ActionFire, now)
}

// Move updates a touch. Direction controls change only once the pointer
// travelled further than Threshold; the anchor then follows the pointer.
func (t *TouchTracker) Move(x float64, held *HeldControls, now time.Time) {
	if !t.active {
		return
	}
	held.Press(ActionFire, now)
	delta := x - t.anchorX
	switch {
	case delta > t.Threshold:
		held.Release(ActionLeft)
		held.Press(ActionRight, now)
		t.anchorX = x
	case delta < -t.Threshold:
		held.Release(ActionRight)
		held.Press(ActionLeft, now)
		t.anchorX = x
	}
}

// End finishes a touch and releases everything it held.
func (t *TouchTracker) End(held *HeldControls) {
	t.active = false
	held.Release(ActionFire)
	held.Release(ActionLeft)
	held.Release(ActionRight)
}
