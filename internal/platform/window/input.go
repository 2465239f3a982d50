package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// touchThreshold is the horizontal drag, in pixels, that steers.
const touchThreshold = 10

// keyBindings maps actions to the keys that trigger them. Held controls
// follow the key-down state, everything else fires on the press edge.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionAnswerYes, []ebiten.Key{ebiten.KeyY, ebiten.Key1}},
	{core.ActionAnswerNo, []ebiten.Key{ebiten.KeyN, ebiten.Key2}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// keyState is the keyboard as seen in one Update.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// readKeys fills frame from the keyboard.
func readKeys(ks keyState, frame *core.InputFrame) {
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if (b.action.Held() && ks.Pressed(k)) || ks.JustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// pointer tracks which input source owns the running touch.
type pointer int

const (
	pointerNone pointer = iota
	pointerTouch
	pointerMouse
)

// pointerState is touch and mouse input as seen in one Update.
type pointerState interface {
	JustPressedTouches() []ebiten.TouchID
	TouchX(id ebiten.TouchID) int
	TouchReleased(id ebiten.TouchID) bool
	MouseJustPressed() bool
	MouseJustReleased() bool
	MouseX() int
}

// touchInput turns one touch or a left-button drag into held controls.
// The first finger down owns the gesture until it lifts.
type touchInput struct {
	tracker *core.TouchTracker
	held    *core.HeldControls
	owner   pointer
	id      ebiten.TouchID
}

func newTouchInput() *touchInput {
	return &touchInput{
		tracker: core.NewTouchTracker(touchThreshold),
		held:    core.NewHeldControls(0),
	}
}

func (t *touchInput) update(ps pointerState, frame *core.InputFrame, now time.Time) {
	switch t.owner {
	case pointerNone:
		if ids := ps.JustPressedTouches(); len(ids) > 0 {
			t.owner, t.id = pointerTouch, ids[0]
			t.tracker.Start(float64(ps.TouchX(t.id)), t.held, now)
		} else if ps.MouseJustPressed() {
			t.owner = pointerMouse
			t.tracker.Start(float64(ps.MouseX()), t.held, now)
		}

	case pointerTouch:
		if ps.TouchReleased(t.id) {
			t.end()
		} else {
			t.tracker.Move(float64(ps.TouchX(t.id)), t.held, now)
		}

	case pointerMouse:
		if ps.MouseJustReleased() {
			t.end()
		} else {
			t.tracker.Move(float64(ps.MouseX()), t.held, now)
		}
	}

	t.held.Apply(frame, now)
}

func (t *touchInput) end() {
	t.tracker.End(t.held)
	t.owner = pointerNone
}
