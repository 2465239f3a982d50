package core

import (
	"testing"
	"time"
)

func TestInputFrameClone(t *testing.T) {
	now := time.Unix(100, 0)
	f := NewInputFrameAt(now)
	f.Set(ActionFire)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionFire) {
		t.Error("clone should keep actions after the original is cleared")
	}
	if !c.Now.Equal(now) {
		t.Errorf("clone Now = %v, expected %v", c.Now, now)
	}
	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
}

func TestHeldControlsWindow(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHeldControls(100 * time.Millisecond)
	h.Press(ActionRight, t0)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"same instant", 0, true},
		{"inside window", 80 * time.Millisecond, true},
		{"at window edge", 100 * time.Millisecond, true},
		{"after window", 101 * time.Millisecond, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.IsHeld(ActionRight, t0.Add(tc.at)); got != tc.expected {
				t.Errorf("IsHeld() = %v, expected %v", got, tc.expected)
			}
		})
	}

	// A repeat refreshes the press.
	h.Press(ActionRight, t0.Add(90*time.Millisecond))
	if !h.IsHeld(ActionRight, t0.Add(150*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}
}

func TestHeldControlsApplyDropsStale(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHeldControls(50 * time.Millisecond)
	h.Press(ActionLeft, t0)
	h.Press(ActionFire, t0.Add(40*time.Millisecond))

	f := NewInputFrame()
	h.Apply(&f, t0.Add(60*time.Millisecond))

	if f.Has(ActionLeft) {
		t.Error("stale press should not be applied")
	}
	if !f.Has(ActionFire) {
		t.Error("fresh press should be applied")
	}
	if h.IsHeld(ActionLeft, t0) {
		t.Error("Apply should forget stale presses")
	}
}

func TestTouchTracker(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHeldControls(0)
	tr := NewTouchTracker(10)

	tr.Start(100, h, now)
	if !h.IsHeld(ActionFire, now) {
		t.Fatal("touch start should hold fire")
	}

	tr.Move(105, h, now)
	if h.IsHeld(ActionRight, now) || h.IsHeld(ActionLeft, now) {
		t.Error("movement under threshold should not steer")
	}

	tr.Move(115, h, now)
	if !h.IsHeld(ActionRight, now) {
		t.Error("movement past threshold should hold right")
	}

	tr.Move(90, h, now)
	if !h.IsHeld(ActionLeft, now) || h.IsHeld(ActionRight, now) {
		t.Error("reversing past threshold should switch to left")
	}

	tr.End(h)
	for _, a := range []Action{ActionFire, ActionLeft, ActionRight} {
		if h.IsHeld(a, now) {
			t.Errorf("%s should be released on touch end", a)
		}
	}
	if tr.Active() {
		t.Error("tracker should be inactive after End")
	}
}
