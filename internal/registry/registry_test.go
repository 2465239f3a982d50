package registry

import (
	"testing"

	"github.com/vovakirdan/void-arcade/internal/core"
)

type stubGame struct{ id, title string }

func (s *stubGame) ID() string                         { return s.id }
func (s *stubGame) Title() string                      { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)           {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                {}
func (s *stubGame) State() core.GameState              { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-test-b", func() Game { return &stubGame{"zz-test-b", "B"} })
	Register("zz-test-a", func() Game { return &stubGame{"zz-test-a", "A"} })

	if !Exists("zz-test-a") || Exists("zz-test-missing") {
		t.Error("Exists() returned wrong result")
	}
	if Title("zz-test-b") != "B" || Title("zz-test-missing") != "zz-test-missing" {
		t.Error("Title() returned wrong result")
	}

	list := List()
	ia, ib := -1, -1
	for i, g := range list {
		switch g.ID {
		case "zz-test-a":
			ia = i
		case "zz-test-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should contain both games sorted by ID, got %+v", list)
	}

	g, err := Create("zz-test-a")
	if err != nil || g.Title() != "A" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Game { return &stubGame{"zz-test-dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-test-dup", func() Game { return &stubGame{"zz-test-dup", "Dup"} })
}
