package registry

import (
	"testing"

	"github.com/vovakirdan/tui-circuit/internal/core"
)

// stubGame is a minimal Game used to exercise the registry without pulling
// in a real mode.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game {
		return &stubGame{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_alpha", stubFactory("stub_alpha", "Alpha"))

	g, err := Create("stub_alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_alpha" || g.Title() != "Alpha" {
		t.Errorf("created game = %s/%s, want stub_alpha/Alpha", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("stub_alpha")
	if g == g2 {
		t.Error("Create should return a new instance each call")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", stubFactory("stub_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub_dup", stubFactory("stub_dup", "Dup"))
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Error("Create should fail for an unregistered ID")
	}
}

func TestExists(t *testing.T) {
	Register("stub_exists", stubFactory("stub_exists", "Exists"))

	if !Exists("stub_exists") {
		t.Error("Exists should report registered modes")
	}
	if Exists("stub_missing") {
		t.Error("Exists should not report unregistered modes")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_zz", stubFactory("stub_zz", "Last"))
	Register("stub_aa", stubFactory("stub_aa", "First"))

	list := List()
	if len(list) < 2 {
		t.Fatalf("List returned %d entries", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}

	byID := make(map[string]string, len(list))
	for _, info := range list {
		byID[info.ID] = info.Title
	}
	if byID["stub_aa"] != "First" || byID["stub_zz"] != "Last" {
		t.Error("List should carry the registered titles")
	}
}
