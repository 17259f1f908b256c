package registry

import (
	"testing"

	"github.com/vovakirdan/pushlife/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string {
	return f.id
}

func (f *fakeGame) Title() string {
	return "Fake " + f.id
}

func (f *fakeGame) Description() string {
	return "a test double"
}

func (f *fakeGame) Reset(core.RuntimeConfig) {}

func (f *fakeGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (f *fakeGame) Render(*core.Screen) {}

func (f *fakeGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	if !Exists("zz_fake") {
		t.Fatal("Exists(zz_fake) should be true")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_fake" {
		t.Errorf("ID() = %q, expected zz_fake", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = true
			if info.Title != "Fake zz_fake" || info.Description != "a test double" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include zz_fake")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}
