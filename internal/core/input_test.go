package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionSelect) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionSelect)
	f.Set(ActionDown)
	if !f.Has(ActionSelect) || !f.Has(ActionDown) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all input")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFramePointersKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(Pointer{Kind: PointerPress, X: 1, Y: 1})
	f.AddPointer(Pointer{Kind: PointerMotion, X: 2, Y: 1})
	f.AddPointer(Pointer{Kind: PointerMotion, X: 5, Y: 3})
	f.AddPointer(Pointer{Kind: PointerRelease, X: 5, Y: 3})

	got := f.Pointers()
	if len(got) != 3 {
		t.Fatalf("expected consecutive motions to coalesce into 3 events, got %d", len(got))
	}
	if got[0].Kind != PointerPress || got[1].Kind != PointerMotion || got[2].Kind != PointerRelease {
		t.Errorf("unexpected event order: %+v", got)
	}
	if got[1].X != 5 || got[1].Y != 3 {
		t.Errorf("coalesced motion should keep the latest position, got (%d, %d)", got[1].X, got[1].Y)
	}
}

func TestInputFrameClearActionsKeepsPointers(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.AddPointer(Pointer{Kind: PointerRelease, X: 4, Y: 2})

	f.ClearActions()
	if f.Has(ActionPause) {
		t.Error("ClearActions should drop actions")
	}
	if got := f.Pointers(); len(got) != 1 || got[0].Kind != PointerRelease {
		t.Errorf("ClearActions should keep pointer events, got %+v", got)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNext)
	f.AddPointer(Pointer{Kind: PointerPress})

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionNext) || len(c.Pointers()) != 1 {
		t.Error("clone should be independent of the original")
	}
}

func TestActionChoiceIndex(t *testing.T) {
	tests := []struct {
		action Action
		index  int
		ok     bool
	}{
		{ActionChoice1, 0, true},
		{ActionChoice4, 3, true},
		{ActionSelect, -1, false},
	}

	for _, tc := range tests {
		idx, ok := tc.action.ChoiceIndex()
		if idx != tc.index || ok != tc.ok {
			t.Errorf("%s.ChoiceIndex() = (%d, %v), expected (%d, %v)", tc.action, idx, ok, tc.index, tc.ok)
		}
	}
}

func TestTicksFor(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.TicksFor(2000); got != 120 {
		t.Errorf("TicksFor(2000) at 60 tps = %d, expected 120", got)
	}
	if got := cfg.TicksFor(1); got != 1 {
		t.Errorf("TicksFor(1) = %d, expected at least one tick", got)
	}
	if got := cfg.TicksFor(0); got != 0 {
		t.Errorf("TicksFor(0) = %d, expected 0", got)
	}

	cfg.TickRate = 0
	if got := cfg.TicksFor(1000); got != 60 {
		t.Errorf("TicksFor with zero tick rate = %d, expected fallback to 60", got)
	}
}
