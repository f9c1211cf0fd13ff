package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set action should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestHorizontalDir(t *testing.T) {
	f := NewInputFrame()

	if f.HorizontalDir() != 0 {
		t.Error("empty frame should have no horizontal direction")
	}

	f.Set(ActionLeft)
	if f.HorizontalDir() != -1 {
		t.Errorf("HorizontalDir() = %d, expected -1", f.HorizontalDir())
	}

	f.Clear()
	f.Set(ActionRight)
	if f.HorizontalDir() != 1 {
		t.Errorf("HorizontalDir() = %d, expected 1", f.HorizontalDir())
	}

	// Opposite directions cancel out
	f.Set(ActionLeft)
	if f.HorizontalDir() != 0 {
		t.Errorf("HorizontalDir() with both directions = %d, expected 0", f.HorizontalDir())
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	c := f.Clone()
	if !c.Has(ActionJump) {
		t.Error("clone should carry the original's actions")
	}

	c.Set(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("mutating the clone should not affect the original")
	}
}
