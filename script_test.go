package gameinput

import "testing"

func TestScriptEdgeSequence(t *testing.T) {
	s := NewScript(
		Frame{X: 10, Y: 10},
		Frame{X: 11, Y: 10},
		Frame{X: 12, Y: 10},
		Frame{X: 13, Y: 10},
		Frame{X: 14, Y: 10, Down: true},
		Frame{X: 15, Y: 10, Down: true},
		Frame{X: 16, Y: 10, Down: true},
		Frame{X: 17, Y: 10, Down: true},
	)

	want := []bool{false, false, false, false, true, false, false, false}
	for i, w := range want {
		s.Advance()
		if got := s.InteractPressed(); got != w {
			t.Errorf("tick %d: InteractPressed() = %v, want %v", i+1, got, w)
		}
	}
}

func TestScriptIdempotentQueries(t *testing.T) {
	s := NewScript(Frame{X: 120, Y: 340, Down: true})
	s.Advance()

	// Repeated queries within the same tick return identical values.
	for i := 0; i < 3; i++ {
		x, y := s.PointerPosition()
		if x != 120 || y != 340 {
			t.Errorf("query %d: PointerPosition() = (%v, %v), want (120, 340)", i, x, y)
		}
		if !s.InteractPressed() {
			t.Errorf("query %d: Expected InteractPressed to stay true within the tick", i)
		}
	}
}

func TestScriptHoldsLastFrame(t *testing.T) {
	s := NewScript(
		Frame{X: 1, Y: 2},
		Frame{X: 3, Y: 4, Down: true},
	)
	s.Advance()
	s.Advance()
	if !s.InteractPressed() {
		t.Error("Expected press edge on second frame")
	}

	// Advancing past the end holds the last frame with its edge spent.
	for i := 0; i < 3; i++ {
		s.Advance()
		x, y := s.PointerPosition()
		if x != 3 || y != 4 {
			t.Errorf("past-end tick %d: PointerPosition() = (%v, %v), want (3, 4)", i, x, y)
		}
		if s.InteractPressed() {
			t.Errorf("past-end tick %d: Expected no press edge", i)
		}
	}
}

func TestScriptEmpty(t *testing.T) {
	s := NewScript()
	s.Advance()
	if x, y := s.PointerPosition(); x != 0 || y != 0 {
		t.Errorf("PointerPosition() = (%v, %v), want (0, 0)", x, y)
	}
	if s.InteractPressed() {
		t.Error("Expected no press from an empty script")
	}
}
