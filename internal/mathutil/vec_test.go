package mathutil

import "testing"

func TestVec2Ops(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}

	if got := a.Sub(b); got != (Vec2{-2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot = %g, want 1", got)
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 0, 0.5}
	b := Vec3{0, 1, 0.5}

	if got := a.Add(b); got != (Vec3{1, 1, 1}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 0, 1}) {
		t.Errorf("Scale = %v", got)
	}
}
