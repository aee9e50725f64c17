package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestNewLook(t *testing.T) {
	tests := []struct {
		name string
		look mgl32.Vec3
		want mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -1}},
		{"east", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"south", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}},
		{"unnormalized", mgl32.Vec3{3, 0, 4}, mgl32.Vec3{0.6, 0, 0.8}},
		{"zero faces -Z", mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}},
		{"tilted", mgl32.Vec3{1, -0.3, 1}, mgl32.Vec3{1, -0.3, 1}.Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{}, tt.look)
			if got := c.Look(); !got.ApproxEqualThreshold(tt.want, eps) {
				t.Errorf("Look() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookIsUnitAndOrthogonalToRight(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{1, 0.5, -2})
	for range 10 {
		c.HandleMouse(37, -11)
		look := c.Look()
		if d := look.Len() - 1; d > eps || d < -eps {
			t.Fatalf("|Look()| = %v, want 1", look.Len())
		}
		if dot := look.Dot(c.Right()); dot > eps || dot < -eps {
			t.Fatalf("Look().Right() = %v, want 0", dot)
		}
	}
}

func TestPitchClamped(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	c.HandleMouse(0, -100000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleMouse(0, 100000)
	if c.Pitch != -c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -c.MaxPitch)
	}
}

func TestHandleMovement(t *testing.T) {
	c := New(mgl32.Vec3{10, 0, 10}, mgl32.Vec3{0, 0, -1})
	c.Speed = 100

	c.HandleMovement(1, 0, 0, 0.5)
	if want := (mgl32.Vec3{10, 0, -40}); !c.Pos.ApproxEqualThreshold(want, eps) {
		t.Errorf("after forward Pos = %v, want %v", c.Pos, want)
	}

	c.HandleMovement(0, 1, 0, 0.1)
	if want := (mgl32.Vec3{20, 0, -40}); !c.Pos.ApproxEqualThreshold(want, eps) {
		t.Errorf("after strafe Pos = %v, want %v", c.Pos, want)
	}

	c.HandleMovement(0, 0, -1, 0.2)
	if want := (mgl32.Vec3{20, -20, -40}); !c.Pos.ApproxEqualThreshold(want, eps) {
		t.Errorf("after descend Pos = %v, want %v", c.Pos, want)
	}
}

func TestViewMatrixLooksAlongLook(t *testing.T) {
	c := New(mgl32.Vec3{5, 6, 7}, mgl32.Vec3{1, 0, 0})
	ahead := c.Position().Add(c.Look().Mul(10))
	p := c.ViewMatrix().Mul4x1(ahead.Vec4(1))
	// A point straight ahead lands on the view -Z axis.
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -10}, eps) {
		t.Errorf("view-space point = %v, want (0, 0, -10)", p.Vec3())
	}
}
