package systems

import (
	"math"
	"testing"

	"github.com/automoto/loopjump/components"
	"github.com/solarlune/resolv"
)

func TestCastRay(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	floor := resolv.NewObject(0, 0, 256, 16, "solid")
	ledge := resolv.NewObject(100, 40, 32, 8, "solid")
	decor := resolv.NewObject(0, 20, 256, 4, "decor")
	self := resolv.NewObject(90, 60, 20, 10, "solid")
	space.Add(floor, ledge, decor, self)

	tests := []struct {
		name    string
		ox, oy  float64
		maxDist float64
		want    *resolv.Object
		toi     float64
		ok      bool
	}{
		{"hits ledge first", 110, 65, 100, ledge, 17, true},
		{"misses ledge, hits floor", 50, 65, 100, floor, 49, true},
		{"out of range", 50, 65, 10, nil, 0, false},
		{"origin inside", 10, 8, 10, floor, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, toi, ok := CastRay(space, tt.ox, tt.oy, 0, -1, tt.maxDist, self, "solid")
			if ok != tt.ok || hit != tt.want {
				t.Fatalf("CastRay = (%v, %v), want (%v, %v)", hit, ok, tt.want, tt.ok)
			}
			if ok && math.Abs(toi-tt.toi) > 1e-9 {
				t.Errorf("toi = %v, want %v", toi, tt.toi)
			}
		})
	}
}

func TestCastRayNormalisesDirection(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	wall := resolv.NewObject(100, 0, 16, 256, "solid")
	space.Add(wall)

	_, toi, ok := CastRay(space, 50, 50, 10, 0, 100, nil)
	if !ok || toi != 50 {
		t.Fatalf("got (%v, %v), want (50, true)", toi, ok)
	}
}

func TestIntersectionsRejectsTouchingEdges(t *testing.T) {
	space := resolv.NewSpace(128, 128, 16, 16)
	sensor := resolv.NewObject(10, 10, 10, 10, "sensor")
	touching := resolv.NewObject(20, 10, 10, 10, "solid")
	overlapping := resolv.NewObject(5, 5, 6, 6, "solid")
	other := resolv.NewObject(12, 12, 2, 2, "pickup")
	space.Add(sensor, touching, overlapping, other)

	got := Intersections(sensor, "solid")
	if len(got) != 1 || got[0] != overlapping {
		t.Fatalf("Intersections = %v, want only the overlapping solid", got)
	}
	if got := Intersections(resolv.NewObject(0, 0, 1, 1), "solid"); got != nil {
		t.Errorf("object outside any space returned %v", got)
	}
}

func TestResolveStopsFlushAgainstSolid(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	floor := resolv.NewObject(0, 0, 256, 16, "solid")
	wall := resolv.NewObject(100, 16, 16, 64, "solid")
	body := resolv.NewObject(80, 20, 14, 10)
	space.Add(floor, wall, body)

	var physics components.PhysicsData
	physics.Velocity.X = 300
	resolveHorizontal(&physics, body, 10)
	if body.X+body.W != 100 {
		t.Errorf("right edge = %v, want flush at 100", body.X+body.W)
	}
	if physics.Velocity.X != 0 {
		t.Errorf("vx = %v, want 0 after hitting the wall", physics.Velocity.X)
	}

	physics.Velocity.Y = -300
	resolveVertical(&physics, body, -10)
	if body.Y != 16 || !physics.OnGround {
		t.Errorf("y = %v onGround = %v, want 16 and grounded", body.Y, physics.OnGround)
	}
}

func TestWrapAndLoop(t *testing.T) {
	const w = 1600.0
	wrapTests := []struct{ in, want float64 }{
		{0, 0}, {1650, 50}, {-50, 1550}, {3200, 0},
	}
	for _, tt := range wrapTests {
		if got := wrap(tt.in, w); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Any position a bounded per-frame step can reach lands back inside
	// [-W/2, 3W/2] after one teleport.
	for x := -0.5*w - 100; x <= 1.5*w+100; x += 7 {
		got := loopX(x, w)
		if got < -0.5*w || got > 1.5*w {
			t.Fatalf("loopX(%v) = %v, outside range", x, got)
		}
		if loopX(got, w) != got {
			t.Fatalf("loopX not idempotent at %v", x)
		}
	}
}
