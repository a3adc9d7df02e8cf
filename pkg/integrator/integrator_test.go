package integrator

import (
	"math/rand"
	"testing"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/geometry"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
)

func TestRayColorSkyGradient(t *testing.T) {
	world := geometry.NewSphereList(0)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "Straight up is sky blue",
			direction: core.NewVec3(0, 1, 0),
			expected:  core.NewVec3(0.5, 0.7, 1.0),
		},
		{
			name:      "Straight down is white",
			direction: core.NewVec3(0, -1, 0),
			expected:  core.NewVec3(1, 1, 1),
		},
		{
			name:      "Horizontal is the midpoint",
			direction: core.NewVec3(1, 0, 0),
			expected:  core.NewVec3(0.75, 0.85, 1.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := RayColor(ray, world, 0, &rec, random)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColorEnclosedTerminatesBlack(t *testing.T) {
	// A ray trapped inside a diffuse shell can never reach the sky, so the
	// recursion must stop at the depth limit and contribute no light
	world := geometry.NewSphereList(1)
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))))
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		direction := core.RandomInUnitSphere(random)
		if direction.LengthSquared() == 0 {
			continue
		}
		var rec material.HitRecord
		got := RayColor(core.NewRay(core.Vec3{}, direction), world, 0, &rec, random)
		if got != (core.Vec3{}) {
			t.Fatalf("Expected black for enclosed ray, got %v", got)
		}
	}
}

func TestRayColorMirrorShellTerminates(t *testing.T) {
	// Perfect mirror shell around the origin: the metal absorbs rays that
	// reflect into the surface, and the depth counter bounds the rest
	world := geometry.NewSphereList(1)
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, material.NewMetal(core.NewVec3(1, 1, 1), 0)))
	random := rand.New(rand.NewSource(42))

	var rec material.HitRecord
	got := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, 0, &rec, random)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black inside mirror shell, got %v", got)
	}
}

func TestRayColorAtDepthLimit(t *testing.T) {
	// Entering the recursion at the cutoff returns black without scattering
	world := geometry.NewSphereList(1)
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	random := rand.New(rand.NewSource(42))

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, world, MaxDepth, &rec, random)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black at the depth limit, got %v", got)
	}
}

func TestRayColorAttenuatesBySurfaceAlbedo(t *testing.T) {
	// A black diffuse sphere kills all light regardless of bounce path
	world := geometry.NewSphereList(1)
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.Vec3{})))
	random := rand.New(rand.NewSource(42))

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, world, 0, &rec, random)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black from zero-albedo surface, got %v", got)
	}
}
