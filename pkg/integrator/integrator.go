// Package integrator implements the recursive light transport that bounces a
// ray through the scene, accumulating attenuation until the ray is absorbed,
// escapes to the sky, or runs out of bounces.
package integrator

import (
	"math"
	"math/rand"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/geometry"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
)

// MaxDepth bounds the bounce recursion. Chosen empirically to cap the
// worst-case cost of a primary ray inside highly reflective geometry.
const MaxDepth = 32

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// RayColor computes the color carried back along a single ray. rec is scratch
// shared across the recursion so no hit record is allocated per bounce; its
// contents are consumed before each recursive call.
func RayColor(ray core.Ray, world *geometry.SphereList, depth int, rec *material.HitRecord, random *rand.Rand) core.Vec3 {
	// The 0.001 lower bound keeps scattered rays from re-hitting the
	// surface they just left (shadow acne)
	if world.Hit(ray, 0.001, math.MaxFloat64, rec) {
		var attenuation core.Vec3
		var scattered core.Ray
		if depth < MaxDepth && rec.Material.Scatter(ray, rec, &attenuation, &scattered, random) {
			return attenuation.MultiplyVec(RayColor(scattered, world, depth+1, rec, random))
		}
		// Absorbed or out of bounces: no light is gathered
		return core.Vec3{}
	}

	return backgroundGradient(ray)
}

// backgroundGradient returns the sky color for a ray that missed everything,
// blending white at the horizon into blue overhead
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - t).Add(skyBlue.Multiply(t))
}
