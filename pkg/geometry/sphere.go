package geometry

import (
	"math"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
)

// Sphere represents a sphere shape, immutable after construction
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects the sphere, writing the nearest intersection
// strictly inside (tMin, tMax) into rec. rec is left untouched on a miss.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2.0 * a)
	if root <= tMin || root >= tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2.0 * a)
		if root <= tMin || root >= tMax {
			// Both intersections are outside the valid range
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Normal = rec.Point.Subtract(s.Center).Divide(s.Radius)
	rec.Material = s.Material
	return true
}
