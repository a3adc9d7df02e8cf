package geometry

import (
	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
)

// SphereList is an aggregate of spheres that resolves to the nearest hit.
// Intersection is a linear scan; at this scene scale (a few hundred spheres)
// no acceleration structure is used.
type SphereList struct {
	Spheres []Sphere
}

// NewSphereList creates an empty list with the given capacity hint
func NewSphereList(capacity int) *SphereList {
	return &SphereList{Spheres: make([]Sphere, 0, capacity)}
}

// Add appends a sphere to the list
func (l *SphereList) Add(s Sphere) {
	l.Spheres = append(l.Spheres, s)
}

// Hit finds the closest intersection among all spheres by shrinking the
// accepted t range to the best hit found so far, so later spheres can only
// replace the record with a strictly closer hit.
func (l *SphereList) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for i := range l.Spheres {
		if l.Spheres[i].Hit(ray, tMin, closestSoFar, rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}
