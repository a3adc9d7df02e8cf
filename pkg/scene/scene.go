// Package scene deterministically constructs the sphere field. All geometry
// and sequence-driven material values come from a precomputed shared float
// sequence, so every render worker rebuilds a bit-for-bit identical scene
// without sharing mutable RNG state.
package scene

import (
	"math/rand"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/geometry"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
)

// SequenceLength is the number of precomputed values the scene sequence
// needs. The grid consumes at most 9 values per cell over a 9x9 grid; the
// extra headroom keeps the cursor from wrapping.
const SequenceLength = 1024

// heroCenter is where the three large fixed spheres sit; grid spheres that
// would crowd the rightmost one are skipped
var heroCenter = core.NewVec3(4, 0.2, 0)

// Viewpoint describes the fixed camera extrinsics for the scene
type Viewpoint struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	VFov     float64 // vertical field of view in degrees
	Aperture float64
}

// DefaultViewpoint returns the standard viewpoint over the sphere field
func DefaultViewpoint() Viewpoint {
	return Viewpoint{
		LookFrom: core.NewVec3(13, 2, 3),
		LookAt:   core.NewVec3(0, 0, 0),
		VFov:     20.0,
		Aperture: 0.1,
	}
}

// Build constructs the sphere field from seq. Every draw that shapes geometry
// or a sequence-driven material value comes from seq in a fixed order; only
// metal fuzz is drawn from random, which is worker-local and deliberately not
// part of the shared sequence.
func Build(seq *core.FloatSequence, random *rand.Rand) *geometry.SphereList {
	world := geometry.NewSphereList(9*9 + 4)

	for a := -4; a <= 4; a++ {
		for b := -4; b <= 4; b++ {
			chooseMat := seq.Next()
			center := core.NewVec3(
				float64(a)+0.9*seq.Next(),
				0.2,
				float64(b)+0.9*seq.Next(),
			)
			if center.Subtract(heroCenter).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Squared draws bias the albedo toward darker colors
				albedo := core.NewVec3(
					seq.Next()*seq.Next(),
					seq.Next()*seq.Next(),
					seq.Next()*seq.Next(),
				)
				world.Add(geometry.NewSphere(center, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+seq.Next()),
					0.5*(1+seq.Next()),
					0.5*(1+seq.Next()),
				)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	// Three large hero spheres, then the ground
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	return world
}
