package material

import (
	"math"
	"math/rand"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
)

// Kind identifies one of the fixed material variants
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material is a tagged variant over the closed set of material kinds.
// The variant set is fixed and scattering sits in the innermost render loop,
// so dispatch is a switch on Kind rather than an interface call.
// Materials are immutable after construction and shared by pointer
// across every sphere using them.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal
	Fuzz            float64   // Metal only, in [0,1]
	RefractiveIndex float64   // Dielectric only
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a reflective material. Fuzz outside [0,1] is silently
// clamped; it is a normalization, not an error.
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a transparent material like glass
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// HitRecord contains information about a ray-object intersection.
// A single record is reused as scratch across intersection tests and
// recursive bounces, overwritten as closer hits are found.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Surface normal at intersection
	Material *Material // Material of the hit object
}

// Scatter computes an attenuation color and an outgoing ray for an incoming
// ray at a surface hit, writing both through the out parameters. It returns
// false when the ray is absorbed, in which case attenuation and scattered
// hold whatever was written before the absorption was detected.
func (m *Material) Scatter(rayIn core.Ray, rec *HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(rec, attenuation, scattered, random)
	case KindMetal:
		return m.scatterMetal(rayIn, rec, attenuation, scattered, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, rec, attenuation, scattered, random)
	}
	return false
}

// scatterLambertian bounces toward a random point on the unit sphere
// tangent to the hit point. Diffuse rays are never absorbed.
func (m *Material) scatterLambertian(rec *HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	target := rec.Point.Add(rec.Normal).Add(core.RandomInUnitSphere(random))
	*scattered = core.NewRay(rec.Point, target.Subtract(rec.Point))
	*attenuation = m.Albedo
	return true
}

// scatterMetal mirrors the incoming direction about the normal, perturbed by
// fuzz. Rays reflected into the surface are absorbed.
func (m *Material) scatterMetal(rayIn core.Ray, rec *HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	reflected := Reflect(rayIn.Direction.Normalize(), rec.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	*scattered = core.NewRay(rec.Point, direction)
	*attenuation = m.Albedo
	return scattered.Direction.Dot(rec.Normal) > 0
}

// scatterDielectric refracts or reflects depending on a Schlick reflectance
// draw. Clear glass absorbs nothing, so attenuation is always (1,1,1).
// When refraction is impossible (total internal reflection) the reflection
// probability falls back to 0.1 instead of 1.0; the refraction attempt has
// already failed at that point so the ray reflects either way, and the
// literal is kept for fidelity with the renderer this one reproduces.
func (m *Material) scatterDielectric(rayIn core.Ray, rec *HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	*attenuation = core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if rayIn.Direction.Dot(rec.Normal) > 0 {
		// Ray is inside the material, leaving through the surface
		outwardNormal = rec.Normal.Negate()
		niOverNt = m.RefractiveIndex
		cosine = m.RefractiveIndex * rayIn.Direction.Dot(rec.Normal) / rayIn.Direction.Length()
	} else {
		// Ray is outside, entering the material
		outwardNormal = rec.Normal
		niOverNt = 1.0 / m.RefractiveIndex
		cosine = -rayIn.Direction.Dot(rec.Normal) / rayIn.Direction.LengthSquared()
	}

	var refracted core.Vec3
	var reflectProb float64
	if Refract(rayIn.Direction, outwardNormal, niOverNt, &refracted) {
		reflectProb = Schlick(cosine, m.RefractiveIndex)
	} else {
		reflectProb = 0.1
	}

	if random.Float64() < reflectProb {
		*scattered = core.NewRay(rec.Point, Reflect(rayIn.Direction, rec.Normal))
	} else {
		*scattered = core.NewRay(rec.Point, refracted)
	}
	return true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a vector using Snell's law, writing
// the result through refracted. It returns false and leaves refracted
// untouched when the discriminant is non-positive (total internal reflection).
func Refract(v, n core.Vec3, niOverNt float64, refracted *core.Vec3) bool {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return false
	}
	*refracted = uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
