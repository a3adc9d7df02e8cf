package renderer

import (
	"math"
	"math/rand"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
)

// CameraConfig holds the extrinsic parameters a camera is derived from.
// Width and Height contribute only the aspect ratio.
type CameraConfig struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	VFov     float64 // vertical field of view in degrees
	Aperture float64
	Width    int
	Height   int
}

// Camera maps normalized image-plane coordinates plus lens sampling into
// world-space rays, modeling a thin lens for depth of field. It is computed
// once per render and read-only during sampling.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera derives a camera frame from config. The focus distance is the
// distance from LookFrom to LookAt, so the look-at point is always in focus.
// Assumes LookFrom != LookAt and a view direction not parallel to world up.
func NewCamera(config CameraConfig) *Camera {
	up := core.NewVec3(0, 1, 0)
	aspect := float64(config.Width) / float64(config.Height)
	focusDist := config.LookFrom.Subtract(config.LookAt).Length()

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDist)).
		Subtract(v.Multiply(halfHeight * focusDist)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDist),
		vertical:        v.Multiply(2 * halfHeight * focusDist),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through normalized image coordinates (s, t) where
// 0 <= s,t <= 1, with the origin jittered across the lens disk
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
