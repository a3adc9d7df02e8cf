package renderer

import (
	"math"
	"math/rand"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/geometry"
	"github.com/tyler-conrad/ray-tracer/pkg/integrator"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
	"github.com/tyler-conrad/ray-tracer/pkg/scene"
)

// SamplingConfig contains per-pixel sampling configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel
}

// DefaultSamplingConfig returns the standard sampling values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 32,
	}
}

// ChunkConfig is the input for one independent band-rendering task: which
// worker it is, the contiguous rows it owns, the full image dimensions, and
// the shared scene sequence it rebuilds the world from
type ChunkConfig struct {
	Worker   int
	StartRow int // first scanline of the band, counted from the top of the image
	RowCount int
	Width    int
	Height   int
	Sequence []float64 // read-only, shared across all workers
	Sampling SamplingConfig
}

// RenderChunk renders one horizontal band and returns its rows top-first,
// each row Width*4 bytes of RGBA with full opacity. The chunk rebuilds the
// scene and camera locally so it shares no mutable state with other bands.
func RenderChunk(cfg ChunkConfig) [][]byte {
	// Jitter, lens and scatter sampling are worker-local and need not be
	// reproducible; only the scene sequence is shared
	random := rand.New(rand.NewSource(int64(cfg.Worker)*104729 + 1))

	world := scene.Build(core.NewFloatSequence(cfg.Sequence), random)
	view := scene.DefaultViewpoint()
	camera := NewCamera(CameraConfig{
		LookFrom: view.LookFrom,
		LookAt:   view.LookAt,
		VFov:     view.VFov,
		Aperture: view.Aperture,
		Width:    cfg.Width,
		Height:   cfg.Height,
	})

	samples := cfg.Sampling.SamplesPerPixel
	if samples <= 0 {
		samples = DefaultSamplingConfig().SamplesPerPixel
	}

	rows := make([][]byte, cfg.RowCount)
	for i := range rows {
		rows[i] = renderRow(world, camera, cfg.StartRow+i, cfg.Width, cfg.Height, samples, random)
	}
	return rows
}

// renderRow renders a single scanline. row counts from the top of the image;
// the camera's t coordinate grows upward, so it is flipped here.
func renderRow(world *geometry.SphereList, camera *Camera, row, width, height, samples int, random *rand.Rand) []byte {
	var rec material.HitRecord
	pixels := make([]byte, width*4)

	j := height - 1 - row
	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < samples; sample++ {
			s := (float64(i) + random.Float64()) / float64(width)
			t := (float64(j) + random.Float64()) / float64(height)
			ray := camera.GetRay(s, t, random)
			colorAccum = colorAccum.Add(integrator.RayColor(ray, world, 0, &rec, random))
		}

		// Average the samples, then gamma-correct with gamma 2
		colorVec := colorAccum.Divide(float64(samples))
		pixels[i*4+0] = byte(255.99 * sqrtChannel(colorVec.X))
		pixels[i*4+1] = byte(255.99 * sqrtChannel(colorVec.Y))
		pixels[i*4+2] = byte(255.99 * sqrtChannel(colorVec.Z))
		pixels[i*4+3] = 255
	}
	return pixels
}

// sqrtChannel applies square-root gamma correction to one channel, clamped
// to [0,1] so quantization never overflows a byte
func sqrtChannel(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return math.Sqrt(v)
}
