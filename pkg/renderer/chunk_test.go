package renderer

import (
	"math/rand"
	"testing"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/geometry"
	"github.com/tyler-conrad/ray-tracer/pkg/material"
	"github.com/tyler-conrad/ray-tracer/pkg/scene"
)

func TestRenderChunkShape(t *testing.T) {
	sequence := core.GenerateFloatSequence(scene.SequenceLength, rand.New(rand.NewSource(42)))

	cfg := ChunkConfig{
		Worker:   0,
		StartRow: 3,
		RowCount: 2,
		Width:    8,
		Height:   8,
		Sequence: sequence,
		Sampling: SamplingConfig{SamplesPerPixel: 1},
	}

	rows := RenderChunk(cfg)
	if len(rows) != cfg.RowCount {
		t.Fatalf("Expected %d rows, got %d", cfg.RowCount, len(rows))
	}
	for i, row := range rows {
		if len(row) != cfg.Width*4 {
			t.Fatalf("Row %d has %d bytes, expected %d", i, len(row), cfg.Width*4)
		}
		for p := 3; p < len(row); p += 4 {
			if row[p] != 255 {
				t.Fatalf("Row %d pixel %d has alpha %d, expected 255", i, p/4, row[p])
			}
		}
	}
}

func TestRenderChunkBandPrefixMatchesFullImage(t *testing.T) {
	// A band covering the top rows must produce exactly what a full-image
	// chunk produces for those rows: the same worker seed replays the same
	// scene build and the same sample draws in the same order, and row
	// geometry depends only on the absolute row index
	sequence := core.GenerateFloatSequence(scene.SequenceLength, rand.New(rand.NewSource(42)))
	sampling := SamplingConfig{SamplesPerPixel: 4}

	full := RenderChunk(ChunkConfig{
		Worker: 0, StartRow: 0, RowCount: 4, Width: 8, Height: 4,
		Sequence: sequence, Sampling: sampling,
	})
	top := RenderChunk(ChunkConfig{
		Worker: 0, StartRow: 0, RowCount: 2, Width: 8, Height: 4,
		Sequence: sequence, Sampling: sampling,
	})

	if len(full) != 4 || len(top) != 2 {
		t.Fatalf("Unexpected row counts: full=%d top=%d", len(full), len(top))
	}
	for r := 0; r < 2; r++ {
		for i := range full[r] {
			if full[r][i] != top[r][i] {
				t.Fatalf("Row %d byte %d differs: %d vs %d", r, i, full[r][i], top[r][i])
			}
		}
	}
}

func TestRenderChunkReproducible(t *testing.T) {
	// Same config, same sequence: a chunk render is fully deterministic
	sequence := core.GenerateFloatSequence(scene.SequenceLength, rand.New(rand.NewSource(42)))
	cfg := ChunkConfig{
		Worker: 1, StartRow: 2, RowCount: 2, Width: 8, Height: 4,
		Sequence: sequence, Sampling: SamplingConfig{SamplesPerPixel: 4},
	}

	first := RenderChunk(cfg)
	second := RenderChunk(cfg)
	for r := range first {
		for i := range first[r] {
			if first[r][i] != second[r][i] {
				t.Fatalf("Row %d byte %d differs between identical renders", r, i)
			}
		}
	}
}

func TestRenderRowGroundOnly(t *testing.T) {
	// A camera tilted down over nothing but the ground sphere: every pixel
	// must land closer to the gamma-corrected ground albedo than to the sky
	world := geometry.NewSphereList(1)
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	camera := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 3, 0.001),
		LookAt:   core.NewVec3(0, 0, 0),
		VFov:     40.0,
		Aperture: 0,
		Width:    16,
		Height:   16,
	})

	random := rand.New(rand.NewSource(42))
	groundGamma := [3]float64{180, 180, 180} // sqrt(0.5) * 255
	skyGamma := [3]float64{180, 213, 255}    // sqrt((0.5, 0.7, 1.0)) * 255

	for row := 0; row < 16; row++ {
		pixels := renderRow(world, camera, row, 16, 16, 8, random)
		for i := 0; i < 16; i++ {
			var toGround, toSky float64
			for c := 0; c < 3; c++ {
				v := float64(pixels[i*4+c])
				toGround += (v - groundGamma[c]) * (v - groundGamma[c])
				toSky += (v - skyGamma[c]) * (v - skyGamma[c])
			}
			if toGround >= toSky {
				t.Fatalf("Row %d pixel %d looks like sky: %v", row, i,
					pixels[i*4:i*4+3])
			}
		}
	}
}
