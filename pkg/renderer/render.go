// Package renderer turns a scene sequence into a flat RGBA pixel buffer by
// splitting the image into horizontal bands and rendering each band on its
// own goroutine with no shared mutable state.
package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tyler-conrad/ray-tracer/pkg/core"
	"github.com/tyler-conrad/ray-tracer/pkg/scene"
)

// ErrRenderInFlight is returned when a render is requested while another
// render on the same Renderer has not finished. Overlapping requests are
// dropped rather than queued.
var ErrRenderInFlight = errors.New("renderer: render already in flight")

// band is one contiguous horizontal slice of output scanlines
type band struct {
	startRow int
	rowCount int
}

// partitionBands splits height rows into count contiguous bands. Every band
// gets height/count rows; the last band absorbs the remainder, so the bands
// cover every row exactly once with no gaps or overlaps. count is assumed to
// be in [1, height].
func partitionBands(height, count int) []band {
	bands := make([]band, count)
	rowsPerBand := height / count
	for i := range bands {
		bands[i] = band{startRow: i * rowsPerBand, rowCount: rowsPerBand}
	}
	bands[count-1].rowCount += height % count
	return bands
}

// Renderer renders images into flat RGBA buffers. A single-flight guard
// suppresses overlapping renders of the same destination: a Render call
// issued while another is in progress returns ErrRenderInFlight without
// doing any work.
type Renderer struct {
	inFlight atomic.Bool
	sampling SamplingConfig
	seed     int64
	logger   core.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithSampling overrides the default per-pixel sampling configuration
func WithSampling(config SamplingConfig) Option {
	return func(r *Renderer) { r.sampling = config }
}

// WithSceneSeed fixes the seed of the shared scene sequence, making the
// rendered geometry reproducible across invocations
func WithSceneSeed(seed int64) Option {
	return func(r *Renderer) { r.seed = seed }
}

// WithLogger sets a logger for per-band progress output
func WithLogger(logger core.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// NewRenderer creates a renderer with a time-seeded scene sequence unless
// overridden by options
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		sampling: DefaultSamplingConfig(),
		seed:     time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces a width*height*4 byte buffer, row-major with the top row
// first, RGBA8 per pixel with alpha always 255. The image height is split
// into one band per worker; bands render concurrently and are reassembled in
// original row order. Degenerate dimensions fail fast before any dispatch;
// workers is clamped to [1, height] so no task is ever started against a
// zero-height band.
func (r *Renderer) Render(width, height, workers int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image size %dx%d", width, height)
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRenderInFlight
	}
	defer r.inFlight.Store(false)

	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	// The scene sequence is generated once, before dispatch, so every
	// worker reconstructs identical scene geometry from it
	sequence := core.GenerateFloatSequence(scene.SequenceLength, rand.New(rand.NewSource(r.seed)))

	bands := partitionBands(height, workers)
	results := make([][][]byte, len(bands))

	var wg sync.WaitGroup
	for i, b := range bands {
		wg.Add(1)
		go func(worker int, b band) {
			defer wg.Done()
			start := time.Now()
			results[worker] = RenderChunk(ChunkConfig{
				Worker:   worker,
				StartRow: b.startRow,
				RowCount: b.rowCount,
				Width:    width,
				Height:   height,
				Sequence: sequence,
				Sampling: r.sampling,
			})
			if r.logger != nil {
				r.logger.Printf("band %d: rows %d-%d rendered in %v",
					worker, b.startRow, b.startRow+b.rowCount-1, time.Since(start))
			}
		}(i, b)
	}
	wg.Wait()

	// Concatenate band rows in band order, which matches image row order
	buffer := make([]byte, 0, width*height*4)
	for _, rows := range results {
		for _, row := range rows {
			buffer = append(buffer, row...)
		}
	}
	return buffer, nil
}
