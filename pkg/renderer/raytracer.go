package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned when render settings cannot produce an image
var ErrInvalidConfig = errors.New("invalid render configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

// Validate reports settings that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Options control how a render is executed; none of them change the estimator
type Options struct {
	Workers  int                           // Parallel workers; 0 uses runtime.NumCPU()
	Seed     int64                         // Base seed for per-row generators; 0 seeds from the clock
	Progress func(rowsDone, rowsTotal int) // Optional, called from a single goroutine
	Logger   core.Logger                   // Optional
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() CameraConfig
	GetSamplingConfig() SamplingConfig
	GetWorld() integrator.World
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process. It is read-only once built and
// shared by every worker.
type Raytracer struct {
	scene      Scene
	camera     *Camera
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer for the scene's camera and sampling settings
func NewRaytracer(scene Scene) (*Raytracer, error) {
	config := scene.GetSamplingConfig()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := scene.GetCamera()
	if cameraConfig.Width <= 0 || cameraConfig.AspectRatio <= 0 {
		return nil, fmt.Errorf("%w: image width %d and aspect ratio %g must be positive",
			ErrInvalidConfig, cameraConfig.Width, cameraConfig.AspectRatio)
	}

	camera := NewCamera(cameraConfig)
	width, height := camera.Size()

	return &Raytracer{
		scene:      scene,
		camera:     camera,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, scene.GetBackground()),
	}, nil
}

// Render traces every pixel and returns the gamma-corrected image
func (rt *Raytracer) Render(opts Options) (*image.RGBA, RenderStats) {
	logger := opts.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	pool := NewWorkerPool(rt, img, seed, opts.Workers)

	logger.Printf("Rendering %dx%d, %d spp, depth %d, %d workers, seed %d",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers(), seed)

	start := time.Now()
	pool.Start()
	go func() {
		for y := 0; y < rt.height; y++ {
			pool.SubmitTask(RowTask{Y: y})
		}
		pool.Stop()
	}()

	rowTimes := make([]float64, 0, rt.height)
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		rowTimes = append(rowTimes, result.Duration.Seconds())
		if opts.Progress != nil {
			opts.Progress(len(rowTimes), rt.height)
		}
	}

	stats := newRenderStats(rt.width, rt.height, rt.config, pool.GetNumWorkers(), seed, time.Since(start), rowTimes)
	logger.Printf("Render finished in %v", stats.Duration)

	return img, stats
}

// renderRow fills one scanline using a generator owned by the caller
func (rt *Raytracer) renderRow(y int, img *image.RGBA, random *rand.Rand) {
	sampler := core.NewRandomSampler(random)
	world := rt.scene.GetWorld()
	inverseSamples := 1.0 / float64(rt.config.SamplesPerPixel)

	for x := 0; x < rt.width; x++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			ray := rt.camera.GetRay(x, y, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler))
		}

		img.SetRGBA(x, y, vec3ToColor(colorAccum.Multiply(inverseSamples)))
	}
}

// vec3ToColor converts a linear color to RGBA with gamma 2 and rounding
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(colorVec.X),
		G: toByte(colorVec.Y),
		B: toByte(colorVec.Z),
		A: 255,
	}
}

var unitInterval = core.NewInterval(0, 1)

func toByte(c float64) uint8 {
	// NaN samples, and the NaN from a negative square root, clamp to black
	return uint8(math.Round(unitInterval.Clamp(math.Sqrt(c)) * 255))
}

// rowSeed derives an independent, reproducible seed for scanline y
func rowSeed(seed int64, y int) int64 {
	z := uint64(seed) + (uint64(y)+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
