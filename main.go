package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/loaders"
	"github.com/df07/go-bvh-pathtracer/pkg/log"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render built-in scenes with a Monte-Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "minimum level to log: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Build the named scene, trace it with one worker per CPU and save the result.
Unset flags keep the scene's own recommendations. Without --out the image is
written to output/<scene>/render_<timestamp>.png.`,
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: -1,
					Usage: "maximum bounce depth (-1 keeps the scene default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base seed for pixel sampling (0 seeds from the clock)",
				},
				cli.Int64Flag{
					Name:  "bvh-seed",
					Usage: "seed for BVH split axes (0 seeds from the clock)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel workers (0 uses every CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename; the extension picks png, jpg, bmp or tiff",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for textured scenes such as earth",
				},
			},
			Action: renderCommand,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: scenesCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		log.SetLevel(level)
	}
	return nil
}

// renderSettings holds command line overrides for a render
type renderSettings struct {
	Width       int
	SPP         int
	Depth       int // Negative keeps the scene default
	Seed        int64
	BVHSeed     int64
	Workers     int
	Out         string
	TexturePath string
}

func settingsFromContext(ctx *cli.Context) renderSettings {
	return renderSettings{
		Width:       ctx.Int("width"),
		SPP:         ctx.Int("spp"),
		Depth:       ctx.Int("depth"),
		Seed:        ctx.Int64("seed"),
		BVHSeed:     ctx.Int64("bvh-seed"),
		Workers:     ctx.Int("workers"),
		Out:         ctx.String("out"),
		TexturePath: ctx.String("texture"),
	}
}

// applySettings overrides scene recommendations with explicitly set flags
func applySettings(s *scene.Scene, settings renderSettings) {
	if settings.Width > 0 {
		s.CameraConfig.Width = settings.Width
	}
	if settings.SPP > 0 {
		s.SamplingConfig.SamplesPerPixel = settings.SPP
	}
	if settings.Depth >= 0 {
		s.SamplingConfig.MaxDepth = settings.Depth
	}
}

// outputPath returns out, or a timestamped file under output/<scene>
func outputPath(sceneName, out string, now time.Time) string {
	if out != "" {
		return out
	}
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func renderCommand(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return cli.NewExitError("missing scene name argument; run 'scenes' to list them", 1)
	}

	if host, err := describeHost(); err != nil {
		logger.Warningf("could not describe host: %v", err)
	} else {
		logger.Info(host)
	}

	filename, stats, err := renderToFile(ctx.Args().First(), settingsFromContext(ctx))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("render statistics\n%s", stats.Table())
	logger.Noticef("saved %s", filename)
	return nil
}

// renderToFile builds, traces and saves a scene, returning the written filename
func renderToFile(name string, settings renderSettings) (string, renderer.RenderStats, error) {
	s, err := scene.Lookup(name, scene.Options{
		TexturePath: settings.TexturePath,
		Seed:        settings.Seed,
	})
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	applySettings(s, settings)

	if err := s.Preprocess(settings.BVHSeed); err != nil {
		return "", renderer.RenderStats{}, err
	}

	raytracer, err := renderer.NewRaytracer(s)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}

	nextReport := 0
	img, stats := raytracer.Render(renderer.Options{
		Workers: settings.Workers,
		Seed:    settings.Seed,
		Logger:  log.PrintfAdapter{Logger: logger},
		Progress: func(done, total int) {
			if percent := done * 100 / total; percent >= nextReport {
				logger.Infof("%3d%% (%d/%d rows)", percent, done, total)
				nextReport = percent/10*10 + 10
			}
		},
	})

	filename := outputPath(name, settings.Out, time.Now())
	if err := loaders.SaveImage(filename, img); err != nil {
		return "", stats, err
	}

	return filename, stats, nil
}

func scenesCommand(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	listScenes(ctx.App.Writer)
	return nil
}

func listScenes(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
}
