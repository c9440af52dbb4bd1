package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-raytracer/tracer"
	sceneConfig "github.com/jdginn/go-raytracer/tracer/config"
	"github.com/jdginn/go-raytracer/tracer/session"
)

var CLI struct {
	Verbose bool `short:"v" help:"log debug output"`

	Render   RenderCmd   `cmd:"" help:"Render a scene to PNG"`
	Validate ValidateCmd `cmd:"" help:"Check a scene config without rendering it"`
	Trace    TraceCmd    `cmd:"" help:"Record every ray cast for a single pixel"`
}

func loadConfig(path string) (*sceneConfig.SceneConfig, error) {
	return sceneConfig.LoadFromFile(path, sceneConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

type RenderCmd struct {
	Config    string `arg:"" name:"config" help:"scene config to render"`
	Out       string `name:"out" help:"write the image here instead of a new session directory"`
	Renders   string `name:"renders" default:"renders" help:"directory that holds render sessions"`
	Histogram bool   `name:"histogram" help:"also plot a luminance histogram next to the image"`
}

func (c RenderCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	world, err := config.BuildWorld()
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	opts, err := config.Render.Options()
	if err != nil {
		return fmt.Errorf("render options: %w", err)
	}

	out := c.Out
	if out == "" {
		dir, err := session.CreateSessionDirectory(c.Renders)
		if err != nil {
			return fmt.Errorf("creating session directory: %w", err)
		}
		// The resolved scene records the git commit it was rendered from.
		// Outside a git checkout, keep the config as written instead.
		if err := sceneConfig.SaveToFile(config, dir.FilePath("scene.yaml")); err != nil {
			tracer.Logger().Warn("could not save resolved scene, copying config instead", "err", err)
			if err := dir.CopyConfigFile(c.Config); err != nil {
				return fmt.Errorf("copying config file: %w", err)
			}
		}
		out = dir.FilePath("render.png")
	}

	img := tracer.Render(world, config.Camera.Create(), opts)
	if err := tracer.SavePNG(out, img); err != nil {
		return err
	}
	fmt.Println("Wrote", out)

	if c.Histogram {
		histogram := strings.TrimSuffix(out, filepath.Ext(out)) + "_histogram.png"
		if err := tracer.PlotLuminance(img, histogram); err != nil {
			return err
		}
		fmt.Println("Wrote", histogram)
	}
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scene config to check"`
}

func (c ValidateCmd) Run() error {
	config, err := sceneConfig.LoadFromFile(c.Config, sceneConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := config.Validate(); len(errs) > 0 {
		fmt.Print(sceneConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}
	if _, err := config.BuildWorld(); err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	fmt.Println("OK")
	return nil
}

type TraceCmd struct {
	Config string `arg:"" name:"config" help:"scene config to trace"`
	X      int    `name:"x" required:"" help:"pixel column"`
	Y      int    `name:"y" required:"" help:"pixel row"`
	Out    string `name:"out" default:"trace.json" help:"where to write the ray path"`
}

func (c TraceCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	world, err := config.BuildWorld()
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	cam := config.Camera.Create()
	if c.X < 0 || c.X >= cam.HSize || c.Y < 0 || c.Y >= cam.VSize {
		return fmt.Errorf("pixel (%d, %d) is outside the %dx%d canvas", c.X, c.Y, cam.HSize, cam.VSize)
	}
	depth := config.Render.MaxDepth
	if depth <= 0 {
		depth = tracer.MaxRecursions
	}

	color, segments := world.TracePath(cam.RayForPixel(c.X, c.Y), depth)
	if err := tracer.SavePixelTraceToJSON(c.Out, tracer.PixelTraceToJSON(c.X, c.Y, color, segments)); err != nil {
		return err
	}
	fmt.Printf("Pixel (%d, %d): %d rays, colour %.5f %.5f %.5f\n", c.X, c.Y, len(segments), color.R, color.G, color.B)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	tracer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
