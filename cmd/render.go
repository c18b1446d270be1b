package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/whitted-raytracer/pkg/output"
	"github.com/df07/whitted-raytracer/pkg/renderer"
)

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Usage: "image width; 0 uses the scene camera",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "image height; 0 follows the scene aspect ratio",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel; 0 uses the scene recommendation",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum ray recursion depth; 0 uses the scene recommendation",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of parallel row workers; 0 uses one per CPU",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "seed for pixel jitter and stochastic materials",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: 2,
		Usage: "gamma applied when writing the image",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename (.png, .bmp or .tiff); defaults to output/<scene>/render_<timestamp>.png",
	},
	cli.StringFlag{
		Name:  "bucket",
		Usage: "write the image to a blob bucket URL (file:///path, mem://) instead of the local filesystem",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name or scene file argument")
	}

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Workers:         ctx.Int("workers"),
		Seed:            ctx.Uint64("seed"),
		Gamma:           ctx.Float64("gamma"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	tracer := renderer.NewWhittedTracer(config.MaxDepth)
	sc, err := LoadScene(ctx.Args().First(), tracer, logger)
	if err != nil {
		return err
	}
	logger.Noticef("loaded scene %q with %d primitives and %d lights", sc.Name, sc.PrimitiveCount(), len(sc.Lights()))

	r, err := renderer.NewRenderer(sc, tracer, config, logger)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fb, stats, err := r.Render(runCtx)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	img := fb.ToImage(r.Config().Gamma)
	target := ctx.String("out")
	if target == "" {
		target = defaultOutputPath(sc.Name, time.Now())
	}

	if bucketURL := ctx.String("bucket"); bucketURL != "" {
		key := filepath.ToSlash(target)
		if err := output.WriteToBucket(runCtx, bucketURL, key, img); err != nil {
			return err
		}
		logger.Noticef("render saved as %s/%s", strings.TrimSuffix(bucketURL, "/"), key)
		return nil
	}

	if err := output.WriteFile(target, img); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", target)
	return nil
}

func defaultOutputPath(sceneName string, now time.Time) string {
	if sceneName == "" {
		sceneName = "scene"
	}
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Image", "Samples/pixel", "Workers", "Rays", "Rays/sample", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%.2f", stats.RaysPerSample()),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "RAYS/SEC", fmt.Sprintf("%.0f", stats.RaysPerSecond())})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
