// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Folio mounts a model viewport on a headless surface,
// runs it for a number of frames and reports what the
// host renderer would draw.
//
// Usage:
//
//	folio [flags]
//
// Without -root, a built-in sample asset is served.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gviegas/folio/loader"
	"github.com/gviegas/folio/node"
	"github.com/gviegas/folio/scene"
	"github.com/gviegas/folio/viewport"
	"github.com/gviegas/folio/wsi"
)

var (
	configFile = flag.String("config", "", "configuration file (.toml, .yaml or .yml)")
	root       = flag.String("root", "", "asset root: a directory or an http(s) base URL")
	asset      = flag.String("asset", "", "asset path, overriding the configured one")
	frames     = flag.Int("frames", 120, "number of frames to run")
	width      = flag.Int("width", 800, "surface width")
	height     = flag.Int("height", 600, "surface height")
	drag       = flag.String("drag", "", "pointer drag from the surface center, as dx,dy")
	wheel      = flag.Float64("wheel", 0, "wheel notches; negative dollies in")
	verbose    = flag.Bool("v", false, "log info messages")
	debug      = flag.Bool("vv", false, "log debug messages")
	quiet      = flag.Bool("q", false, "log errors only")
)

func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func main() {
	flag.Parse()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromFlags(*debug, *verbose, *quiet),
	}))
	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := viewport.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = viewport.LoadConfig(*configFile); err != nil {
			return err
		}
	}
	if *asset != "" {
		cfg.Asset.URL = *asset
	}
	f, err := fetcher(*root, cfg.Asset.URL)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surf := wsi.NewHeadless(*width, *height)
	rd := new(stats)
	vp, err := viewport.New(&cfg, surf, rd, f, log)
	if err != nil {
		return err
	}
	if err = vp.Open(ctx); err != nil {
		return err
	}
	defer vp.Close()

	dx, dy, err := parseDrag(*drag)
	if err != nil {
		return err
	}
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	for i := 0; i < *frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
		// Input arrives once the asset is in place.
		if i == 1 {
			w, h := surf.Size()
			if dx != 0 || dy != 0 {
				surf.Drag(wsi.BtnLeft, w/2, h/2, w/2+dx, h/2+dy, 10)
			}
			for n := *wheel; n != 0; {
				step := max(-1, min(1, n))
				surf.Scroll(0, float32(step))
				n -= step
			}
		}
		if err := vp.Frame(); err != nil {
			log.Warn("frame", "err", err)
		}
	}

	if err := vp.Err(); err != nil {
		return err
	}
	cam := vp.Camera()
	fmt.Printf("frames: %d\nmeshes: %d\nlights: %d\ncamera: %.3v\ntarget: %.3v\n",
		rd.frames, rd.meshes, rd.lights, cam.Position, cam.Target)
	return nil
}

// fetcher returns a Fetcher for root.
// An empty root serves the sample asset at url.
func fetcher(root, url string) (loader.Fetcher, error) {
	switch {
	case root == "":
		return loader.FSFetcher{FS: sampleFS(strings.TrimPrefix(url, "/"))}, nil
	case strings.HasPrefix(root, "http://"), strings.HasPrefix(root, "https://"):
		f, err := loader.NewHTTPFetcher(root, nil)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", root)
		}
		return loader.FSFetcher{FS: os.DirFS(root)}, nil
	}
}

func parseDrag(s string) (dx, dy int, err error) {
	if s == "" {
		return
	}
	if _, err = fmt.Sscanf(s, "%d,%d", &dx, &dy); err != nil {
		err = fmt.Errorf("invalid -drag %q: %w", s, err)
	}
	return
}

// stats is a Renderer that counts what it is given.
type stats struct {
	frames int
	meshes int
	lights int
}

func (r *stats) Draw(s *scene.Scene, _ *node.Camera) error {
	r.frames++
	r.meshes = 0
	s.Root().Meshes(func(*node.Node, *node.Mesh) { r.meshes++ })
	r.lights = len(s.Lights())
	return nil
}
