package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"kantarion/src/render"
	"kantarion/src/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene file (.yaml or .json)")
	renderPath := flag.String("render", "", "optional wireframe WebP output path")
	size := flag.Int("size", 0, "render edge length in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "render oversampling factor (default: 2)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required")
		os.Exit(1)
	}

	logCfg := zap.NewDevelopmentConfig()
	if !*verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc, err := scene.LoadFile(*scenePath)
	if err != nil {
		logger.Error("load scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene loaded",
		zap.String("name", sc.Name),
		zap.Int("segments", len(sc.Segments)))

	pairs := sc.Pairs()
	if len(pairs) == 0 {
		logger.Warn("single segment, no pairs to report")
	}

	fmt.Printf("%-16s %-16s %14s\n", "A", "B", "DISTANCE")
	for _, p := range pairs {
		fmt.Printf("%-16s %-16s %14.6f\n", p.A, p.B, p.Distance)
		logger.Debug("pair",
			zap.String("a", p.A),
			zap.String("b", p.B),
			zap.Float64("distance", p.Distance),
			zap.Stringer("pointA", p.PointA),
			zap.Stringer("pointB", p.PointB))
	}

	if *renderPath == "" {
		return
	}

	img, err := render.Wireframe(sc, render.Options{Size: *size, Supersample: *supersample})
	if err != nil {
		logger.Error("render wireframe", zap.Error(err))
		os.Exit(1)
	}
	f, err := os.Create(*renderPath)
	if err != nil {
		logger.Error("create output", zap.Error(err))
		os.Exit(1)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		logger.Error("encode webp", zap.Error(err))
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		logger.Error("close output", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("wireframe written",
		zap.String("path", *renderPath),
		zap.Int("size", img.Bounds().Dx()))
}
