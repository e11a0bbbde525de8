package skysphere

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"time"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	sphere, err := NewSphere(cfg.Sphere.Center, cfg.Sphere.Radius)
	if err != nil {
		return err
	}
	camera, err := NewCamera(cfg.AspectRatio, cfg.ViewportHeight, cfg.FocalLength)
	if err != nil {
		return err
	}

	width := cfg.ImageWidth
	height := ImageHeightFor(width, cfg.AspectRatio)
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	rd := &Renderer{
		Camera:      camera,
		Scene:       NewScene(sphere),
		ImageWidth:  width,
		ImageHeight: height,
		Workers:     workers,
	}
	if Progress {
		rd.RowDone = progressPrinter()
	}
	if Debug {
		DebugLog("Render %dx%d with %d workers to %s", width, height, workers, cfg.Out)
	}

	start := time.Now()
	if err := writeImage(cfg.Out, rd); err != nil {
		return err
	}
	elapsed := time.Since(start)
	DebugLog("Pixels: %d, time: %s", width*height, elapsed)
	return nil
}

// writeImage owns the output file lifecycle: create, buffered render,
// flush, close. Any failure is fatal for the render; there is no
// partial-result recovery.
func writeImage(path string, rd *Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := rd.Render(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// progressPrinter reports finished rows at ~1% granularity.
func progressPrinter() func(done, total int) {
	return func(done, total int) {
		step := 1
		if total >= 100 {
			step = total / 100
		}
		if done%step == 0 || done == total {
			fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(total))
		}
	}
}
