package skysphere

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Renderer drives the pixel grid: one camera ray per pixel, shaded and
// serialized in row-major order with the top image row first.
type Renderer struct {
	Camera      *Camera
	Scene       *Scene
	ImageWidth  int
	ImageHeight int
	Workers     int                   // <=1 renders on the calling goroutine
	RowDone     func(done, total int) // optional hook, called once per finished row
}

// Render writes the header and every pixel line to w. Rows are traversed
// from j = ImageHeight-1 down to 0 so the top of the image is emitted
// first; columns go left to right. With Workers > 1 rows are shaded
// concurrently but still written strictly in that order, so the byte
// stream is identical for any worker count.
func (rd *Renderer) Render(w io.Writer) error {
	if rd.ImageWidth < 2 || rd.ImageHeight < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d", rd.ImageWidth, rd.ImageHeight)
	}
	if err := WritePPMHeader(w, rd.ImageWidth, rd.ImageHeight); err != nil {
		return err
	}
	if rd.Workers > 1 {
		return rd.renderParallel(w)
	}
	return rd.renderSerial(w)
}

func (rd *Renderer) renderSerial(w io.Writer) error {
	var buf bytes.Buffer
	done := 0
	for j := rd.ImageHeight - 1; j >= 0; j-- {
		buf.Reset()
		rd.renderRow(j, &buf)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		done++
		if rd.RowDone != nil {
			rd.RowDone(done, rd.ImageHeight)
		}
	}
	return nil
}

// renderParallel shades rows across Workers goroutines and reassembles the
// stream in output order before writing.
func (rd *Renderer) renderParallel(w io.Writer) error {
	height := rd.ImageHeight
	rows := make([][]byte, height) // index 0 = top output row (j = height-1)

	workers := rd.Workers
	if workers > height {
		workers = height
	}

	var next int64 = -1
	var done int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for wkr := 0; wkr < workers; wkr++ {
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			for {
				r := int(atomic.AddInt64(&next, 1))
				if r >= height {
					return
				}
				buf.Reset()
				rd.renderRow(height-1-r, &buf)
				rows[r] = append([]byte(nil), buf.Bytes()...)
				n := int(atomic.AddInt64(&done, 1))
				if rd.RowDone != nil {
					rd.RowDone(n, height)
				}
			}
		}()
	}
	wg.Wait()

	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (rd *Renderer) renderRow(j int, buf *bytes.Buffer) {
	v := RowV(j, rd.ImageHeight)
	for i := 0; i < rd.ImageWidth; i++ {
		u := ColU(i, rd.ImageWidth)
		_ = WriteColor(buf, rd.Scene.RayColor(rd.Camera.RayAt(u, v)))
	}
}
