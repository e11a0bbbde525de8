package skysphere

import (
	"bytes"
	"testing"
)

func testRenderer(t *testing.T, width int, workers int) *Renderer {
	t.Helper()
	cam, err := NewCamera(1, ViewportHeight, FocalLength)
	if err != nil {
		t.Fatal(err)
	}
	return &Renderer{
		Camera:      cam,
		Scene:       testScene(t),
		ImageWidth:  width,
		ImageHeight: ImageHeightFor(width, 1),
		Workers:     workers,
	}
}

func TestRenderTwoByTwo(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer(t, 2, 1).Render(&buf); err != nil {
		t.Fatal(err)
	}
	// All four corner rays miss the sphere; the top row (j=1, v=1) comes
	// first and blends further toward the sky color than the bottom row.
	want := "P3\n2 2\n255\n" +
		" 155 195 255\n" +
		" 155 195 255\n" +
		" 228 239 255\n" +
		" 228 239 255\n"
	if got := buf.String(); got != want {
		t.Fatalf("2x2 render mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	var a, b bytes.Buffer
	rd := testRenderer(t, 8, 1)
	if err := rd.Render(&a); err != nil {
		t.Fatal(err)
	}
	if err := rd.Render(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("two renders with identical parameters must be byte-identical")
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	var serial bytes.Buffer
	if err := testRenderer(t, 16, 1).Render(&serial); err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{2, 4, 32} {
		var par bytes.Buffer
		if err := testRenderer(t, 16, workers).Render(&par); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(serial.Bytes(), par.Bytes()) {
			t.Fatalf("workers=%d output differs from serial render", workers)
		}
	}
}

func TestRenderRowHookSerial(t *testing.T) {
	rd := testRenderer(t, 4, 1)
	var seen []int
	rd.RowDone = func(done, total int) {
		if total != rd.ImageHeight {
			t.Fatalf("hook total mismatch: %d", total)
		}
		seen = append(seen, done)
	}
	var buf bytes.Buffer
	if err := rd.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if len(seen) != rd.ImageHeight {
		t.Fatalf("hook called %d times for %d rows", len(seen), rd.ImageHeight)
	}
	for i, done := range seen {
		if done != i+1 {
			t.Fatalf("serial hook out of order: %v", seen)
		}
	}
}

func TestRenderRowHookParallel(t *testing.T) {
	rd := testRenderer(t, 4, 4)
	calls := make(chan int, rd.ImageHeight)
	rd.RowDone = func(done, total int) { calls <- done }
	var buf bytes.Buffer
	if err := rd.Render(&buf); err != nil {
		t.Fatal(err)
	}
	close(calls)
	n := 0
	for range calls {
		n++
	}
	if n != rd.ImageHeight {
		t.Fatalf("hook called %d times for %d rows", n, rd.ImageHeight)
	}
}

func TestRenderRejectsTinyImages(t *testing.T) {
	rd := testRenderer(t, 2, 1)
	rd.ImageWidth = 1
	var buf bytes.Buffer
	if err := rd.Render(&buf); err == nil {
		t.Fatal("expected error for a 1-pixel-wide image")
	}
}
