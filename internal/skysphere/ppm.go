package skysphere

import (
	"fmt"
	"io"
)

// WritePPMHeader emits the plain-text P3 preamble: magic, dimensions,
// maximum channel value.
func WritePPMHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", width, height, MaxChannel)
	return err
}

// WriteColor emits one pixel line, space-prefixed and newline-terminated.
// Channels are scaled by ColorScale and truncated toward zero, never
// rounded. Values outside [0,1] are written out of range as-is; the P3
// stream stays byte-compatible with the reference output.
func WriteColor(w io.Writer, c RGB) error {
	_, err := fmt.Fprintf(w, " %d %d %d\n", int(ColorScale*c.R), int(ColorScale*c.G), int(ColorScale*c.B))
	return err
}
