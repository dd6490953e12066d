// Package pixconv converts packed BGR pixel buffers into packed RGBA buffers
// with a data-parallel loop and checks the result against the input.
//
// # Quick Start
//
//	import "github.com/gogpu/pixconv"
//
//	src, _ := pixconv.GenerateBars(3840, 2160)
//
//	c := pixconv.NewConverter()
//	defer c.Close()
//
//	dst, _ := c.Convert(src)
//	ok := pixconv.Verify(dst, src)
//
// # Layout
//
// Pixels are stored in a flat, row-major [Buffer]: the pixel at column x,
// row y has index width*y + x. [Pixel3] holds three 8-bit channels and
// [Pixel4] holds four.
//
// # Conversion
//
// For every index the converter writes
//
//	out.X = in.Z
//	out.Y = in.Y
//	out.Z = in.X
//	out.W = 255
//
// Each output pixel depends only on its own input pixel, so the work is
// split by rows across a fixed-size worker pool with no synchronization
// beyond waiting for the pool. [ConvertSequential] is a single-goroutine
// reference that walks the buffer in transposed order.
//
// # Diagnostics
//
// A [Sink] attached with [WithSink] is told which worker processed each
// pixel. [WriterSink] serializes those reports with a mutex held only around
// the write. Leave the sink unset for real workloads.
//
// Structured logging goes through [SetLogger] and is silent by default.
package pixconv
