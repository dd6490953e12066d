package pixconv

import (
	"time"

	"github.com/gogpu/pixconv/internal/parallel"
)

// Converter turns BGR buffers into RGBA buffers on a fixed-size worker pool.
//
// Rows are split into contiguous ranges and spread over the pool. Each
// output pixel depends only on the input pixel at the same index, so the
// result does not depend on how rows are scheduled.
//
// Thread safety: Converter is safe for concurrent use. Close must not be
// called while a conversion is running.
type Converter struct {
	pool *parallel.WorkerPool
	sink Sink
}

// NewConverter creates a Converter and starts its worker pool.
// Call Close to stop the workers.
func NewConverter(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{
		pool: parallel.NewWorkerPool(o.workers),
		sink: o.sink,
	}
}

// Workers returns the size of the worker pool.
func (c *Converter) Workers() int {
	return c.pool.Workers()
}

// Convert allocates an RGBA buffer and fills it from src.
// After Close, Convert returns ErrClosed.
func (c *Converter) Convert(src *Buffer[Pixel3]) (*Buffer[Pixel4], error) {
	if !c.pool.IsRunning() {
		return nil, ErrClosed
	}
	dst, err := NewBuffer[Pixel4](src.width, src.height)
	if err != nil {
		return nil, err
	}
	if err := c.ConvertInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvertInto fills dst from src. Both buffers must have the same
// dimensions, otherwise ErrSizeMismatch is returned and dst is untouched.
// After Close, ConvertInto returns ErrClosed.
func (c *Converter) ConvertInto(dst *Buffer[Pixel4], src *Buffer[Pixel3]) error {
	if !c.pool.IsRunning() {
		return ErrClosed
	}
	if !SameSize(dst, src) {
		return ErrSizeMismatch
	}

	log := Logger()
	log.Debug("pixconv: convert start",
		"width", src.width, "height", src.height, "workers", c.pool.Workers(),
		"from", FormatBGR8, "to", FormatRGBA8)
	start := time.Now()

	width := src.width
	in, out := src.pix, dst.pix
	sink := c.sink

	c.pool.For(src.height, func(worker, y0, y1 int) {
		if sink == nil {
			for y := y0; y < y1; y++ {
				row := width * y
				for x := range width {
					out[row+x] = SwapToRGBA(in[row+x])
				}
			}
			return
		}
		for y := y0; y < y1; y++ {
			row := width * y
			for x := range width {
				sink.Visit(worker)
				out[row+x] = SwapToRGBA(in[row+x])
			}
		}
	})

	log.Debug("pixconv: convert done", "elapsed", time.Since(start))
	return nil
}

// Close stops the worker pool. Close is safe to call multiple times.
func (c *Converter) Close() {
	c.pool.Close()
}

// ConvertSequential fills dst from src on the calling goroutine.
//
// It walks columns in the outer loop and rows in the inner loop, the
// transpose of Converter's order. The map is per index, so the result is
// identical; only memory access order differs.
func ConvertSequential(dst *Buffer[Pixel4], src *Buffer[Pixel3]) error {
	if !SameSize(dst, src) {
		return ErrSizeMismatch
	}
	for x := range src.width {
		for y := range src.height {
			dst.Set(x, y, SwapToRGBA(src.At(x, y)))
		}
	}
	return nil
}
