package pixconv

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixconv: invalid dimensions")

	// ErrSizeMismatch is returned when source and destination buffers
	// have different dimensions.
	ErrSizeMismatch = errors.New("pixconv: buffer size mismatch")

	// ErrClosed is returned when converting with a closed Converter.
	ErrClosed = errors.New("pixconv: converter closed")
)

// Buffer is a flat, row-major pixel buffer of width*height elements.
// The pixel at column x, row y lives at index width*y + x.
//
// Thread safety: concurrent reads are safe. Concurrent writes are safe only
// when no two goroutines write the same index.
type Buffer[T Pixel] struct {
	width  int
	height int
	pix    []T
}

// NewBuffer allocates a zeroed buffer with the given dimensions.
func NewBuffer[T Pixel](width, height int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer[T]{
		width:  width,
		height: height,
		pix:    make([]T, width*height),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer[T]) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer[T]) Height() int {
	return b.height
}

// Len returns the number of pixels, width*height.
func (b *Buffer[T]) Len() int {
	return len(b.pix)
}

// Pix returns the underlying pixel slice without copying.
func (b *Buffer[T]) Pix() []T {
	return b.pix
}

// Index returns the flat index of column x, row y.
func (b *Buffer[T]) Index(x, y int) int {
	return b.width*y + x
}

// At returns the pixel at column x, row y.
// Out of bounds coordinates return the zero pixel.
func (b *Buffer[T]) At(x, y int) T {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		var zero T
		return zero
	}
	return b.pix[b.Index(x, y)]
}

// Set stores v at column x, row y. Out of bounds writes are ignored.
func (b *Buffer[T]) Set(x, y int, v T) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[b.Index(x, y)] = v
}

// SameSize reports whether a and b have identical dimensions.
func SameSize[A, B Pixel](a *Buffer[A], b *Buffer[B]) bool {
	return a.width == b.width && a.height == b.height
}

// PackBGR returns the buffer as interleaved B, G, R bytes.
func PackBGR(b *Buffer[Pixel3]) []byte {
	out := make([]byte, FormatBGR8.ImageBytes(b.width, b.height))
	for i, p := range b.pix {
		j := i * 3
		out[j+0] = p.X
		out[j+1] = p.Y
		out[j+2] = p.Z
	}
	return out
}

// PackRGBA returns the buffer as interleaved R, G, B, A bytes.
func PackRGBA(b *Buffer[Pixel4]) []byte {
	out := make([]byte, FormatRGBA8.ImageBytes(b.width, b.height))
	for i, p := range b.pix {
		j := i * 4
		out[j+0] = p.X
		out[j+1] = p.Y
		out[j+2] = p.Z
		out[j+3] = p.W
	}
	return out
}

// ToImage copies the buffer into a standard library RGBA image.
// The result has straight alpha, which matches image.RGBA semantics only
// because every converted pixel is fully opaque.
func ToImage(b *Buffer[Pixel4]) *image.RGBA {
	return &image.RGBA{
		Pix:    PackRGBA(b),
		Stride: FormatRGBA8.RowBytes(b.width),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
