package pixconv

// Format represents a packed pixel storage format.
type Format uint8

const (
	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8 Format = iota

	// FormatRGBA8 is 32-bit RGBA, straight alpha (4 bytes per pixel).
	FormatRGBA8

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels, alpha included.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatBGR8: {
		BytesPerPixel: 3,
		Channels:      3,
		HasAlpha:      false,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatBGR8:
		return "BGR8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}
