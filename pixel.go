package pixconv

// Opaque is the alpha value written to every converted pixel.
const Opaque uint8 = 255

// Pixel3 is one pixel in 3-channel packed layout.
// For BGR input, X is blue, Y is green and Z is red.
type Pixel3 struct {
	X, Y, Z uint8
}

// Pixel4 is one pixel in 4-channel packed layout.
// For RGBA output, X is red, Y is green, Z is blue and W is alpha.
type Pixel4 struct {
	X, Y, Z, W uint8
}

// Pixel is the set of pixel layouts a Buffer can hold.
type Pixel interface {
	Pixel3 | Pixel4
}

// SwapToRGBA converts a BGR pixel to RGBA: the first and third channels
// trade places and alpha is set to Opaque.
func SwapToRGBA(p Pixel3) Pixel4 {
	return Pixel4{X: p.Z, Y: p.Y, Z: p.X, W: Opaque}
}
