package pixconv

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Bar colors of the test pattern, written in channel order X, Y, Z.
var (
	barFirst  = pixel3From(colornames.Red)
	barSecond = pixel3From(colornames.Lime)
	barThird  = pixel3From(colornames.Blue)
)

func pixel3From(c color.RGBA) Pixel3 {
	return Pixel3{X: c.R, Y: c.G, Z: c.B}
}

// GenerateBars returns a width x height buffer filled with three color bars
// {255,0,0}, {0,255,0} and {0,0,255}.
//
// The bar length is height/3 and is compared against the flat index, not the
// row. Only the first 2*(height/3) pixels belong to the first two bars; the
// rest of the buffer is the third bar. Existing outputs depend on this exact
// layout.
func GenerateBars(width, height int) (*Buffer[Pixel3], error) {
	buf, err := NewBuffer[Pixel3](width, height)
	if err != nil {
		return nil, err
	}

	bar := height / 3
	for i := range buf.pix {
		switch {
		case i < bar:
			buf.pix[i] = barFirst
		case i < bar*2:
			buf.pix[i] = barSecond
		default:
			buf.pix[i] = barThird
		}
	}

	return buf, nil
}
