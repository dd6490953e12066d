package pixconv

// Verify reports whether out is the RGBA conversion of in: for every index,
// the first and third channels are swapped, the second is unchanged and
// alpha is Opaque.
//
// Every element is checked; there is no early exit. Buffers of different
// length never verify.
func Verify(out *Buffer[Pixel4], in *Buffer[Pixel3]) bool {
	if len(out.pix) != len(in.pix) {
		return false
	}

	ok := true
	for i, o := range out.pix {
		p := in.pix[i]
		ok = ok && o.X == p.Z
		ok = ok && o.Y == p.Y
		ok = ok && o.Z == p.X
		ok = ok && o.W == Opaque
	}
	return ok
}

// CountMismatches returns the number of elements of out that are not the
// RGBA conversion of the matching element of in. Buffers of different length
// count every element of the longer one.
func CountMismatches(out *Buffer[Pixel4], in *Buffer[Pixel3]) int {
	if len(out.pix) != len(in.pix) {
		return max(len(out.pix), len(in.pix))
	}

	n := 0
	for i, o := range out.pix {
		if o != SwapToRGBA(in.pix[i]) {
			n++
		}
	}
	return n
}
