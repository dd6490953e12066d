package pixconv

import "testing"

func TestVerify_ConverterOutput(t *testing.T) {
	src := randomBuffer(t, 31, 17, 7)
	dst := convertWith(t, src)

	if !Verify(dst, src) {
		t.Error("Verify() = false, want true")
	}
	if n := CountMismatches(dst, src); n != 0 {
		t.Errorf("CountMismatches() = %d, want 0", n)
	}
}

func TestVerify_SingleMutation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Pixel4)
	}{
		{"alpha not opaque", func(p *Pixel4) { p.W = 254 }},
		{"channel 0 wrong", func(p *Pixel4) { p.X ^= 1 }},
		{"channel 1 wrong", func(p *Pixel4) { p.Y ^= 0x80 }},
		{"channel 2 wrong", func(p *Pixel4) { p.Z++ }},
	}

	src := randomBuffer(t, 16, 16, 8)
	positions := []int{0, 77, 16*16 - 1}

	for _, tt := range tests {
		for _, pos := range positions {
			t.Run(tt.name, func(t *testing.T) {
				dst := convertWith(t, src, WithWorkers(2))
				tt.mutate(&dst.pix[pos])

				if Verify(dst, src) {
					t.Errorf("Verify() = true after mutating pixel %d", pos)
				}
				if n := CountMismatches(dst, src); n != 1 {
					t.Errorf("CountMismatches() = %d, want 1", n)
				}
			})
		}
	}
}

func TestVerify_LengthMismatch(t *testing.T) {
	src := randomBuffer(t, 4, 4, 9)
	dst, _ := NewBuffer[Pixel4](4, 3)

	if Verify(dst, src) {
		t.Error("Verify() = true for buffers of different length")
	}
	if n := CountMismatches(dst, src); n != 16 {
		t.Errorf("CountMismatches() = %d, want 16", n)
	}
}

func TestVerify_ZeroOutput(t *testing.T) {
	src, _ := GenerateBars(6, 6)
	dst, _ := NewBuffer[Pixel4](6, 6)

	if Verify(dst, src) {
		t.Error("Verify() = true for an unconverted buffer")
	}
	if n := CountMismatches(dst, src); n != 36 {
		t.Errorf("CountMismatches() = %d, want 36", n)
	}
}
