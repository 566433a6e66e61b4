package reedsolomon

import "testing"

func TestGaloisFieldBasics(t *testing.T) {
	// a * inverse(a) should be 1
	for a := 1; a < 256; a++ {
		if product := Mul(a, Inverse(a)); product != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, product)
		}
	}

	if Mul(0, 100) != 0 || Mul(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
	if Mul(1, 57) != 57 {
		t.Error("multiply by 1 should be identity")
	}

	// 2^8 reduces through the primitive polynomial: 0x11D & 0xFF = 0x1D.
	if Exp(8) != 0x1D {
		t.Errorf("Exp(8) = %#x, want 0x1D", Exp(8))
	}
	if Log(Exp(57)) != 57 {
		t.Errorf("Log(Exp(57)) = %d, want 57", Log(Exp(57)))
	}
}

func TestGeneratorPoly(t *testing.T) {
	// (x - 1)(x - 2) = x^2 + 3x + 2 over GF(256).
	got := GeneratorPoly(2)
	if len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Errorf("GeneratorPoly(2) = %v, want [3 2]", got)
	}

	// Higher-degree generators keep the constant term 2^(0+1+...+(d-1)).
	for _, degree := range []int{7, 10, 13, 30} {
		gen := GeneratorPoly(degree)
		if len(gen) != degree {
			t.Fatalf("GeneratorPoly(%d) has %d coefficients", degree, len(gen))
		}
		want := 1
		for i := 0; i < degree; i++ {
			want = Mul(want, Exp(i))
		}
		if int(gen[degree-1]) != want {
			t.Errorf("GeneratorPoly(%d) constant = %d, want %d", degree, gen[degree-1], want)
		}
	}
}

func TestRemainderIsValidCodeword(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x11, 0x22}
	for _, degree := range []int{7, 10, 17} {
		gen := GeneratorPoly(degree)
		rem := Remainder(data, gen)
		if len(rem) != degree {
			t.Fatalf("remainder has %d codewords, want %d", len(rem), degree)
		}
		// data || rem is a codeword, so dividing it again leaves no remainder.
		codeword := append(append([]byte{}, data...), rem...)
		for i, r := range Remainder(codeword, gen) {
			if r != 0 {
				t.Fatalf("degree %d: codeword remainder[%d] = %d, want 0", degree, i, r)
			}
		}
	}
}

func TestRemainderKnownVector(t *testing.T) {
	// Data codewords of the version 1-M "HELLO WORLD" symbol and their
	// published error-correction codewords.
	data := []byte{
		0x20, 0x5B, 0x0B, 0x78, 0xD1, 0x72, 0xDC, 0x4D,
		0x43, 0x40, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
	}
	want := []byte{0xC4, 0x23, 0x27, 0x77, 0xEB, 0xD7, 0xE7, 0xE2, 0x5D, 0x17}

	got := Remainder(data, GeneratorPoly(10))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ecc[%d] = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestDecodeNoErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	gen := GeneratorPoly(4)
	codeword := append(append([]byte{}, data...), Remainder(data, gen)...)

	received := toInts(codeword)
	corrected, err := Decode(received, 4)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0", corrected)
	}
}

func TestDecodeCorrectsErrors(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	gen := GeneratorPoly(7)
	codeword := append(append([]byte{}, data...), Remainder(data, gen)...)

	received := toInts(codeword)
	received[0] = 0
	received[3] = 200
	received[6] = 100

	corrected, err := Decode(received, 7)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 3 {
		t.Errorf("corrected = %d, want 3", corrected)
	}
	for i, want := range codeword {
		if received[i] != int(want) {
			t.Errorf("after correction, codeword[%d] = %d, want %d", i, received[i], want)
		}
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	gen := GeneratorPoly(4)
	codeword := append(append([]byte{}, data...), Remainder(data, gen)...)

	received := toInts(codeword)
	received[0] = 0
	received[1] = 0
	received[2] = 0 // 3 errors, only 2 correctable

	if _, err := Decode(received, 4); err == nil {
		t.Error("expected error for too many errors")
	}
}

func toInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
