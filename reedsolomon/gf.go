// Package reedsolomon implements the Reed-Solomon coding QR symbols use:
// arithmetic over GF(256) with reduction polynomial x^8 + x^4 + x^3 + x^2 + 1
// (0x11D) and generator element 2.
package reedsolomon

const (
	fieldSize = 256
	primitive = 0x11D
)

var (
	expTable [fieldSize]int
	logTable [fieldSize]int
)

func init() {
	x := 1
	for i := 0; i < fieldSize; i++ {
		expTable[i] = x
		x *= 2
		if x >= fieldSize {
			x ^= primitive
			x &= fieldSize - 1
		}
	}
	for i := 0; i < fieldSize-1; i++ {
		logTable[expTable[i]] = i
	}
}

// Mul returns a * b in GF(256).
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%(fieldSize-1)]
}

// Exp returns 2^a in GF(256).
func Exp(a int) int {
	return expTable[a]
}

// Log returns log2(a) in GF(256).
func Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return expTable[fieldSize-logTable[a]-1]
}
