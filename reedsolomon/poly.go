package reedsolomon

// GeneratorPoly returns the coefficients of the degree-th Reed-Solomon
// generator polynomial, the product of (x - 2^i) for i in [0, degree).
// The constant term is last; the leading x^degree coefficient is implicit.
func GeneratorPoly(degree int) []byte {
	poly := make([]byte, degree)
	poly[degree-1] = 1

	root := 1
	for i := 0; i < degree; i++ {
		for j := 0; j < degree-1; j++ {
			poly[j] = byte(Mul(int(poly[j]), root)) ^ poly[j+1]
		}
		poly[degree-1] = byte(Mul(int(poly[degree-1]), root))
		root = Mul(root, 2)
	}
	return poly
}

// Remainder returns the remainder of message * x^len(gen) divided by the
// generator polynomial gen, which is the block's error-correction codewords.
func Remainder(message, gen []byte) []byte {
	rem := make([]byte, len(gen))
	for _, cw := range message {
		factor := int(cw ^ rem[0])
		copy(rem, rem[1:])
		rem[len(rem)-1] = 0
		for j, g := range gen {
			rem[j] ^= byte(Mul(int(g), factor))
		}
	}
	return rem
}

// gfPoly represents a polynomial with GF(256) coefficients, ordered from
// highest degree to lowest.
type gfPoly struct {
	coefficients []int
}

func newGFPoly(coefficients []int) *gfPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			coefficients = coefficients[firstNonZero:]
		}
	}
	return &gfPoly{coefficients: coefficients}
}

var (
	polyZero = &gfPoly{coefficients: []int{0}}
	polyOne  = &gfPoly{coefficients: []int{1}}
)

// monomial returns coefficient * x^degree.
func monomial(degree, coefficient int) *gfPoly {
	if coefficient == 0 {
		return polyZero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGFPoly(coefficients)
}

func (p *gfPoly) degree() int {
	return len(p.coefficients) - 1
}

func (p *gfPoly) isZero() bool {
	return p.coefficients[0] == 0
}

// coefficient returns the coefficient of x^degree.
func (p *gfPoly) coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

func (p *gfPoly) evaluateAt(a int) int {
	if a == 0 {
		return p.coefficient(0)
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = Mul(a, result) ^ p.coefficients[i]
	}
	return result
}

func (p *gfPoly) add(other *gfPoly) *gfPoly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}

	smaller := p.coefficients
	larger := other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = smaller[i-diff] ^ larger[i]
	}
	return newGFPoly(sum)
}

func (p *gfPoly) mul(other *gfPoly) *gfPoly {
	if p.isZero() || other.isZero() {
		return polyZero
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, ac := range p.coefficients {
		for j, bc := range other.coefficients {
			product[i+j] ^= Mul(ac, bc)
		}
	}
	return newGFPoly(product)
}

func (p *gfPoly) mulScalar(scalar int) *gfPoly {
	if scalar == 0 {
		return polyZero
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = Mul(c, scalar)
	}
	return newGFPoly(product)
}

func (p *gfPoly) mulMonomial(degree, coefficient int) *gfPoly {
	if coefficient == 0 {
		return polyZero
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = Mul(c, coefficient)
	}
	return newGFPoly(product)
}
