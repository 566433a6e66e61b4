package reedsolomon

import "errors"

// ErrDecode indicates a Reed-Solomon decoding failure.
var ErrDecode = errors.New("reedsolomon: decoding error")

// Decode corrects errors in received in-place and returns the number of
// errors corrected. twoS is the number of error-correction codewords; up to
// twoS/2 corrupted codewords can be repaired.
func Decode(received []int, twoS int) (int, error) {
	poly := newGFPoly(received)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.evaluateAt(Exp(i))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := newGFPoly(syndromeCoefficients)
	sigma, omega, err := runEuclideanAlgorithm(monomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}
	errorLocations, err := findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := findErrorMagnitudes(omega, errorLocations)
	for i := 0; i < len(errorLocations); i++ {
		position := len(received) - 1 - Log(errorLocations[i])
		if position < 0 {
			return 0, ErrDecode
		}
		received[position] ^= errorMagnitudes[i]
	}
	return len(errorLocations), nil
}

func runEuclideanAlgorithm(a, b *gfPoly, R int) (sigma, omega *gfPoly, err error) {
	if a.degree() < b.degree() {
		a, b = b, a
	}

	rLast := a
	r := b
	tLast := polyZero
	t := polyOne

	for 2*r.degree() >= R {
		rLastLast := rLast
		tLastLast := tLast
		rLast = r
		tLast = t

		if rLast.isZero() {
			return nil, nil, ErrDecode
		}
		r = rLastLast
		q := polyZero
		denominatorLeadingTerm := rLast.coefficient(rLast.degree())
		dltInverse := Inverse(denominatorLeadingTerm)
		for r.degree() >= rLast.degree() && !r.isZero() {
			degreeDiff := r.degree() - rLast.degree()
			scale := Mul(r.coefficient(r.degree()), dltInverse)
			q = q.add(monomial(degreeDiff, scale))
			r = r.add(rLast.mulMonomial(degreeDiff, scale))
		}

		t = q.mul(tLast).add(tLastLast)

		if r.degree() >= rLast.degree() {
			return nil, nil, ErrDecode
		}
	}

	sigmaTildeAtZero := t.coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrDecode
	}

	inverse := Inverse(sigmaTildeAtZero)
	return t.mulScalar(inverse), r.mulScalar(inverse), nil
}

func findErrorLocations(errorLocator *gfPoly) ([]int, error) {
	numErrors := errorLocator.degree()
	if numErrors == 1 {
		return []int{errorLocator.coefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < fieldSize && len(result) < numErrors; i++ {
		if errorLocator.evaluateAt(i) == 0 {
			result = append(result, Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrDecode
	}
	return result, nil
}

func findErrorMagnitudes(errorEvaluator *gfPoly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := Inverse(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i != j {
				term := Mul(errorLocations[j], xiInverse)
				denominator = Mul(denominator, term^1)
			}
		}
		result[i] = Mul(errorEvaluator.evaluateAt(xiInverse), Inverse(denominator))
	}
	return result
}
