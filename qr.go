// Package qr encodes QR symbols conforming to ISO/IEC 18004.
//
// An Encoder is fixed to one symbol version at construction; each Encode call
// rebuilds its module grid from a payload, an error-correction level and a
// mask selector. The finished symbol is read back one module at a time.
package qr

import (
	"strings"

	"github.com/nth-eye/qr/bitutil"
)

// MaskAuto selects the lowest-penalty mask pattern during Encode.
const MaskAuto = -1

// Encoder builds QR symbols of a single version. It owns the module grid and
// each Encode overwrites it, so an Encoder must not be shared between
// goroutines; distinct Encoders are fully independent.
type Encoder struct {
	version *Version
	side    int
	grid    *bitutil.BitMatrix
	level   ErrorCorrectionLevel
	mask    int
	ok      bool
}

// NewEncoder creates an Encoder for the given symbol version, 1 to 40.
func NewEncoder(version int) (*Encoder, error) {
	v, err := versionForNumber(version)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		version: v,
		side:    v.Dimension(),
		grid:    bitutil.NewBitMatrix(v.Dimension()),
		mask:    MaskAuto,
	}, nil
}

// Encode builds the symbol for payload at the given error-correction level.
// A mask in 0..7 forces that mask pattern; any other value (conventionally
// MaskAuto) selects the lowest-penalty one. On error the module grid is left
// in an indeterminate state.
func (e *Encoder) Encode(payload []byte, level ErrorCorrectionLevel, mask int) error {
	e.ok = false

	data, err := encodeSegment(payload, e.version, level)
	if err != nil {
		return err
	}
	codewords := interleave(data, e.version, level)

	reserved := reservePatterns(e.version)
	e.grid = reserved.Clone()
	paintPatterns(e.grid, e.version)
	placeData(e.grid, reserved, codewords)
	writeVersionInfo(e.grid, e.version)

	if mask < 0 || mask >= 8 {
		mask = selectMask(e.grid, reserved, level)
	}
	writeFormatInfo(e.grid, level, mask)
	applyMask(e.grid, reserved, mask)

	e.level = level
	e.mask = mask
	e.ok = true
	return nil
}

// Module reports the color of module (x, y) after a successful Encode;
// true is dark. x grows rightward and y downward from the top-left corner.
func (e *Encoder) Module(x, y int) bool {
	return e.grid.Get(x, y)
}

// Size returns the symbol side length, 17 + 4*version.
func (e *Encoder) Size() int {
	return e.side
}

// Version returns the symbol version fixed at construction.
func (e *Encoder) Version() int {
	return e.version.Number
}

// Valid reports whether the last Encode succeeded.
func (e *Encoder) Valid() bool {
	return e.ok
}

// Mask returns the mask pattern applied by the last successful Encode.
func (e *Encoder) Mask() int {
	return e.mask
}

// Level returns the error-correction level of the last successful Encode.
func (e *Encoder) Level() ErrorCorrectionLevel {
	return e.level
}

// String returns a visual representation of the symbol, two characters per
// module.
func (e *Encoder) String() string {
	var sb strings.Builder
	for y := 0; y < e.side; y++ {
		for x := 0; x < e.side; x++ {
			if e.Module(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
