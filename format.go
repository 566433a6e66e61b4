package qr

import "github.com/nth-eye/qr/bitutil"

const (
	formatPoly  = 0x537
	formatMask  = 0x5412
	versionPoly = 0x1F25
)

// formatCoordinates lists the (x, y) position of each of the 15 format bits
// around the top-left finder, least-significant bit first. Row and column 6
// are skipped because the timing patterns run there.
var formatCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// writeFormatInfo places the masked BCH(15,5) format word for the given EC
// level and mask pattern in both of its redundant locations.
func writeFormatInfo(grid *bitutil.BitMatrix, level ErrorCorrectionLevel, mask int) {
	side := grid.Dimension()
	data := level.Bits()<<3 | mask
	word := (data<<10 | bchCode(data, formatPoly)) ^ formatMask

	for i := 0; i < 15; i++ {
		on := (word>>uint(i))&1 != 0
		setModule(grid, formatCoordinates[i][0], formatCoordinates[i][1], on)

		// Second location, split between the two remaining finders.
		if i < 8 {
			setModule(grid, side-1-i, 8, on)
		} else {
			setModule(grid, 8, side-7+(i-8), on)
		}
	}
}

// writeVersionInfo places the 18-bit version word next to the top-right and
// bottom-left finders for versions 7 and up.
func writeVersionInfo(grid *bitutil.BitMatrix, version *Version) {
	if version.Number < 7 {
		return
	}
	side := grid.Dimension()
	word := version.Number<<12 | bchCode(version.Number, versionPoly)

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			on := (word>>uint(bitIndex))&1 != 0
			bitIndex++
			setModule(grid, i, side-11+j, on)
			setModule(grid, side-11+j, i, on)
		}
	}
}

// bchCode returns the BCH remainder of value for the given generator
// polynomial.
func bchCode(value, poly int) int {
	msb := msbSet(poly)
	value <<= uint(msb - 1)
	for msbSet(value) >= msb {
		value ^= poly << uint(msbSet(value)-msb)
	}
	return value
}

func msbSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
