package qr

import "github.com/nth-eye/qr/bitutil"

// placeData walks the zig-zag column route, writing the interleaved codeword
// stream MSB-first into every module the reservation raster leaves free.
// Remainder modules past the end of the stream keep their light reset value.
func placeData(grid, reserved *bitutil.BitMatrix, codewords []byte) {
	side := grid.Dimension()
	total := len(codewords) * 8
	pos := 0

	for x := side - 1; x >= 1; x -= 2 {
		if x == 6 {
			x = 5 // the timing column is not traversed
		}
		upward := (x+1)&2 == 0
		for i := 0; i < side; i++ {
			y := i
			if upward {
				y = side - 1 - i
			}
			for col := 0; col < 2; col++ {
				cx := x - col
				if reserved.Get(cx, y) {
					continue
				}
				if pos < total && codewords[pos>>3]>>(7-(pos&7))&1 != 0 {
					grid.Set(cx, y)
				}
				pos++
			}
		}
	}
}
