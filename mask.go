package qr

import (
	"math"

	"github.com/nth-eye/qr/bitutil"
)

// maskCondition reports whether mask m keeps module (x, y) unchanged.
// A module is flipped when the condition is false.
func maskCondition(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 != 0
	case 1:
		return y%2 != 0
	case 2:
		return x%3 != 0
	case 3:
		return (x+y)%3 != 0
	case 4:
		return (y/2+x/3)%2 != 0
	case 5:
		return (x*y)%2+(x*y)%3 != 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 != 0
	case 7:
		return ((x+y)%2+(x*y)%3)%2 != 0
	}
	return true
}

// applyMask flips every non-reserved module the mask condition rejects.
// Applying the same mask twice restores the grid exactly.
func applyMask(grid, reserved *bitutil.BitMatrix, mask int) {
	side := grid.Dimension()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if reserved.Get(x, y) {
				continue
			}
			if !maskCondition(mask, x, y) {
				grid.Flip(x, y)
			}
		}
	}
}

// penaltyScore computes the four-rule mask penalty; lower is better.
func penaltyScore(grid *bitutil.BitMatrix) int {
	return runPenalty(grid, true) +
		runPenalty(grid, false) +
		blockPenalty(grid) +
		balancePenalty(grid)
}

// runPenalty scans each row (or column) once, charging 3 + (k - 5) for every
// run of k >= 5 same-colored modules and 40 for every 11-module window that
// matches a finder-like 1:1:3:1:1 sequence with its four-module light flank.
func runPenalty(grid *bitutil.BitMatrix, horizontal bool) int {
	side := grid.Dimension()
	score := 0

	at := func(a, b int) bool {
		if horizontal {
			return grid.Get(b, a)
		}
		return grid.Get(a, b)
	}

	for a := 0; a < side; a++ {
		color := at(a, 0)
		run := 1
		window := 0
		if color {
			window = 1
		}
		for b := 1; b < side; b++ {
			c := at(a, b)
			if c == color {
				run++
				if run == 5 {
					score += 3
				} else if run > 5 {
					score++
				}
			} else {
				color = c
				run = 1
			}
			window = (window << 1) & 0x7FF
			if c {
				window |= 1
			}
			if b >= 10 && (window == 0x05D || window == 0x5D0) {
				score += 40
			}
		}
	}
	return score
}

// blockPenalty charges 3 for every 2x2 block of equal color.
func blockPenalty(grid *bitutil.BitMatrix) int {
	side := grid.Dimension()
	score := 0
	for y := 0; y < side-1; y++ {
		for x := 0; x < side-1; x++ {
			c := grid.Get(x, y)
			if c == grid.Get(x+1, y) && c == grid.Get(x, y+1) && c == grid.Get(x+1, y+1) {
				score += 3
			}
		}
	}
	return score
}

// balancePenalty charges 10 for every 5% the dark-module proportion deviates
// from 50%.
func balancePenalty(grid *bitutil.BitMatrix) int {
	total := grid.Dimension() * grid.Dimension()
	return abs(grid.Count()*100/total-50) / 5 * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// selectMask trials all eight masks and returns the lowest-penalty one, ties
// broken to the smallest index. Each trial writes the candidate's format bits
// first so the score sees the symbol exactly as it would be emitted, and
// reverts the mask by reapplying it.
func selectMask(grid, reserved *bitutil.BitMatrix, level ErrorCorrectionLevel) int {
	best := 0
	minPenalty := math.MaxInt32
	for m := 0; m < 8; m++ {
		writeFormatInfo(grid, level, m)
		applyMask(grid, reserved, m)
		if penalty := penaltyScore(grid); penalty < minPenalty {
			minPenalty = penalty
			best = m
		}
		applyMask(grid, reserved, m)
	}
	return best
}
