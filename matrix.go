package qr

import "github.com/nth-eye/qr/bitutil"

// reservePatterns marks every function, format and version module of the
// version's geometry in a fresh raster. The data placer and the masker skip
// marked modules.
func reservePatterns(version *Version) *bitutil.BitMatrix {
	side := version.Dimension()
	m := bitutil.NewBitMatrix(side)

	// Timing column and row
	m.SetRegion(6, 0, 1, side)
	m.SetRegion(0, 6, side, 1)

	// Finder patterns with their separators and the format zone
	m.SetRegion(0, 0, 9, 9)
	m.SetRegion(side-8, 0, 8, 9)
	m.SetRegion(0, side-8, 9, 8)

	forEachAlignment(version, func(cx, cy int) {
		m.SetRegion(cx-2, cy-2, 5, 5)
	})

	if version.Number >= 7 {
		m.SetRegion(0, side-11, 6, 3)
		m.SetRegion(side-11, 0, 3, 6)
	}
	return m
}

// forEachAlignment visits every alignment-pattern center except the three
// that would overlap the finder patterns.
func forEachAlignment(version *Version, visit func(cx, cy int)) {
	centers := version.AlignmentPatternCenters
	n := len(centers)
	for i, cy := range centers {
		for j, cx := range centers {
			if (i == 0 && j == 0) || (i == 0 && j == n-1) || (j == 0 && i == n-1) {
				continue
			}
			visit(cx, cy)
		}
	}
}

// paintPatterns carves the light modules of the function patterns out of a
// grid that starts as a copy of the reservation raster, where every function
// module is dark. Finder and alignment patterns become their square-in-square
// layout, separators turn light, and the timing patterns are perforated.
func paintPatterns(grid *bitutil.BitMatrix, version *Version) {
	side := grid.Dimension()

	// 1-module light inset at radius 1 inside each finder
	unsetRing(grid, 1, 1, 5, 5)
	unsetRing(grid, side-6, 1, 5, 5)
	unsetRing(grid, 1, side-6, 5, 5)

	forEachAlignment(version, func(cx, cy int) {
		unsetRing(grid, cx-1, cy-1, 3, 3)
	})

	// Separators
	grid.UnsetRegion(0, 7, 8, 1)
	grid.UnsetRegion(7, 0, 1, 8)
	grid.UnsetRegion(0, side-8, 8, 1)
	grid.UnsetRegion(7, side-8, 1, 8)
	grid.UnsetRegion(side-8, 7, 8, 1)
	grid.UnsetRegion(side-8, 0, 1, 8)

	// Perforate the timing patterns; even offsets stay dark.
	for i := 7; i < side-7; i += 2 {
		grid.Unset(i, 6)
		grid.Unset(6, i)
	}
}

// unsetRing clears the one-module-wide perimeter of a rectangle.
func unsetRing(grid *bitutil.BitMatrix, left, top, width, height int) {
	for x := left; x < left+width; x++ {
		grid.Unset(x, top)
		grid.Unset(x, top+height-1)
	}
	for y := top + 1; y < top+height-1; y++ {
		grid.Unset(left, y)
		grid.Unset(left+width-1, y)
	}
}

func setModule(grid *bitutil.BitMatrix, x, y int, on bool) {
	if on {
		grid.Set(x, y)
	} else {
		grid.Unset(x, y)
	}
}
