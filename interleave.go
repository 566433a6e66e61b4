package qr

import "github.com/nth-eye/qr/reedsolomon"

// interleave splits the data codewords into Reed-Solomon blocks, computes
// each block's error-correction codewords, and interleaves everything
// column-major into the final codeword stream.
//
// Blocks are not all the same size: the first numShortBlocks hold shortLen
// data codewords and the rest one more. The interleaver preserves the
// imbalance by dropping the running output index back when it passes the
// slot a short block never fills.
func interleave(data []byte, version *Version, level ErrorCorrectionLevel) []byte {
	ecBlocks := version.ECBlocksForLevel(level)
	numBlocks := ecBlocks.NumBlocks()
	eccLen := ecBlocks.ECCodewordsPerBlock

	capacity := version.TotalCodewords
	numDataBytes := capacity - eccLen*numBlocks
	numShortBlocks := numBlocks - capacity%numBlocks
	shortLen := capacity/numBlocks - eccLen

	gen := reedsolomon.GeneratorPoly(eccLen)
	out := make([]byte, capacity)

	offset := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortLen
		if i >= numShortBlocks {
			dataLen++
		}
		block := data[offset : offset+dataLen]
		rem := reedsolomon.Remainder(block, gen)

		for j, k := 0, i; j < dataLen; j, k = j+1, k+numBlocks {
			if j == shortLen {
				k -= numShortBlocks
			}
			out[k] = block[j]
		}
		for j, k := 0, numDataBytes+i; j < eccLen; j, k = j+1, k+numBlocks {
			out[k] = rem[j]
		}
		offset += dataLen
	}
	return out
}
