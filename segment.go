package qr

import (
	"fmt"

	"github.com/nth-eye/qr/bitutil"
)

// encodeSegment writes the mode indicator, the character count indicator and
// the mode-specific payload bits, then terminates and pads the stream to the
// version's data capacity. It returns the data codewords.
func encodeSegment(payload []byte, version *Version, level ErrorCorrectionLevel) ([]byte, error) {
	mode := ChooseMode(payload)

	count := len(payload)
	if mode == ModeKanji {
		count /= 2
	}

	numDataBytes := version.DataCapacity(level)

	bits := bitutil.NewBitArray(numDataBytes * 8)
	bits.AppendBits(uint32(mode.Bits()), 4)
	bits.AppendBits(uint32(count), mode.CharacterCountBits(version.Number))

	switch mode {
	case ModeNumeric:
		appendNumeric(payload, bits)
	case ModeAlphanumeric:
		appendAlphanumeric(payload, bits)
	case ModeKanji:
		appendKanji(payload, bits)
	default:
		appendBytes(payload, bits)
	}

	if err := terminateBits(numDataBytes, bits); err != nil {
		return nil, err
	}
	return bits.Bytes(), nil
}

// appendNumeric packs digits three at a time into 10 bits, with a 2-digit
// remainder as 7 bits and a 1-digit remainder as 4 bits.
func appendNumeric(payload []byte, bits *bitutil.BitArray) {
	length := len(payload)
	i := 0
	for i < length {
		num1 := int(payload[i] - '0')
		if i+2 < length {
			num2 := int(payload[i+1] - '0')
			num3 := int(payload[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(payload[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
}

// appendAlphanumeric packs character pairs as code1*45+code2 into 11 bits,
// with a trailing single character as 6 bits.
func appendAlphanumeric(payload []byte, bits *bitutil.BitArray) {
	length := len(payload)
	i := 0
	for i+1 < length {
		code1 := AlphanumericCode(payload[i])
		code2 := AlphanumericCode(payload[i+1])
		bits.AppendBits(uint32(code1*45+code2), 11)
		i += 2
	}
	if i < length {
		bits.AppendBits(uint32(AlphanumericCode(payload[i])), 6)
	}
}

func appendBytes(payload []byte, bits *bitutil.BitArray) {
	for _, c := range payload {
		bits.AppendBits(uint32(c), 8)
	}
}

// appendKanji packs each big-endian Shift-JIS pair into 13 bits.
func appendKanji(payload []byte, bits *bitutil.BitArray) {
	for i := 0; i < len(payload); i += 2 {
		v := int(payload[i])<<8 | int(payload[i+1])
		if v < 0x9FFC {
			v -= 0x8140
		} else {
			v -= 0xC140
		}
		bits.AppendBits(uint32((v>>8)*0xC0+(v&0xFF)), 13)
	}
}

// terminateBits appends the terminator, pads to the next byte boundary with
// zero bits, and fills the remaining capacity with alternating 0xEC and 0x11.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits exceed %d-bit capacity", ErrCapacity, bits.Size(), capacity)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}
