package qr

// Mode represents a QR data encoding mode. The value is the 4-bit mode
// indicator written to the data stream.
type Mode int

const (
	ModeNumeric      Mode = 0x1
	ModeAlphanumeric Mode = 0x2
	ModeByte         Mode = 0x4
	ModeKanji        Mode = 0x8
)

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// AlphanumericCode returns the alphanumeric code for a byte, or -1 if the
// byte is outside the 45-character alphanumeric set.
func AlphanumericCode(c byte) int {
	if c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

func isNumeric(data []byte) bool {
	for _, c := range data {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(data []byte) bool {
	for _, c := range data {
		if AlphanumericCode(c) == -1 {
			return false
		}
	}
	return true
}

// isKanji reports whether data is a sequence of two-byte Shift-JIS codes
// whose big-endian values lie in 0x8140..0x9FFC or 0xE040..0xEBBF.
func isKanji(data []byte) bool {
	if len(data) == 0 || len(data)%2 != 0 {
		return false
	}
	for i := 0; i < len(data); i += 2 {
		v := int(data[i])<<8 | int(data[i+1])
		if v < 0x8140 || v > 0xEBBF || (v > 0x9FFC && v < 0xE040) {
			return false
		}
	}
	return true
}

// ChooseMode selects the encoding mode for a payload, trying the most compact
// first: numeric, then alphanumeric, then kanji, then byte.
func ChooseMode(data []byte) Mode {
	if isNumeric(data) {
		return ModeNumeric
	}
	if isAlphanumeric(data) {
		return ModeAlphanumeric
	}
	if isKanji(data) {
		return ModeKanji
	}
	return ModeByte
}

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeKanji:        {8, 10, 12},
}

// CharacterCountBits returns the width of the character count indicator for
// this mode in the given version.
func (m Mode) CharacterCountBits(version int) int {
	var offset int
	if version <= 9 {
		offset = 0
	} else if version <= 26 {
		offset = 1
	} else {
		offset = 2
	}
	return characterCountBits[m][offset]
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	case ModeKanji:
		return "kanji"
	}
	return "?"
}
