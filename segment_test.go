package qr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nth-eye/qr/bitutil"
)

func mustVersion(t *testing.T, n int) *Version {
	t.Helper()
	v, err := versionForNumber(n)
	if err != nil {
		t.Fatalf("versionForNumber(%d): %v", n, err)
	}
	return v
}

// Published data codewords of the version 1-M "HELLO WORLD" symbol.
func TestEncodeSegmentHelloWorld(t *testing.T) {
	v := mustVersion(t, 1)
	got, err := encodeSegment([]byte("HELLO WORLD"), v, ECLevelM)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	want := []byte{
		0x20, 0x5B, 0x0B, 0x78, 0xD1, 0x72, 0xDC, 0x4D,
		0x43, 0x40, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("data codewords\n got %02X\nwant %02X", got, want)
	}
}

// An alphanumeric segment at version 3 opens with mode bits 0010 and a 9-bit
// character count.
func TestEncodeSegmentAlphanumericHeader(t *testing.T) {
	v := mustVersion(t, 3)
	got, err := encodeSegment([]byte("HELLO WORLD"), v, ECLevelH)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	if got[0]>>4 != 0x2 {
		t.Errorf("mode bits = %04b, want 0010", got[0]>>4)
	}
	if got[0] != 0x20 || got[1] != 0x5B {
		t.Errorf("header bytes = %02X %02X, want 20 5B", got[0], got[1])
	}
	if ModeAlphanumeric.CharacterCountBits(3) != 9 {
		t.Error("alphanumeric CCI width at version 3 should be 9")
	}
}

// Numeric packing: "12345" is 123 as 10 bits then 45 as 7 bits.
func TestEncodeSegmentNumeric(t *testing.T) {
	v := mustVersion(t, 1)
	got, err := encodeSegment([]byte("12345"), v, ECLevelL)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	if len(got) != 19 {
		t.Fatalf("len = %d, want 19", len(got))
	}
	// 0001 | 0000000101 | 0001111011 | 0101101 | terminator and padding
	want := []byte{0x10, 0x14, 0x7B, 0x5A, 0x00, 0xEC, 0x11}
	if !bytes.Equal(got[:len(want)], want) {
		t.Errorf("stream prefix\n got %02X\nwant %02X", got[:len(want)], want)
	}
}

func TestAppendNumericRemainders(t *testing.T) {
	tests := []struct {
		digits string
		bits   int
	}{
		{"1", 4},
		{"12", 7},
		{"123", 10},
		{"1234", 14},
		{"12345", 17},
		{"123456", 20},
	}
	for _, tc := range tests {
		ba := bitutil.NewBitArray(0)
		appendNumeric([]byte(tc.digits), ba)
		if ba.Size() != tc.bits {
			t.Errorf("appendNumeric(%q) wrote %d bits, want %d", tc.digits, ba.Size(), tc.bits)
		}
	}
}

// Kanji packing: 0x935F shifts down by 0x8140 to 0x121F and packs to 0xD9F;
// 0xE4AA shifts down by 0xC140 to 0x236A and packs to 0x1AAA.
func TestAppendKanji(t *testing.T) {
	ba := bitutil.NewBitArray(0)
	appendKanji([]byte{0x93, 0x5F, 0xE4, 0xAA}, ba)
	if ba.Size() != 26 {
		t.Fatalf("size = %d, want 26", ba.Size())
	}
	bs := bitutil.NewBitSource(ba.Bytes())
	if v, _ := bs.ReadBits(13); v != 0xD9F {
		t.Errorf("first kanji = %#x, want 0xD9F", v)
	}
	if v, _ := bs.ReadBits(13); v != 0x1AAA {
		t.Errorf("second kanji = %#x, want 0x1AAA", v)
	}
}

// The kanji character count indicator carries characters, not bytes.
func TestEncodeSegmentKanjiCount(t *testing.T) {
	v := mustVersion(t, 1)
	got, err := encodeSegment([]byte{0x93, 0x5F, 0xE4, 0xAA}, v, ECLevelL)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	bs := bitutil.NewBitSource(got)
	if mode, _ := bs.ReadBits(4); mode != ModeKanji.Bits() {
		t.Fatalf("mode bits = %04b, want 1000", mode)
	}
	if count, _ := bs.ReadBits(8); count != 2 {
		t.Errorf("character count = %d, want 2", count)
	}
}

func TestTerminatorAndPadding(t *testing.T) {
	// 17 bytes fill version 1-L exactly: 4 + 8 + 136 = 148 bits leaves room
	// for the full 4-bit terminator and no pad bytes.
	v := mustVersion(t, 1)
	payload := bytes.Repeat([]byte{0xAB}, 17)
	got, err := encodeSegment(payload, v, ECLevelL)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	if len(got) != 19 {
		t.Fatalf("len = %d, want 19", len(got))
	}
	if got[18] != 0xB0 { // last payload nibble 1011 then terminator 0000
		t.Errorf("final byte = %02X, want B0", got[18])
	}

	// A short payload pads with alternating EC 11 EC 11 ...
	got, err = encodeSegment([]byte("AC-42"), v, ECLevelL)
	if err != nil {
		t.Fatalf("encodeSegment: %v", err)
	}
	// 4 + 9 + 11 + 11 + 6 = 41 bits, terminator to 45, pad to 48 = 6 bytes.
	for i := 6; i < 19; i++ {
		want := byte(0xEC)
		if (i-6)%2 == 1 {
			want = 0x11
		}
		if got[i] != want {
			t.Errorf("pad byte %d = %02X, want %02X", i, got[i], want)
		}
	}
}

func TestCapacityExceeded(t *testing.T) {
	v := mustVersion(t, 1)

	// Byte mode at version 1-L: 17 bytes fit, 18 do not.
	if _, err := encodeSegment(bytes.Repeat([]byte{0x7F}, 17), v, ECLevelL); err != nil {
		t.Errorf("17 bytes should fit version 1-L: %v", err)
	}
	if _, err := encodeSegment(bytes.Repeat([]byte{0x7F}, 18), v, ECLevelL); !errors.Is(err, ErrCapacity) {
		t.Errorf("18 bytes should exceed version 1-L capacity, got %v", err)
	}

	// Alphanumeric at version 1-L: 25 characters fit, 26 do not.
	if _, err := encodeSegment([]byte(strings.Repeat("A", 25)), v, ECLevelL); err != nil {
		t.Errorf("25 alphanumeric characters should fit version 1-L: %v", err)
	}
	if _, err := encodeSegment([]byte(strings.Repeat("A", 26)), v, ECLevelL); !errors.Is(err, ErrCapacity) {
		t.Errorf("26 alphanumeric characters should exceed version 1-L capacity, got %v", err)
	}
}
