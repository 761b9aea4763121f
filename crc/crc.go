// Package crc builds the lookup tables used to turn variable-length keys into
// fixed-width hash keys.
//
// Two variants are provided:
//
//   - Table32 - a 32-bit CRC whose table entries are generated with an inverted
//     coefficient test and then XORed with 0xFF000000. The resulting checksum is
//     the same number IEEE CRC-32 produces.
//   - Table64 - a 64-bit CRC built from the reflected ECMA-182 polynomial but
//     applied most-significant-byte first.
//
// Both accumulators start at zero, so an empty input always hashes to 0.
//
// Tables are plain values: every owner builds its own and never mutates it after
// construction.
package crc

const (
	poly32 uint32 = 0xEDB88320
	mask32 uint32 = 0xFF000000
	poly64 uint64 = 0xC96C5795D7870F42

	tableSize = 0x100
)

type Table32 [tableSize]uint32

type Table64 [tableSize]uint64

func MakeTable32() *Table32 {
	var tab Table32

	for i := range tab {
		var r = uint32(i)

		for j := 0; j < 8; j++ {
			var c uint32

			if r&1 == 0 {
				c = poly32
			}
			r = c ^ r>>1
		}
		tab[i] = r ^ mask32
	}

	return &tab
}

func MakeTable64() *Table64 {
	var tab Table64

	for i := range tab {
		var r = uint64(i)

		for j := 0; j < 8; j++ {
			if r&1 != 0 {
				// the implied x^64 coefficient cancels the low bit
				r = r>>1 ^ poly64
			} else {
				r >>= 1
			}
		}
		tab[i] = r
	}

	return &tab
}

// Checksum returns the 32-bit hash of p.
func (tab *Table32) Checksum(p []byte) uint32 {
	var crc uint32

	for _, b := range p {
		crc = tab[byte(crc)^b] ^ crc>>8
	}

	return crc
}

// ChecksumString is Checksum for a string without copying it into a []byte.
func (tab *Table32) ChecksumString(s string) uint32 {
	var crc uint32

	for i := 0; i < len(s); i++ {
		crc = tab[byte(crc)^s[i]] ^ crc>>8
	}

	return crc
}

// Checksum returns the 64-bit hash of p.
func (tab *Table64) Checksum(p []byte) uint64 {
	var crc uint64

	for _, b := range p {
		crc = tab[byte(crc>>56)^b] ^ crc<<8
	}

	return crc
}

// ChecksumString is Checksum for a string without copying it into a []byte.
func (tab *Table64) ChecksumString(s string) uint64 {
	var crc uint64

	for i := 0; i < len(s); i++ {
		crc = tab[byte(crc>>56)^s[i]] ^ crc<<8
	}

	return crc
}
