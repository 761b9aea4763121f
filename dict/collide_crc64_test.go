//go:build crc64

package dict

// pairs of distinct keys sharing a 64-bit HashKey; leading NUL bytes leave
// the accumulator at zero
var collidingKeys = [][2]string{
	{"a", "\x00a"},
	{"abc", "\x00\x00abc"},
}
