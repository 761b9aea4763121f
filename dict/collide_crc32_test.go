//go:build !crc64

package dict

// pairs of distinct keys sharing a 32-bit HashKey
var collidingKeys = [][2]string{
	{"nidmovh", "bubanxn"},
	{"tjodhhw", "xvihifq"},
}
