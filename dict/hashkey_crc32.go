//go:build !crc64

package dict

import "github.com/aglyzov/go-dictionary/crc"

// HashKey orders the tree. Build with the crc64 tag for a 64-bit key.
type HashKey = uint32

// HashBits is the width of HashKey.
const HashBits = 32

type hasher struct {
	table *crc.Table32
}

func newHasher() hasher {
	return hasher{table: crc.MakeTable32()}
}

func (h hasher) hash(key string) HashKey {
	return h.table.ChecksumString(key)
}
