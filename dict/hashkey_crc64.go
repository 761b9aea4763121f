//go:build crc64

package dict

import "github.com/aglyzov/go-dictionary/crc"

// HashKey orders the tree.
type HashKey = uint64

// HashBits is the width of HashKey.
const HashBits = 64

type hasher struct {
	table *crc.Table64
}

func newHasher() hasher {
	return hasher{table: crc.MakeTable64()}
}

func (h hasher) hash(key string) HashKey {
	return h.table.ChecksumString(key)
}
