// Package dict implements a string to string dictionary for memory
// constrained programs.
//
// Keys are hashed with a table-driven CRC (32-bit by default, 64-bit with the
// crc64 build tag) and the resulting HashKey orders an unbalanced binary
// search tree. Keys with colliding hashes are told apart by their text.
//
// Besides the tree, every entry is tracked by a positional index, so the
// entries can be enumerated with KeyAt/ValueAt in the order they were created.
// Deleting an entry whose node has two children moves the content of its
// in-order successor into that node, so the successor's entry takes over the
// deleted entry's position.
//
// A Dict is not safe for concurrent use.
package dict

import (
	"github.com/aglyzov/go-dictionary/index"
)

type Item struct {
	Key string
	Val string
}
type ItemSlice []Item

// The zero value is an empty Dict ready to use with the default capacity.
type Dict struct {
	hasher
	tree
}

// Init (re)initializes a dict with the given options.
func Init(d *Dict, opts ...Option) *Dict {
	cfg := config{capacity: index.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	*d = Dict{
		hasher: newHasher(),
		tree:   newTree(cfg.capacity, cfg.tracer),
	}
	for _, item := range cfg.items {
		d.Set(item.Key, item.Val)
	}
	return d
}

func New(opts ...Option) *Dict {
	return Init(&Dict{}, opts...)
}

func NewDict(items ...Item) *Dict {
	return New(WithItems(items...))
}

// empty reports whether the dict was never initialized.
func (d *Dict) empty() bool {
	return d.pool == nil
}

func (d *Dict) lazyInit() {
	if d.empty() {
		Init(d)
	}
}

// HashOf returns the HashKey the dict derives from the key.
func (d *Dict) HashOf(key string) HashKey {
	d.lazyInit()
	return d.hash(key)
}

// Len returns the number of keys.
func (d *Dict) Len() int {
	return d.index.Len()
}

// Size returns the storage the entries would take as NUL-terminated strings:
// the sum of len(key)+len(val)+2 over all entries.
func (d *Dict) Size() int {
	var size int
	d.index.Each(func(_ int, idx int) bool {
		n := &d.pool.Nodes[idx]
		size += len(n.key) + len(n.val) + 2
		return true
	})
	return size
}

// Set associates a value with the key, replacing the previous one.
func (d *Dict) Set(key, val string) {
	d.lazyInit()
	d.insert(d.hash(key), key, val)
}

// Get returns the value associated with the key.
func (d *Dict) Get(key string) (val string, ok bool) {
	if d.empty() {
		return
	}
	idx := d.search(d.hash(key), key)
	if idx == nilRef {
		return
	}
	return d.pool.Nodes[idx].val, true
}

// Lookup returns the value associated with the key or "" if there is none.
// Use Get to tell a missing key from an empty value.
func (d *Dict) Lookup(key string) string {
	val, _ := d.Get(key)
	return val
}

// Has reports whether the key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Del removes the key. Removing an unknown key is a no-op returning false.
func (d *Dict) Del(key string) bool {
	if d.empty() {
		return false
	}
	return d.delete(d.hash(key), key)
}

// Clear removes all the entries. The dict stays usable.
func (d *Dict) Clear() {
	d.destroyAll()
}

// ItemAt returns the i-th entry in creation order.
func (d *Dict) ItemAt(i int) (item Item, ok bool) {
	idx, ok := d.index.Get(i)
	if !ok {
		return
	}
	n := &d.pool.Nodes[idx]
	return Item{n.key, n.val}, true
}

// KeyAt returns the key of the i-th entry or "" if i is out of range.
func (d *Dict) KeyAt(i int) string {
	item, _ := d.ItemAt(i)
	return item.Key
}

// ValueAt returns the value of the i-th entry or "" if i is out of range.
func (d *Dict) ValueAt(i int) string {
	item, _ := d.ItemAt(i)
	return item.Val
}

// Equal reports whether both dicts hold the same key-value pairs regardless
// of the order they were inserted in.
func (d *Dict) Equal(other *Dict) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.Size() != other.Size() || d.Len() != other.Len() {
		return false
	}
	return d.Iter(func(item Item) bool {
		val, ok := other.Get(item.Key)
		return ok && val == item.Val
	})
}

// Iter calls a handler for every entry in creation order.
// It returns whether all entries were iterated.
// The handler can continue the process by returning true or abort with false.
func (d *Dict) Iter(handler func(Item) bool) bool {
	return d.index.Each(func(_ int, idx int) bool {
		n := &d.pool.Nodes[idx]
		return handler(Item{n.key, n.val})
	})
}

// Items returns all entries in creation order.
func (d *Dict) Items() ItemSlice {
	items := make(ItemSlice, 0, d.Len())
	d.Iter(func(item Item) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Keys returns all keys in creation order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.Len())
	d.Iter(func(item Item) bool {
		keys = append(keys, item.Key)
		return true
	})
	return keys
}

// Merge sets every entry of another Dict into this one; values of common
// keys are taken from other. Returns itself.
func (d *Dict) Merge(other *Dict) *Dict {
	if other != nil && other != d {
		other.Iter(func(item Item) bool {
			d.Set(item.Key, item.Val)
			return true
		})
	}
	return d
}
