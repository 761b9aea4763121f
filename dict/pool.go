package dict

import "github.com/hideo55/go-popcount"

// nilRef marks an absent child or an empty tree
const nilRef = -1

// Node is a single key-value entry of the tree. Children are indices into
// the NodePool.
type Node struct {
	hash  HashKey
	key   string
	val   string
	left  int
	right int
}

var emptyNode = Node{left: nilRef, right: nilRef}

// NodePool keeps all the tree nodes in one slice so a node is addressed by
// a stable index. Released slots are recycled through a free-list.
type NodePool struct {
	Nodes   []Node
	FreeIdx []int
	used    []uint64 // bitmap of occupied Nodes slots
}

func NewNodePool(preAlloc int) *NodePool {
	if preAlloc <= 0 {
		preAlloc = 16
	}
	return &NodePool{
		Nodes:   make([]Node, 0, preAlloc),
		FreeIdx: make([]int, 0, 16),
		used:    make([]uint64, 0, (preAlloc+63)>>6),
	}
}

// GetNode allocates a new node (if necessary) and returns
// its index in the .Nodes slice
func (p *NodePool) GetNode() (idx int) {
	if l := len(p.FreeIdx); l > 0 {
		idx = p.FreeIdx[l-1]
		p.FreeIdx = p.FreeIdx[:l-1]
	} else {
		p.Nodes = append(p.Nodes, emptyNode)
		idx = len(p.Nodes) - 1
	}
	off := idx >> 6
	for off >= len(p.used) {
		// extend bitmap
		p.used = append(p.used, 0)
	}
	p.used[off] |= uint64(1) << (idx & 0x3F)
	return
}

// PutNode stores a node index in a free-list for a re-use
// by subsequent GetNode calls
func (p *NodePool) PutNode(idx int) {
	p.Nodes[idx] = emptyNode // drop the strings
	p.used[idx>>6] &^= uint64(1) << (idx & 0x3F)
	p.FreeIdx = append(p.FreeIdx, idx)
}

// InUse reports whether the slot idx holds a live node.
func (p *NodePool) InUse(idx int) bool {
	if idx < 0 || idx >= len(p.Nodes) {
		return false
	}
	return p.used[idx>>6]&(uint64(1)<<(idx&0x3F)) != 0
}

// Live returns the number of occupied slots.
func (p *NodePool) Live() int {
	var n uint64
	for _, bmp := range p.used {
		n += popcount.Count(bmp)
	}
	return int(n)
}

// Reset forgets about stored nodes and free-list indices (not freeing the memory)
func (p *NodePool) Reset() {
	for i := range p.Nodes {
		p.Nodes[i] = emptyNode
	}
	p.Nodes = p.Nodes[:0]
	p.FreeIdx = p.FreeIdx[:0]
	p.used = p.used[:0]
}
