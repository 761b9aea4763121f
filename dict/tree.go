package dict

import "github.com/aglyzov/go-dictionary/index"

// tree is an unbalanced binary search tree ordered by HashKey.
//
// Nodes sharing a HashKey but holding different key text are chained along
// the right branch of the first node with that hash, exactly like keys with a
// greater hash. Every live node is also registered in the index so it can be
// reached by position.
type tree struct {
	root  int
	pool  *NodePool
	index *index.Array[int]
	trace Tracer
}

func newTree(capacity int, trace Tracer) tree {
	return tree{
		root:  nilRef,
		pool:  NewNodePool(capacity),
		index: index.New[int](capacity),
		trace: trace,
	}
}

// insert adds a node or replaces the value of an existing (hash, key) pair.
// It reports whether a new node was created.
func (t *tree) insert(hash HashKey, key, val string) bool {
	var (
		parent = nilRef
		right  bool
		cur    = t.root
	)

	for cur != nilRef {
		n := &t.pool.Nodes[cur]

		switch {
		case hash < n.hash:
			parent, right, cur = cur, false, n.left
		case hash == n.hash && key == n.key:
			n.val = val
			if t.trace != nil {
				t.trace.Debugf("dict: replace #%d hash=%x key=%q", cur, hash, key)
			}
			return false
		default:
			// a greater hash or a collision
			parent, right, cur = cur, true, n.right
		}
	}

	// GetNode may grow the pool: no pointers into it are held past this point
	idx := t.pool.GetNode()
	t.pool.Nodes[idx] = Node{hash: hash, key: key, val: val, left: nilRef, right: nilRef}

	switch {
	case parent == nilRef:
		t.root = idx
	case right:
		t.pool.Nodes[parent].right = idx
	default:
		t.pool.Nodes[parent].left = idx
	}
	t.index.Append(idx)

	if t.trace != nil {
		t.trace.Debugf("dict: insert #%d hash=%x key=%q parent=#%d", idx, hash, key, parent)
	}
	return true
}

// search returns the index of the node holding (hash, key) or nilRef.
func (t *tree) search(hash HashKey, key string) int {
	cur := t.root

	for cur != nilRef {
		n := &t.pool.Nodes[cur]

		if hash == n.hash && key == n.key {
			return cur
		}
		if hash < n.hash {
			cur = n.left
		} else {
			cur = n.right
		}
	}
	return nilRef
}

// delete removes the (hash, key) pair from the tree and reports whether it
// was present.
//
// A node with two children keeps its slot (and its index position): it takes
// over the content of its in-order successor and the successor is released
// instead. The released node therefore never has two children.
func (t *tree) delete(hash HashKey, key string) bool {
	slot := &t.root

	for *slot != nilRef {
		idx := *slot
		n := &t.pool.Nodes[idx]

		if hash < n.hash {
			slot = &n.left
			continue
		}
		if hash > n.hash || key != n.key {
			slot = &n.right
			continue
		}

		switch {
		case n.left == nilRef:
			*slot = n.right
		case n.right == nilRef:
			*slot = n.left
		default:
			// the successor is the left-most node of the right subtree
			succSlot := &n.right
			for t.pool.Nodes[*succSlot].left != nilRef {
				succSlot = &t.pool.Nodes[*succSlot].left
			}
			succ := *succSlot
			s := &t.pool.Nodes[succ]

			if t.trace != nil {
				t.trace.Debugf("dict: move successor #%d key=%q into #%d", succ, s.key, idx)
			}
			n.hash, n.key, n.val = s.hash, s.key, s.val
			*succSlot = s.right
			idx = succ
		}

		if t.trace != nil {
			t.trace.Debugf("dict: delete #%d hash=%x key=%q", idx, hash, key)
		}
		t.index.Remove(idx)
		t.pool.PutNode(idx)

		return true
	}
	return false
}

// destroyAll releases every node and empties the index.
func (t *tree) destroyAll() {
	if t.pool == nil {
		return
	}
	if t.trace != nil {
		t.trace.Debugf("dict: clear %d nodes", t.pool.Live())
	}
	t.pool.Reset()
	t.index.Reset()
	t.root = nilRef
}

// walk visits the nodes in pre-order without function recursion. The
// handler gets the node index, its depth and which child of its parent it is
// (-1 for the root, 0 for left, 1 for right). It stops when the handler
// returns false and reports whether all the nodes were visited.
func (t *tree) walk(h func(idx, depth, dir int) bool) bool {
	type visit struct {
		idx, depth, dir int
	}

	if t.pool == nil || t.root == nilRef {
		return true
	}

	toVisit := make([]visit, 1, 32)
	toVisit[0] = visit{t.root, 0, -1}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		v := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if !h(v.idx, v.depth, v.dir) {
			return false
		}

		// push the right child first so the left one is visited next
		n := &t.pool.Nodes[v.idx]
		if n.right != nilRef {
			toVisit = append(toVisit, visit{n.right, v.depth + 1, 1})
		}
		if n.left != nilRef {
			toVisit = append(toVisit, visit{n.left, v.depth + 1, 0})
		}
	}
	return true
}

// height returns the number of nodes on the longest root-to-leaf path.
func (t *tree) height() (h int) {
	t.walk(func(_, depth, _ int) bool {
		if depth+1 > h {
			h = depth + 1
		}
		return true
	})
	return
}
