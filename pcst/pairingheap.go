// A mergeable min-priority queue supporting an O(1) additive shift of
// every value it holds: the classic lazy two-pass pairing heap with a
// per-node pending offset pushed down on first descent. Nodes live in a
// shared arena and are addressed by index, so handles stay valid across
// melds without pointer aliasing.
package pcst

// heapHandle names one node in a shared heapArena. Handles remain valid
// from Insert until the node is extracted or removed.
type heapHandle int32

// nullHandle marks "no node".
const nullHandle heapHandle = -1

// heapNode is one element of the arena backing every pairingHeap in a
// solve. A node's true external value is value plus the sum of delta along
// its path from the heap root, inclusive of the node's own delta. AddToAll
// and meld touch only root deltas; pushDown moves a delta one level toward
// the leaves when a traversal needs a node's true value in place.
type heapNode struct {
	value      float64
	delta      float64
	payload    int32
	firstChild heapHandle
	nextSib    heapHandle
	parent     heapHandle
	alive      bool
}

// heapArena owns every node allocated across all of a solve's pairing
// heaps. Clusters meld and split pieces of this shared arena instead of
// allocating per-node, matching the cross-component "index into a
// parallel array instead of a pointer" convention used by cluster.go and
// eventqueue.go alike.
type heapArena struct {
	nodes []heapNode
}

// newHeapArena preallocates capacity for a solve with the given expected
// node count (two edge-parts per edge is the dominant contributor).
func newHeapArena(capacity int) *heapArena {
	return &heapArena{nodes: make([]heapNode, 0, capacity)}
}

func (a *heapArena) alloc(value float64, payload int32) heapHandle {
	h := heapHandle(len(a.nodes))
	a.nodes = append(a.nodes, heapNode{
		value:      value,
		payload:    payload,
		firstChild: nullHandle,
		nextSib:    nullHandle,
		parent:     nullHandle,
		alive:      true,
	})

	return h
}

func (a *heapArena) node(h heapHandle) *heapNode { return &a.nodes[h] }

// pairingHeap is a mergeable min-heap handle into a shared heapArena. The
// zero value is not usable; construct with newPairingHeap.
type pairingHeap struct {
	arena *heapArena
	root  heapHandle
}

// newPairingHeap returns an empty heap backed by arena.
func newPairingHeap(arena *heapArena) *pairingHeap {
	return &pairingHeap{arena: arena, root: nullHandle}
}

// Empty reports whether the heap holds no elements.
func (h *pairingHeap) Empty() bool { return h.root == nullHandle }

// Insert adds (value, payload) and returns a handle valid until the
// element is extracted or removed. Amortized O(1).
func (h *pairingHeap) Insert(value float64, payload int32) heapHandle {
	handle := h.arena.alloc(value, payload)
	h.root = h.linkRoots(h.root, handle)

	return handle
}

// GetMin reports the smallest externally observed value and its payload,
// or ok=false if the heap is empty. O(1): the offset is never observable,
// it is folded into root.value+root.delta on read.
func (h *pairingHeap) GetMin() (value float64, payload int32, ok bool) {
	if h.root == nullHandle {
		return 0, 0, false
	}
	root := h.arena.node(h.root)

	return root.value + root.delta, root.payload, true
}

// minHandle returns the handle of the current minimum, or nullHandle if
// the heap is empty.
func (h *pairingHeap) minHandle() heapHandle { return h.root }

// AddToAll shifts every value currently held by the heap by delta. O(1):
// it only ever touches the root, per the lazy pairing-heap technique.
func (h *pairingHeap) AddToAll(delta float64) {
	if h.root == nullHandle {
		return
	}
	h.arena.node(h.root).delta += delta
}

// ExtractMin removes and returns the smallest element. Amortized
// O(log n).
func (h *pairingHeap) ExtractMin() (value float64, payload int32, ok bool) {
	if h.root == nullHandle {
		return 0, 0, false
	}
	rootHandle := h.root
	h.pushDown(rootHandle)
	root := h.arena.node(rootHandle)
	value, payload = root.value, root.payload
	root.alive = false

	children := h.detachChildren(rootHandle)
	h.root = h.twoPassMerge(children)

	return value, payload, true
}

// Meld absorbs other into h; other becomes empty. Amortized O(1).
func (h *pairingHeap) Meld(other *pairingHeap) {
	h.root = h.linkRoots(h.root, other.root)
	other.root = nullHandle
}

// Remove deletes the node named by handle from whichever heap currently
// holds it (h must be that heap). Amortized O(log n); built on the same
// walk-to-root flush used by Reprice, since arbitrary-node deletion needs
// the node's true value before it can be excised and its children
// reattached. Used indirectly by edge-part repricing (component D), never
// called with a handle already extracted.
func (h *pairingHeap) Remove(handle heapHandle) (value float64, payload int32) {
	h.flushToRoot(handle)
	n := h.arena.node(handle)
	value, payload = n.value, n.payload
	n.alive = false

	if handle == h.root {
		children := h.detachChildren(handle)
		h.root = h.twoPassMerge(children)
		return value, payload
	}

	// Detach handle from its parent's child list, then fold its own
	// children back into the heap.
	h.unlinkFromParent(handle)
	children := h.detachChildren(handle)
	merged := h.twoPassMerge(children)
	h.root = h.linkRoots(h.root, merged)

	return value, payload
}

// Reprice removes handle and reinserts its payload with newValue,
// returning the fresh handle. Works in either direction: a decrease-key,
// or a raise when an optimistic schedule turns out to be too early. Same
// amortized O(log n) cost as Remove.
func (h *pairingHeap) Reprice(handle heapHandle, newValue float64) heapHandle {
	_, payload := h.Remove(handle)

	return h.Insert(newValue, payload)
}

// attachChild makes child a child of parent, rebasing child's pending
// delta against parent's so every true value in child's subtree is
// unchanged by the relinking. Both arguments must be heap roots.
func (h *pairingHeap) attachChild(parent, child heapHandle) {
	p := h.arena.node(parent)
	c := h.arena.node(child)
	c.delta -= p.delta
	c.parent = parent
	c.nextSib = p.firstChild
	p.firstChild = child
}

// linkRoots melds two heap-roots (either may be nullHandle) and returns
// the winner.
func (h *pairingHeap) linkRoots(a, b heapHandle) heapHandle {
	if a == nullHandle {
		return b
	}
	if b == nullHandle {
		return a
	}
	na, nb := h.arena.node(a), h.arena.node(b)
	if na.value+na.delta <= nb.value+nb.delta {
		h.attachChild(a, b)
		return a
	}
	h.attachChild(b, a)

	return b
}

// pushDown flushes handle's pending delta into its own value and
// propagates the same amount onto every immediate child's delta.
func (h *pairingHeap) pushDown(handle heapHandle) {
	n := h.arena.node(handle)
	if n.delta == 0 {
		return
	}
	d := n.delta
	n.value += d
	n.delta = 0
	c := n.firstChild
	for c != nullHandle {
		cn := h.arena.node(c)
		cn.delta += d
		c = cn.nextSib
	}
}

// flushToRoot pushes every pending delta on handle's root path down one
// level at a time, handle's own included, so that handle.value becomes its
// true value (delta zero) and handle's children are left owing exactly
// what handle owed them.
func (h *pairingHeap) flushToRoot(handle heapHandle) {
	var path []heapHandle
	for cur := handle; cur != nullHandle; {
		path = append(path, cur)
		cur = h.arena.node(cur).parent
	}
	// path is [handle, parent(handle), ..., root]; push from root downward.
	for i := len(path) - 1; i >= 0; i-- {
		h.pushDown(path[i])
	}
}

// detachChildren removes and returns handle's child list as a slice of
// independent (parent-less, sibling-less) roots, clearing handle's own
// child pointer.
func (h *pairingHeap) detachChildren(handle heapHandle) []heapHandle {
	n := h.arena.node(handle)
	child := n.firstChild
	n.firstChild = nullHandle
	var out []heapHandle
	for child != nullHandle {
		cn := h.arena.node(child)
		next := cn.nextSib
		cn.nextSib = nullHandle
		cn.parent = nullHandle
		out = append(out, child)
		child = next
	}

	return out
}

// unlinkFromParent removes handle from its parent's singly linked child
// list. handle must currently have a non-null parent.
func (h *pairingHeap) unlinkFromParent(handle heapHandle) {
	n := h.arena.node(handle)
	parent := h.arena.node(n.parent)
	if parent.firstChild == handle {
		parent.firstChild = n.nextSib
		n.parent = nullHandle
		n.nextSib = nullHandle
		return
	}
	prev := parent.firstChild
	for prev != nullHandle {
		prevNode := h.arena.node(prev)
		if prevNode.nextSib == handle {
			prevNode.nextSib = n.nextSib
			n.parent = nullHandle
			n.nextSib = nullHandle
			return
		}
		prev = prevNode.nextSib
	}
}

// twoPassMerge folds a list of independent heap roots into one, using the
// standard pairing-heap two-pass merge: pair up left to right, then fold
// the paired results right to left.
func (h *pairingHeap) twoPassMerge(list []heapHandle) heapHandle {
	if len(list) == 0 {
		return nullHandle
	}
	var paired []heapHandle
	i := 0
	for i+1 < len(list) {
		paired = append(paired, h.linkRoots(list[i], list[i+1]))
		i += 2
	}
	if i < len(list) {
		paired = append(paired, list[i])
	}
	result := paired[len(paired)-1]
	for j := len(paired) - 2; j >= 0; j-- {
		result = h.linkRoots(paired[j], result)
	}

	return result
}
