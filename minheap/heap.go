package minheap

import "errors"

// ErrOrdering indicates Verify found a parent whose key exceeds a child's,
// i.e. the heap ordering invariant is violated.
var ErrOrdering = errors.New("minheap: heap ordering invariant violated")

// unlinked marks a handle whose item has been popped from the heap.
const unlinked = -1

// entry is one heap item: the caller's node identifier, its ordering key,
// and the stable handle it was issued at Push time.
type entry struct {
	node   int
	key    float64
	handle int
}

// Heap is a binary min-heap of (node, key) entries addressed by stable
// handles. The zero value is not usable; construct with New.
//
// Handles are issued densely from zero in Push order and are never
// recycled within one Heap's lifetime, so a caller tracking n items can
// store them in a plain []int back-pointer table.
type Heap struct {
	entries []entry // heap-ordered storage
	slot    []int   // handle → current position in entries, unlinked once popped
}

// New returns an empty Heap with storage preallocated for capacity items.
// Complexity: O(1) amortised over the heap's lifetime.
func New(capacity int) *Heap {
	return &Heap{
		entries: make([]entry, 0, capacity),
		slot:    make([]int, 0, capacity),
	}
}

// Len returns the number of items currently in the heap.
func (h *Heap) Len() int { return len(h.entries) }

// Peek returns the node and key of the minimum item without removing it.
// Panics if the heap is empty.
func (h *Heap) Peek() (node int, key float64) {
	if len(h.entries) == 0 {
		panic("minheap: Peek on empty heap")
	}

	return h.entries[0].node, h.entries[0].key
}

// Push inserts node with the given key and returns its stable handle.
// The handle remains valid until the item is popped.
// Complexity: O(log n).
func (h *Heap) Push(node int, key float64) int {
	handle := len(h.slot)
	h.slot = append(h.slot, len(h.entries))
	h.entries = append(h.entries, entry{node: node, key: key, handle: handle})
	h.up(len(h.entries) - 1)

	return handle
}

// Pop removes and returns the minimum-keyed item. The item's handle
// becomes stale; further Update calls through it panic.
// Panics if the heap is empty.
// Complexity: O(log n).
func (h *Heap) Pop() (node int, key float64) {
	if len(h.entries) == 0 {
		panic("minheap: Pop on empty heap")
	}
	top := h.entries[0]
	h.slot[top.handle] = unlinked

	last := len(h.entries) - 1
	if last > 0 {
		h.entries[0] = h.entries[last]
		h.slot[h.entries[0].handle] = 0
	}
	h.entries = h.entries[:last]
	if last > 0 {
		h.down(0)
	}

	return top.node, top.key
}

// Update re-keys the item addressed by handle and restores heap order.
// Intended for decrease-key, but tolerates increases as well.
// Panics if the handle's item has already been popped.
// Complexity: O(log n).
func (h *Heap) Update(handle int, key float64) {
	pos := h.slot[handle]
	if pos == unlinked {
		panic("minheap: Update through stale handle")
	}
	h.entries[pos].key = key
	if !h.up(pos) {
		h.down(pos)
	}
}

// Verify checks the heap ordering invariant over the whole array and the
// consistency of the handle table. Returns ErrOrdering on violation.
// Complexity: O(n).
func (h *Heap) Verify() error {
	for i := 1; i < len(h.entries); i++ {
		parent := (i - 1) / 2
		if h.entries[i].key < h.entries[parent].key {
			return ErrOrdering
		}
	}
	for i, e := range h.entries {
		if h.slot[e.handle] != i {
			return ErrOrdering
		}
	}

	return nil
}

// up sifts the entry at position j towards the root, reporting whether it
// moved. Keeps the handle table in sync on every swap.
func (h *Heap) up(j int) bool {
	moved := false
	for j > 0 {
		i := (j - 1) / 2 // parent
		if h.entries[i].key <= h.entries[j].key {
			break
		}
		h.swap(i, j)
		j = i
		moved = true
	}

	return moved
}

// down sifts the entry at position i towards the leaves.
func (h *Heap) down(i int) {
	n := len(h.entries)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.entries[right].key < h.entries[left].key {
			smallest = right
		}
		if h.entries[i].key <= h.entries[smallest].key {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two entries and their handle slots.
func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].handle] = i
	h.slot[h.entries[j].handle] = j
}
