package queue

type heapEntry struct {
	index int32
	score float64
}

// Heap is a 1-indexed binary min-heap of (index, score) entries. The
// capacity given to NewHeap only sizes the initial backing array so a full
// session rarely reallocates; Push past it still succeeds, growing the
// array geometrically (x1.5 + 10) with no upper limit.
type Heap struct {
	entries []heapEntry // entries[0] unused
	size    int
}

// NewHeap returns a heap sized for cap entries.
func NewHeap(capacity int) *Heap {
	if capacity < 1 {
		capacity = 1
	}
	return &Heap{entries: make([]heapEntry, 1, capacity+1)}
}

func (h *Heap) Len() int { return h.size }

func (h *Heap) Clear() {
	h.entries = h.entries[:1]
	h.size = 0
}

func (h *Heap) Push(index int32, score float64) {
	h.size++
	if h.size >= len(h.entries) {
		if h.size < cap(h.entries) {
			h.entries = h.entries[:h.size+1]
		} else {
			grown := make([]heapEntry, h.size+1, h.size+h.size/2+10)
			copy(grown, h.entries)
			h.entries = grown
		}
	}
	h.entries[h.size] = heapEntry{index: index, score: score}

	// Sift up.
	for i := h.size; i > 1; {
		p := i / 2
		if h.entries[i].score >= h.entries[p].score {
			break
		}
		h.entries[i], h.entries[p] = h.entries[p], h.entries[i]
		i = p
	}
}

func (h *Heap) Pop() (int32, bool) {
	if h.size == 0 {
		return 0, false
	}
	top := h.entries[1].index
	h.entries[1] = h.entries[h.size]
	h.size--

	// Sift down.
	for i := 1; ; {
		l, r := i*2, i*2+1
		if l > h.size {
			break
		}
		m := l
		if r <= h.size && h.entries[r].score < h.entries[l].score {
			m = r
		}
		if h.entries[i].score <= h.entries[m].score {
			break
		}
		h.entries[i], h.entries[m] = h.entries[m], h.entries[i]
		i = m
	}
	return top, true
}
