//go:build !scorebuckets

package queue

// New returns the build-selected queue implementation: the binary min-heap
// by default, or the bucket list when built with -tags scorebuckets.
func New(capacity int) Queue {
	return NewHeap(capacity)
}
