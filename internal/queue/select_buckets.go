//go:build scorebuckets

package queue

// New returns the build-selected queue implementation: the bucket list,
// because this binary was built with -tags scorebuckets.
func New(capacity int) Queue {
	return NewBuckets(capacity)
}
