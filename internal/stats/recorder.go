// Package stats keeps per-module timing samples in ascending order and
// derives the integer summary statistics for the report.
package stats

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCapacity reports an insert past the declared sample capacity. At
// most one duration can be recorded per puzzle per module, so hitting
// this is a programming error, not a runtime condition.
var ErrCapacity = errors.New("recorder capacity exceeded")

// Recorder holds an ascending-sorted sample of durations. Capacity is
// fixed at construction and the backing array never reallocates.
type Recorder struct {
	data []uint64
	max  int
}

// NewRecorder returns a Recorder that accepts up to capacity samples.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{data: make([]uint64, 0, capacity), max: capacity}
}

// Insert places val so the sample stays sorted, ordering exactly as a
// plain insertion sort would: a binary probe finds the first element
// greater than val, then everything from there shifts right one slot.
// A full Recorder rejects the insert and keeps the sample unchanged.
func (r *Recorder) Insert(val uint64) error {
	if len(r.data) >= r.max {
		return fmt.Errorf("%w: %d samples", ErrCapacity, r.max)
	}
	cursor := sort.Search(len(r.data), func(i int) bool { return r.data[i] > val })
	r.data = append(r.data, 0)
	copy(r.data[cursor+1:], r.data[cursor:])
	r.data[cursor] = val
	return nil
}

// Len reports the number of recorded samples.
func (r *Recorder) Len() int { return len(r.data) }

// Data returns the sorted sample. Callers must not mutate it.
func (r *Recorder) Data() []uint64 { return r.data }
