package sched

import "sort"

// ArrivalQueue is the ordered sequence of not-yet-admitted ProcessEntry
// values, sorted ascending by ArrivalOffset with ties broken by input
// order (Seq). It never grows after NewArrivalQueue; Pop strictly drains
// it.
type ArrivalQueue struct {
	entries    []*ProcessEntry
	head       int
	lastOffset int
}

// NewArrivalQueue sorts entries by (ArrivalOffset, Seq) and returns a
// queue ready to be drained head-first.
func NewArrivalQueue(entries []*ProcessEntry) *ArrivalQueue {
	sorted := make([]*ProcessEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ArrivalOffset != sorted[j].ArrivalOffset {
			return sorted[i].ArrivalOffset < sorted[j].ArrivalOffset
		}
		return sorted[i].Seq < sorted[j].Seq
	})
	return &ArrivalQueue{entries: sorted}
}

// IsEmpty reports whether every entry has been popped.
func (q *ArrivalQueue) IsEmpty() bool {
	return q.head >= len(q.entries)
}

// PeekGap returns the number of time units from the previously-popped
// arrival offset (or 0, before the first Pop) to the next entry's
// arrival offset. Undefined when IsEmpty.
func (q *ArrivalQueue) PeekGap() int {
	return q.entries[q.head].ArrivalOffset - q.lastOffset
}

// Pop returns the next entry and advances the head.
func (q *ArrivalQueue) Pop() *ProcessEntry {
	p := q.entries[q.head]
	q.lastOffset = p.ArrivalOffset
	q.head++
	return p
}
