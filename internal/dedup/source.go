// Copyright 2025 James Ross
package dedup

// Record is one unit of input content, carrying the dense id the rest of
// the pipeline addresses it by. Idx must be assigned densely from 0 and
// must match the record's position in whatever backing store a Sink later
// consults, since "lowest id wins" and cluster-representative selection
// both key off it directly.
type Record struct {
	Idx     int
	Content string
}

// RecordSource gives random access to every record to be deduplicated by
// its dense Idx in [0, Len()). The pipeline calls Record from several
// worker goroutines at once and in no particular order; InMemorySource
// serves it from a preloaded slice.
type RecordSource interface {
	Len() int
	Record(idx int) Record
}

// Sink receives the pipeline's verdict for every record: kept records and,
// for dropped ones, which surviving index they duplicate.
type Sink interface {
	Keep(idx int)
	Drop(idx, duplicateOf int)
}

// InMemorySource is a RecordSource backed by a preloaded slice of content,
// useful for tests and for the CLI's demo mode.
type InMemorySource struct {
	Contents []string
}

func (s *InMemorySource) Len() int { return len(s.Contents) }

func (s *InMemorySource) Record(idx int) Record {
	return Record{Idx: idx, Content: s.Contents[idx]}
}

// InMemorySink collects kept indices into a slice and dropped indices into
// a map, useful for tests and for the CLI's demo mode.
type InMemorySink struct {
	Kept    []int
	Dropped map[int]int // idx -> duplicateOf
}

// NewInMemorySink returns an empty sink ready to receive verdicts.
func NewInMemorySink() *InMemorySink {
	return &InMemorySink{Dropped: make(map[int]int)}
}

func (s *InMemorySink) Keep(idx int) {
	s.Kept = append(s.Kept, idx)
}

func (s *InMemorySink) Drop(idx, duplicateOf int) {
	s.Dropped[idx] = duplicateOf
}
