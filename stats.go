package streamlex

// Stats tracks buffer activity of a Reader.
//
// Useful for tuning Config sizes.
type Stats struct {
	// Reads counts calls into the source.
	Reads uint64

	// BytesRead counts bytes delivered by the source.
	BytesRead uint64

	// Pulls counts bounded pulls that reached the source.
	Pulls uint64

	// PullMores counts unbounded pulls that reached the source.
	PullMores uint64

	// Compactions counts bounded pulls that shifted unconsumed bytes to the
	// buffer start.
	Compactions uint64

	// Grows counts capacity doublings.
	Grows uint64

	// Reallocations counts grows that needed a new backing array.
	Reallocations uint64
}

// Stats returns a snapshot of the reader's counters.
func (r *Reader) Stats() Stats {
	return r.stats
}

// ResetStats clears the counters.
func (r *Reader) ResetStats() {
	r.stats = Stats{}
}
