package ring

// Stats is a point-in-time snapshot of a ring, consumed by control probes.
type Stats struct {
	Capacity int    `json:"capacity"`
	Len      int    `json:"len"`
	Refs     int    `json:"refs"`
	Copies   uint64 `json:"copies"` // storage duplications done by this value
}

// Stats snapshots r.
func (r *RingBuffer[T]) Stats() Stats {
	return Stats{
		Capacity: r.size,
		Len:      r.Len(),
		Refs:     r.storage().Refs(),
		Copies:   r.copies,
	}
}
