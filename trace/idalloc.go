package trace

// IDAlloc hands out monotonically increasing NodeIDs for one construction
// session. Generators that create nodes own an allocator (or accept one via
// an option) instead of sharing a process-wide counter, keeping generation
// pure and reproducible.
type IDAlloc struct {
	next NodeID
}

// NewIDAlloc returns an allocator starting at id 0.
func NewIDAlloc() *IDAlloc { return &IDAlloc{} }

// Next returns the next unused NodeID.
func (a *IDAlloc) Next() NodeID {
	id := a.next
	a.next++
	return id
}
