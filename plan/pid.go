package plan

// PIDFactory hands out strictly increasing plan-node identifiers. A
// plain incrementing counter is sufficient: a plan and its PIDFactory
// are never touched by more than one goroutine at a time, and each
// plan owns its own factory.
type PIDFactory struct {
	next int64
}

// NewPIDFactory returns a factory whose first allocation is 1.
func NewPIDFactory() *PIDFactory {
	return &PIDFactory{next: 1}
}

// NextPID allocates and returns the next identifier.
func (f *PIDFactory) NextPID() int64 {
	pid := f.next
	f.next++
	return pid
}
