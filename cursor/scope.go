package cursor

// WithTemporaryIndex calls f and restores cursor position afterwards, whatever f returns (or panics with).
func (s *State) WithTemporaryIndex(f func() error) error {
	index := s.index
	defer func() {
		s.index = index
	}()
	return f()
}

// RewindOnFailure calls f and restores cursor position only if f returns an error.
func (s *State) RewindOnFailure(f func() error) error {
	index := s.index
	e := f()
	if e != nil {
		s.index = index
	}
	return e
}

// Temporary works like State.WithTemporaryIndex, returning the value produced by f.
func Temporary[T any](s *State, f func() (T, error)) (T, error) {
	var res T
	e := s.WithTemporaryIndex(func() (e error) {
		res, e = f()
		return
	})
	return res, e
}

// Rewinding works like State.RewindOnFailure, returning the value produced by f.
func Rewinding[T any](s *State, f func() (T, error)) (T, error) {
	var res T
	e := s.RewindOnFailure(func() (e error) {
		res, e = f()
		return
	})
	return res, e
}

// Snapshot holds cursor position captured at some moment.
type Snapshot struct {
	state *State
	index int
}

// Snapshot captures current position.
func (s *State) Snapshot() Snapshot {
	return Snapshot{s, s.index}
}

func (b Snapshot) Index() int {
	return b.index
}

// Restore moves cursor back to captured position. May be called any number of times.
func (b Snapshot) Restore() {
	b.state.index = b.index
}

// Range captures a start position, the other end is current cursor position.
type Range struct {
	state *State
	start int
}

// StartRange captures current position.
func (s *State) StartRange() Range {
	return Range{s, s.index}
}

// Start returns captured position.
func (r Range) Start() int {
	return r.start
}

// Bounds returns the lesser and the greater of captured and current positions.
func (r Range) Bounds() (start, end int) {
	start, end = r.start, r.state.index
	if start > end {
		start, end = end, start
	}
	return
}

// String returns text between captured and current positions, in either order.
func (r Range) String() string {
	start, end := r.Bounds()
	return r.state.text[start:end]
}

// Len returns number of code points between captured and current positions.
func (r Range) Len() int {
	start, end := r.Bounds()
	return r.state.Distance(start, end)
}
