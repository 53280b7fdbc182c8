package countable

// Depth selects how far an accessor looks below a node.
// It is implemented only by Level and Recursive.
type Depth interface {
	recursive() bool
}

// Level accessors only consider direct children. A nested counter
// contributes nothing of its own to a Level aggregate.
type Level struct{}

func (Level) recursive() bool { return false }

// Recursive accessors consider the whole subtree.
type Recursive struct{}

func (Recursive) recursive() bool { return true }

// Checked is the fallible accessor over a Store. Every method returns a typed error
// and never panics.
type Checked[D Depth] struct {
	store *Store
}

// Unchecked wraps Checked for call sites that already validated their input.
// ErrNotFound and ErrRequiresChild become a documented default, any other
// error panics since it means the single-lock discipline was broken.
type Unchecked[D Depth] struct {
	checked Checked[D]
}

// Level returns the checked, direct-children accessor of s.
func (s *Store) Level() Checked[Level] {
	return Checked[Level]{store: s}
}

// Recursive returns the checked, whole-subtree accessor of s.
func (s *Store) Recursive() Checked[Recursive] {
	return Checked[Recursive]{store: s}
}

// Store returns the underlying store.
func (a Checked[D]) Store() *Store {
	return a.store
}

// Unchecked switches to the panicking call convention.
func (a Checked[D]) Unchecked() Unchecked[D] {
	return Unchecked[D]{checked: a}
}

// Level switches to direct-children depth.
func (a Checked[D]) Level() Checked[Level] {
	return Checked[Level]{store: a.store}
}

// Recursive switches to whole-subtree depth.
func (a Checked[D]) Recursive() Checked[Recursive] {
	return Checked[Recursive]{store: a.store}
}

func (a Checked[D]) deep() bool {
	var d D
	return d.recursive()
}

// Store returns the underlying store.
func (u Unchecked[D]) Store() *Store {
	return u.checked.store
}

// Checked switches back to the fallible call convention.
func (u Unchecked[D]) Checked() Checked[D] {
	return u.checked
}

// Level switches to direct-children depth.
func (u Unchecked[D]) Level() Unchecked[Level] {
	return u.checked.Level().Unchecked()
}

// Recursive switches to whole-subtree depth.
func (u Unchecked[D]) Recursive() Unchecked[Recursive] {
	return u.checked.Recursive().Unchecked()
}

// must maps recoverable errors to the zero value and panics on the rest.
func must[T any](v T, err error) T {
	if err == nil {
		return v
	}
	if isRecoverable(err) {
		var zero T
		return zero
	}
	panic(err)
}

// mustDo is must for operations without a result.
func mustDo(err error) {
	if err != nil && !isRecoverable(err) {
		panic(err)
	}
}
