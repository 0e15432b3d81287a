package node

import (
	"reflect"
	"sync"
)

// MemoOption configures a memoized component.
type MemoOption func(*memoCell)

// WithEquals sets a custom props equality function for Memo.
func WithEquals(fn func(a, b Props) bool) MemoOption {
	return func(m *memoCell) {
		m.equal = fn
	}
}

// Memo wraps a component with a single cached slot holding the most
// recent props/output pair. When called with props equal to the cached
// ones (default: ShallowEqual), the cached output is returned without
// re-invoking fn; otherwise fn runs and the slot is replaced. This is
// not a history cache: exactly one entry is ever retained.
func Memo(fn Component, opts ...MemoOption) Component {
	m := &memoCell{fn: fn, equal: ShallowEqual}
	for _, opt := range opts {
		opt(m)
	}
	return m.render
}

// memoCell is the explicit cache cell behind Memo.
type memoCell struct {
	mu    sync.Mutex
	fn    Component
	equal func(a, b Props) bool

	valid     bool
	lastProps Props
	lastOut   any
}

func (m *memoCell) render(props Props) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.equal(m.lastProps, props) {
		return m.lastOut, nil
	}
	out, err := m.fn(props)
	if err != nil {
		return nil, err
	}
	m.lastProps = props
	m.lastOut = out
	m.valid = true
	return out, nil
}

// ShallowEqual compares two props maps key by key. Values are compared
// with == when their type allows it; uncomparable values never match.
func ShallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
