package node

import (
	"errors"
	"testing"
)

func TestMemoInvokesOnceForEqualProps(t *testing.T) {
	calls := 0
	base := func(props Props) (any, error) {
		calls++
		return props["x"], nil
	}
	memoized := Memo(base)

	out1, err := memoized(Props{"x": "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out2, err := memoized(Props{"x": "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if out1 != out2 {
		t.Errorf("cached output differs: %v vs %v", out1, out2)
	}
}

func TestMemoRecomputesOnChangedProps(t *testing.T) {
	calls := 0
	memoized := Memo(func(props Props) (any, error) {
		calls++
		return props["x"], nil
	})

	memoized(Props{"x": "a"})
	memoized(Props{"x": "b"})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	// The slot holds only the most recent pair: going back recomputes.
	memoized(Props{"x": "a"})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestMemoKeyCountMismatch(t *testing.T) {
	calls := 0
	memoized := Memo(func(props Props) (any, error) {
		calls++
		return nil, nil
	})

	memoized(Props{"a": 1})
	memoized(Props{"a": 1, "b": 2})
	memoized(Props{"a": 1})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestMemoCustomEquality(t *testing.T) {
	calls := 0
	alwaysEqual := func(a, b Props) bool { return true }
	memoized := Memo(func(props Props) (any, error) {
		calls++
		return "out", nil
	}, WithEquals(alwaysEqual))

	memoized(Props{"x": 1})
	memoized(Props{"x": 2})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestMemoErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	memoized := Memo(func(props Props) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	})

	if _, err := memoized(Props{"x": 1}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	out, err := memoized(Props{"x": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" {
		t.Errorf("out = %v, want ok", out)
	}
}

func TestShallowEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Props
		want bool
	}{
		{"both empty", Props{}, Props{}, true},
		{"same", Props{"a": 1, "b": "x"}, Props{"a": 1, "b": "x"}, true},
		{"different value", Props{"a": 1}, Props{"a": 2}, false},
		{"missing key", Props{"a": 1}, Props{"b": 1}, false},
		{"extra key", Props{"a": 1}, Props{"a": 1, "b": 2}, false},
		{"nil values", Props{"a": nil}, Props{"a": nil}, true},
		{"nil vs value", Props{"a": nil}, Props{"a": 1}, false},
		{"uncomparable never equal", Props{"a": []int{1}}, Props{"a": []int{1}}, false},
		{"different types", Props{"a": 1}, Props{"a": int64(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShallowEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ShallowEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
