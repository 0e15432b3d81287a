package node

// If returns the child if condition is true, nil otherwise. A nil
// child renders nothing.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// IfElse returns the first child if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only
// called if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If. Returns the child if condition is false.
func Unless(condition bool, child any) any {
	if !condition {
		return child
	}
	return nil
}

// Map maps a slice to child values. Nil results are kept; the
// serializer skips them.
func Map[T any](items []T, fn func(item T, index int) any) []any {
	result := make([]any, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// Repeat creates n child values using the given function.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return nil
	}
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, fn(i))
	}
	return result
}
