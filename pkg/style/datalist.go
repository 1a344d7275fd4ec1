package style

// DataList is a repeating per-gap value list: gap N takes value N modulo the
// list length, so a short list cycles across many gaps.
type DataList[T any] struct {
	values []T
}

// NewDataList builds a list from one or more values.
func NewDataList[T any](values ...T) DataList[T] {
	if len(values) == 0 {
		panic("style: empty data list")
	}
	return DataList[T]{values: values}
}

// Len returns the number of declared values.
func (l DataList[T]) Len() int { return len(l.values) }

// At returns the value for gap index i, cycling through the list.
func (l DataList[T]) At(i int) T {
	return l.values[i%len(l.values)]
}

// Iterator walks a DataList one gap at a time.
type Iterator[T any] struct {
	list DataList[T]
	next int
}

// NewIterator starts an iterator at the first gap.
func NewIterator[T any](list DataList[T]) *Iterator[T] {
	return &Iterator[T]{list: list}
}

// Next returns the value for the current gap and advances.
func (it *Iterator[T]) Next() T {
	v := it.list.At(it.next)
	it.next++
	return v
}
