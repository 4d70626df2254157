package internal

import "slices"

type observer[T any] struct {
	id uint64
	fn func(T)
}

// Observers is an ordered list of change callbacks. The zero value is ready
// to use. It is not safe for concurrent use.
type Observers[T any] struct {
	nextID uint64
	list   []observer[T]
}

// Add registers fn and returns a function that removes it again. Calling
// the returned function more than once is harmless.
func (o *Observers[T]) Add(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	o.list = append(o.list, observer[T]{id: id, fn: fn})
	return func() {
		o.list = slices.DeleteFunc(o.list, func(ob observer[T]) bool {
			return ob.id == id
		})
	}
}

// Len returns the number of registered callbacks.
func (o *Observers[T]) Len() int {
	return len(o.list)
}

// Each hands every callback registered when the call starts to call, in
// registration order. Callbacks may add or cancel observers meanwhile.
func (o *Observers[T]) Each(call func(fn func(T))) {
	if len(o.list) == 0 {
		return
	}
	for _, ob := range slices.Clone(o.list) {
		call(ob.fn)
	}
}

// Notify calls every registered callback with v.
func (o *Observers[T]) Notify(v T) {
	o.Each(func(fn func(T)) { fn(v) })
}
