package pool

import "sync"

// Typed slice pools for scratch space in the composition operators.
var (
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetIntSlice returns a pooled int slice of length size and the cleanup
// function that hands it back. The contents are unspecified.
//
//	order, cleanup := pool.GetIntSlice(n)
//	defer cleanup()
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}

// GetFloat64Slice returns a pooled float64 slice of length size and the
// cleanup function that hands it back. The contents are unspecified.
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
