package store

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSwap(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5, 6}
	Swap(a, b)
	assert.Equal(t, []byte{4, 5, 6}, a)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestSwapNoOps(t *testing.T) {
	a := []byte{1, 2, 3}
	Swap(a, nil) // must not fault
	Swap(nil, a)
	Swap(nil, nil)
	Swap(a, []byte{})
	assert.Equal(t, []byte{1, 2, 3}, a)
}

func TestSwapPointers(t *testing.T) {
	x, y := 1, 2
	a, b := unsafe.Pointer(&x), unsafe.Pointer(&y)
	SwapPointers(&a, &b)
	assert.Equal(t, 2, *(*int)(a))
	assert.Equal(t, 1, *(*int)(b))

	SwapPointers(&a, nil) // must not fault
	SwapPointers(nil, &b)
	assert.Equal(t, 2, *(*int)(a))
	assert.Equal(t, 1, *(*int)(b))
}
