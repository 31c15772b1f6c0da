package math

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/spaghettifunk/orbitview/engine/core"
	"golang.org/x/exp/constraints"
)

// View is a non-owning, fixed-length window over float storage that belongs to
// someone else. Writes through the view land in the aliased storage and the
// view must not outlive it.
type View[T constraints.Float] struct {
	data []T
}

// ViewOf wraps s as a view of exactly n elements. The view shares s's backing array.
func ViewOf[T constraints.Float](s []T, n int) (View[T], error) {
	if len(s) != n {
		return View[T]{}, fmt.Errorf("%w: slice has %d elements, view needs %d", core.ErrSizeMismatch, len(s), n)
	}
	return View[T]{data: s[:n:n]}, nil
}

// Alias reinterprets the storage of agg as n contiguous elements of T. The
// byte size of *A must equal n*sizeof(T), A must be at least as aligned as T
// and A must hold only numeric data in arrays or structs.
func Alias[T constraints.Float, A any](agg *A, n int) (View[T], error) {
	if agg == nil {
		return View[T]{}, fmt.Errorf("%w: nil aggregate", core.ErrSizeMismatch)
	}
	var zero T
	want := uintptr(n) * unsafe.Sizeof(zero)
	got := unsafe.Sizeof(*agg)
	if got != want {
		return View[T]{}, fmt.Errorf("%w: aggregate %T is %d bytes, view needs %d", core.ErrSizeMismatch, *agg, got, want)
	}
	if unsafe.Alignof(*agg) < unsafe.Alignof(zero) {
		return View[T]{}, fmt.Errorf("%w: aggregate %T is not aligned for %T", core.ErrSizeMismatch, *agg, zero)
	}
	if !plainData(reflect.TypeOf((*A)(nil)).Elem()) {
		return View[T]{}, fmt.Errorf("%w: aggregate %T holds non numeric data", core.ErrSizeMismatch, *agg)
	}
	if n == 0 {
		return View[T]{}, nil
	}
	return View[T]{data: unsafe.Slice((*T)(unsafe.Pointer(agg)), n)}, nil
}

// plainData reports whether t is ints, uints or floats laid out in arrays and
// structs. Pointers, slices, strings and other headers can't be viewed as floats.
func plainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Array:
		return plainData(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !plainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// fromArray is the compile-time checked path: the caller's array type fixes the length.
func fromArray[T constraints.Float](s []T) View[T] {
	return View[T]{data: s[:len(s):len(s)]}
}

func (v View[T]) Len() int {
	return len(v.data)
}

func (v View[T]) At(i int) T {
	return v.data[i]
}

func (v View[T]) Set(i int, x T) {
	v.data[i] = x
}

// Ref returns a pointer to element i of the aliased storage.
func (v View[T]) Ref(i int) *T {
	return &v.data[i]
}

// Sub returns a view over [offset, offset+length) of the same storage.
func (v View[T]) Sub(offset, length int) View[T] {
	return View[T]{data: v.data[offset : offset+length : offset+length]}
}

// Slice exposes the aliased elements. It is not a copy.
func (v View[T]) Slice() []T {
	return v.data
}

// CopyFrom copies min(v.Len(), len(src)) elements into the aliased storage.
func (v View[T]) CopyFrom(src []T) int {
	return copy(v.data, src)
}
