// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

import "reflect"

// TypedBag is a heterogeneous map keyed by runtime type identity, holding
// at most one value per type. It is the coeffect and carries no notion of
// insertion order — `Get(T)` returns the most recently inserted value of
// exactly type T, or nothing at all.
//
// A stable per-type tag keyed map maps directly onto Go's reflect.Type as
// the map key and `any` as the opaque handle; [GetBag]/[InsertBag]/
// [RemoveBag] recover the concrete type with a single type assertion at
// the boundary.
type TypedBag struct {
	values map[reflect.Type]any
}

// NewTypedBag returns an empty TypedBag.
func NewTypedBag() *TypedBag {
	return &TypedBag{values: make(map[reflect.Type]any)}
}

// insert replaces any prior value stored under t.
func (b *TypedBag) insert(t reflect.Type, v any) {
	if b.values == nil {
		b.values = make(map[reflect.Type]any)
	}
	b.values[t] = v
}

// lookup returns the value stored under t, if any.
func (b *TypedBag) lookup(t reflect.Type) (any, bool) {
	v, ok := b.values[t]
	return v, ok
}

// delete removes and returns the value stored under t, if any.
func (b *TypedBag) delete(t reflect.Type) (any, bool) {
	v, ok := b.values[t]
	if ok {
		delete(b.values, t)
	}
	return v, ok
}

func bagTypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// InsertBag inserts v into bag, replacing any prior value of type T.
func InsertBag[T any](bag *TypedBag, v T) {
	bag.insert(bagTypeOf[T](), v)
}

// GetBag returns the value of type T previously inserted into bag, and
// whether one was present. It never returns a value inserted under a
// different (even structurally identical) type.
func GetBag[T any](bag *TypedBag) (T, bool) {
	v, ok := bag.lookup(bagTypeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveBag removes and returns the value of type T from bag, if present.
func RemoveBag[T any](bag *TypedBag) (T, bool) {
	v, ok := bag.delete(bagTypeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
