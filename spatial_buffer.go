package navkit

import "iter"

// SpatialBuffer is a collection of items with a spatial lookup. Items live
// in a DynamicBuffer, so ids are stable across erasures, and a SpatialIndex
// maps regions of the world to those ids.
//
// The usual per-tick loop removes each item from the lookup, tests it
// against its neighbours, moves it, and puts it back:
//
//	for id, item := range buf.All() {
//		buf.RemoveFromLookup(id, item.Box)
//		for _, other := range buf.OverlapCandidates(item.Box) {
//			// resolve against buf.At(other)
//		}
//		buf.ReturnToLookup(id, item.Box)
//	}
type SpatialBuffer[T any] struct {
	items DynamicBuffer[T]
	index *SpatialIndex
}

// NewSpatialBuffer creates an empty buffer indexing bounds with resolution
// cells per axis.
func NewSpatialBuffer[T any](bounds Rect, resolution int) *SpatialBuffer[T] {
	return &SpatialBuffer[T]{index: NewSpatialIndex(bounds, resolution)}
}

// Insert stores item, registers it under shape, and returns its id.
func (b *SpatialBuffer[T]) Insert(item T, shape Shape) int {
	id := b.items.PushBack(item)
	b.index.ReturnToLookup(id, shape)
	return id
}

// Erase deletes the item with the given id. shape must be the one it is
// currently registered with.
func (b *SpatialBuffer[T]) Erase(id int, shape Shape) {
	b.items.EraseAt(id)
	b.index.RemoveFromLookup(id, shape)
}

// RemoveFromLookup hides id from queries without deleting the item.
func (b *SpatialBuffer[T]) RemoveFromLookup(id int, shape Shape) {
	b.index.RemoveFromLookup(id, shape)
}

// ReturnToLookup registers id under shape again after RemoveFromLookup.
func (b *SpatialBuffer[T]) ReturnToLookup(id int, shape Shape) {
	b.index.ReturnToLookup(id, shape)
}

// OverlapCandidates returns ids of items that may overlap shape. Every id
// is valid for At until the next Erase.
func (b *SpatialBuffer[T]) OverlapCandidates(shape Shape) []int {
	return b.index.OverlapCandidates(shape)
}

// At returns a pointer to the item with the given id. It panics if id is
// not live.
func (b *SpatialBuffer[T]) At(id int) *T { return b.items.At(id) }

// IsIndexValid reports whether id refers to a live item.
func (b *SpatialBuffer[T]) IsIndexValid(id int) bool { return b.items.IsIndexValid(id) }

// Len returns the number of live items.
func (b *SpatialBuffer[T]) Len() int { return b.items.Len() }

// All yields every live item with its id.
func (b *SpatialBuffer[T]) All() iter.Seq2[int, *T] { return b.items.All() }

// Index exposes the underlying grid, mainly for debug drawing.
func (b *SpatialBuffer[T]) Index() *SpatialIndex { return b.index }
