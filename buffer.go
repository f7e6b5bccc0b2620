package navkit

import (
	"fmt"
	"iter"
)

// slot is either an occupied value or a link in the free list. Free list
// links store id+1 so that zero means end of list.
type slot[T any] struct {
	value    T
	nextFree int
	occupied bool
}

// DynamicBuffer stores values in slots addressed by stable integer ids.
// Erasing a value never moves the others; its slot goes onto an intrusive
// free list and is handed out again by the next PushBack. Ids carry no
// generation, so an id kept after EraseAt may later refer to an unrelated
// value. Use IsIndexValid to check liveness.
//
// The zero value is an empty buffer ready to use.
type DynamicBuffer[T any] struct {
	slots    []slot[T]
	freeHead int // id+1 of the first free slot, 0 when none
	live     int
}

// NewDynamicBuffer creates an empty buffer with room for capacity values.
func NewDynamicBuffer[T any](capacity int) *DynamicBuffer[T] {
	return &DynamicBuffer[T]{slots: make([]slot[T], 0, capacity)}
}

// PushBack stores v and returns its id. The most recently freed slot is
// reused first.
func (b *DynamicBuffer[T]) PushBack(v T) int {
	b.live++
	if b.freeHead != 0 {
		id := b.freeHead - 1
		b.freeHead = b.slots[id].nextFree
		b.slots[id] = slot[T]{value: v, occupied: true}
		return id
	}
	b.slots = append(b.slots, slot[T]{value: v, occupied: true})
	return len(b.slots) - 1
}

// EraseAt frees the slot with the given id. It panics if id is not live.
func (b *DynamicBuffer[T]) EraseAt(id int) {
	b.mustBeValid(id, "EraseAt")
	b.slots[id] = slot[T]{nextFree: b.freeHead}
	b.freeHead = id + 1
	b.live--
}

// At returns a pointer to the value with the given id. The pointer is
// invalidated by the next PushBack. It panics if id is not live.
func (b *DynamicBuffer[T]) At(id int) *T {
	b.mustBeValid(id, "At")
	return &b.slots[id].value
}

// IsIndexValid reports whether id refers to a live value.
func (b *DynamicBuffer[T]) IsIndexValid(id int) bool {
	return id >= 0 && id < len(b.slots) && b.slots[id].occupied
}

// Len returns the number of live values.
func (b *DynamicBuffer[T]) Len() int { return b.live }

// Clone returns a copy of the buffer with identical ids and free list.
// Values are copied shallowly.
func (b *DynamicBuffer[T]) Clone() *DynamicBuffer[T] {
	c := &DynamicBuffer[T]{
		slots:    make([]slot[T], len(b.slots), cap(b.slots)),
		freeHead: b.freeHead,
		live:     b.live,
	}
	copy(c.slots, b.slots)
	return c
}

// All yields every live id with a pointer to its value, in id order. Values
// may be modified through the pointer. Erasing the current id during
// iteration is allowed; pushing is not.
func (b *DynamicBuffer[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for id := range b.slots {
			if !b.slots[id].occupied {
				continue
			}
			if !yield(id, &b.slots[id].value) {
				return
			}
		}
	}
}

func (b *DynamicBuffer[T]) mustBeValid(id int, op string) {
	if !b.IsIndexValid(id) {
		panic(fmt.Sprintf("navkit: DynamicBuffer.%s on invalid id %d", op, id))
	}
}
