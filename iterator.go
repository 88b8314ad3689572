package hashtable

import (
	"fmt"
	"iter"

	"github.com/gostonefire/hashtable/internal/conf"
)

// ConstIter - Read only handle to one entry of a table, or the end iterator.
// Iterators are comparable with ==, two iterators are equal when they refer to the same entry.
type ConstIter struct {
	slot       int32
	generation uint32
}

// Iter - Mutable handle to one entry of a table, or the end iterator. An Iter may be passed to Assign and Erase.
type Iter struct {
	slot       int32
	generation uint32
}

// Position - Implemented by Iter and ConstIter, used by the operations that only read an entry
type Position interface {
	position() (slot int32, generation uint32)
}

var endIter = Iter{slot: conf.NoSlot}

func (I ConstIter) position() (int32, uint32) {
	return I.slot, I.generation
}

func (I Iter) position() (int32, uint32) {
	return I.slot, I.generation
}

// IsEnd - Returns true for the end iterator
func (I ConstIter) IsEnd() bool {
	return I.slot == conf.NoSlot
}

// IsEnd - Returns true for the end iterator
func (I Iter) IsEnd() bool {
	return I.slot == conf.NoSlot
}

// Const - Returns the read only form of I, referring to the same entry
func (I Iter) Const() ConstIter {
	return ConstIter(I)
}

// Begin - Returns the iterator of the first entry, End() on an empty table.
// Entries are visited in bucket order and, within a bucket, in the order they were inserted in that bucket.
func (T *Table[K, V]) Begin() ConstIter {
	return T.BeginMut().Const()
}

// BeginMut - Returns the mutable iterator of the first entry, EndMut() on an empty table
func (T *Table[K, V]) BeginMut() Iter {
	return T.iterFor(T.store.First())
}

// End - Returns the end iterator
func (T *Table[K, V]) End() ConstIter {
	return endIter.Const()
}

// EndMut - Returns the mutable end iterator
func (T *Table[K, V]) EndMut() Iter {
	return endIter
}

// Next - Returns the iterator following it, End() if it is the last entry.
// It panics with InvalidIterator if it is the end iterator or no longer refers to a live entry.
func (T *Table[K, V]) Next(it ConstIter) ConstIter {
	return T.next(it).Const()
}

// NextMut - Returns the mutable iterator following it, EndMut() if it is the last entry.
// It panics with InvalidIterator if it is the end iterator or no longer refers to a live entry.
func (T *Table[K, V]) NextMut(it Iter) Iter {
	return T.next(it)
}

// All - Returns an iterator over all key value pairs in iteration order, for use with range.
// Erasing or assigning any entry is allowed during the loop, an erased entry that has not been reached yet is not
// produced. Entries inserted during the loop may or may not be produced, and if the insert makes the table grow,
// entries already produced may be produced again.
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var pending []ConstIter
		for b := int64(0); b < T.store.NumberOfBuckets(); b++ {
			// Snapshot the chain, the loop body may erase any entry of it
			pending = pending[:0]
			records := T.store.Chain(b)
			for records.HasNext() {
				pending = append(pending, T.iterFor(records.Next()).Const())
			}

			for _, it := range pending {
				slot, generation := it.position()
				if !T.store.IsLive(slot, generation) {
					continue
				}

				s := T.store.Slot(slot)
				if !yield(s.Key.Get(), s.Value.Get()) {
					return
				}
			}
		}
	}
}

// Check - Returns nil if it refers to a live entry of the table, or an error of type InvalidIterator if it is the
// end iterator or was invalidated by Erase or Clear.
func (T *Table[K, V]) Check(it Position) (err error) {
	slot, generation := it.position()
	if slot == conf.NoSlot {
		err = InvalidIterator{msg: "end iterator does not refer to an entry"}
		return
	}

	if !T.store.IsLive(slot, generation) {
		err = InvalidIterator{msg: fmt.Sprintf("iterator for slot %d generation %d is stale", slot, generation)}
	}

	return
}

// next - Returns the mutable iterator following it
func (T *Table[K, V]) next(it Position) Iter {
	return T.iterFor(T.store.Next(T.mustSlot(it)))
}

// mustSlot - Returns the slot of it, panics with InvalidIterator if it is not live
func (T *Table[K, V]) mustSlot(it Position) int32 {
	if err := T.Check(it); err != nil {
		panic(err)
	}

	slot, _ := it.position()

	return slot
}

// iterFor - Returns the iterator of slot under its current generation, the end iterator for conf.NoSlot
func (T *Table[K, V]) iterFor(slot int32) Iter {
	if slot == conf.NoSlot {
		return endIter
	}

	return Iter{slot: slot, generation: T.store.Slot(slot).Generation}
}
