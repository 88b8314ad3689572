package chain

import "github.com/gostonefire/hashtable/internal/conf"

// Records - Is used to iterate over the slots of one bucket chain one by one.
type Records struct {
	nextFunc func(int32) int32
	slot     int32
}

// NewRecords - Returns a pointer to a new Records struct
//   - nextFunc returns the slot following a given slot in the chain, or conf.NoSlot
//   - head is the first slot of the chain, or conf.NoSlot for an empty chain
func NewRecords(nextFunc func(int32) int32, head int32) *Records {

	return &Records{
		nextFunc: nextFunc,
		slot:     head,
	}
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.slot != conf.NoSlot
}

// Next - Returns the next slot in the chain, or conf.NoSlot if the chain is exhausted.
func (R *Records) Next() (slot int32) {
	slot = R.slot
	if slot != conf.NoSlot {
		R.slot = R.nextFunc(slot)
	}

	return
}
