package hashtable

import (
	"testing"

	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/stretchr/testify/require"
)

// newPointerTable - Returns a table with *int keys and values, the way a C caller would hand over heap memory
func newPointerTable(t *testing.T, numberOfBuckets int64) *Table[*int, *int] {
	t.Helper()

	table, _, err := New(Conf[*int, *int]{
		NumberOfBuckets: numberOfBuckets,
		KeyHasher:       hashfunc.NewPointerHasher[int](hashfunc.IntegerHasher[int]{}),
		KeyLifecycle:    hashfunc.PointerCopier[int]{},
		ValueLifecycle:  hashfunc.PointerCopier[int]{},
	})
	require.NoError(t, err, "create table")

	return table
}

// newIntTable - Returns a fixed size table with int keys hashing to themselves, so bucket placement is predictable
func newIntTable(t *testing.T, numberOfBuckets int64) *Table[int, string] {
	t.Helper()

	table, _, err := New(Conf[int, string]{
		NumberOfBuckets: numberOfBuckets,
		KeyHasher:       hashfunc.IntegerHasher[int]{},
		FixedSize:       true,
	})
	require.NoError(t, err, "create table")

	return table
}

func intPtr(v int) *int {
	return &v
}

// keysInOrder - Walks the table from Begin to End
func keysInOrder[K, V any](table *Table[K, V]) (keys []K) {
	for it := table.Begin(); it != table.End(); it = table.Next(it) {
		keys = append(keys, table.Key(it))
	}
	return
}
