package hashtable

import (
	"math"
	"testing"

	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty table", func(t *testing.T) {
		// Execute
		table, info, err := New(Conf[string, int]{NumberOfBuckets: 100, KeyHasher: hashfunc.StringHasher{}})

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, int64(128), info.NumberOfBuckets, "buckets rounded up to power of 2")
		assert.Equal(t, 0.75, info.MaxLoadFactor, "default load factor")
		assert.False(t, info.FixedSize)
		assert.Zero(t, table.Size(), "no entries")
		assert.Equal(t, table.End(), table.Begin(), "begin equals end on empty table")
		assert.Equal(t, table.BeginMut().Const(), table.Begin(), "begin and begin mut agree")
		assert.True(t, table.End().IsEnd())
		assert.True(t, table.EndMut().IsEnd())
	})

	t.Run("uses defaults for zero values", func(t *testing.T) {
		// Execute
		_, info, err := New(Conf[string, int]{KeyHasher: hashfunc.StringHasher{}})

		// Check
		require.NoError(t, err)
		assert.Equal(t, int64(16), info.NumberOfBuckets)
	})

	t.Run("error when no key hasher is given", func(t *testing.T) {
		// Execute
		_, _, err := New(Conf[string, int]{})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying a negative number of buckets", func(t *testing.T) {
		// Execute
		_, _, err := New(Conf[string, int]{NumberOfBuckets: -1, KeyHasher: hashfunc.StringHasher{}})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying a negative load factor", func(t *testing.T) {
		// Execute
		_, _, err := New(Conf[string, int]{MaxLoadFactor: -0.5, KeyHasher: hashfunc.StringHasher{}})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying a load factor that is not a number", func(t *testing.T) {
		// Execute
		table, _, err := New(Conf[string, int]{MaxLoadFactor: math.NaN(), KeyHasher: hashfunc.StringHasher{}})

		// Check
		assert.Error(t, err)
		assert.Nil(t, table, "no table returned")
	})
}

func TestTable_Init(t *testing.T) {
	t.Run("initializes a zero table", func(t *testing.T) {
		// Prepare
		var table Table[int, int]

		// Execute
		err := table.Init(Conf[int, int]{KeyHasher: hashfunc.IntegerHasher[int]{}})

		// Check
		require.NoError(t, err)
		assert.Zero(t, table.Size())
		assert.False(t, table.Insert(1, 1, Transfer, Transfer).IsEnd(), "usable after init")
	})

	t.Run("error when initialized twice", func(t *testing.T) {
		// Prepare
		var table Table[int, int]
		require.NoError(t, table.Init(Conf[int, int]{KeyHasher: hashfunc.IntegerHasher[int]{}}))
		table.Insert(1, 1, Transfer, Transfer)

		// Execute
		err := table.Init(Conf[int, int]{KeyHasher: hashfunc.IntegerHasher[int]{}})

		// Check
		assert.ErrorIs(t, err, AlreadyInitialized{})
		assert.Equal(t, int64(1), table.Size(), "table left as it was")
	})
}

func TestTable_Clear(t *testing.T) {
	t.Run("destroys owned entries and keeps static ones", func(t *testing.T) {
		// Prepare
		table := newPointerTable(t, 8)
		staticKey, staticValue := intPtr(1), intPtr(10)
		ownedKey, ownedValue := intPtr(2), intPtr(20)
		table.Insert(staticKey, staticValue, Static, Static)
		table.Insert(ownedKey, ownedValue, Transfer, Transfer)

		// Execute
		table.Clear()

		// Check
		assert.Zero(t, table.Size(), "no entries")
		assert.Equal(t, table.End(), table.Begin(), "nothing to iterate")
		assert.Equal(t, 1, *staticKey, "static key untouched")
		assert.Equal(t, 10, *staticValue, "static value untouched")
		assert.Zero(t, *ownedKey, "owned key destroyed")
		assert.Zero(t, *ownedValue, "owned value destroyed")
	})

	t.Run("is idempotent and table stays usable", func(t *testing.T) {
		// Prepare
		table := newIntTable(t, 4)
		it := table.Insert(1, "one", Transient, Transient)

		// Execute
		table.Clear()
		table.Clear()

		// Check
		assert.Zero(t, table.Size())
		assert.ErrorIs(t, table.Check(it), InvalidIterator{}, "old iterator invalidated")
		it = table.Insert(1, "uno", Transient, Transient)
		assert.Equal(t, "uno", table.Value(it), "insert after clear")
		assert.Equal(t, int64(1), table.Size())
	})
}

func TestTable_Logging(t *testing.T) {
	t.Run("logs growth and clear at debug level", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.DebugLevel)
		table, _, err := New(Conf[int, int]{
			NumberOfBuckets: 4,
			KeyHasher:       hashfunc.IntegerHasher[int]{},
			Logger:          zap.New(core),
		})
		require.NoError(t, err)

		// Execute
		for k := 0; k < 4; k++ {
			table.Insert(k, k, Transfer, Transfer)
		}
		table.Clear()

		// Check
		assert.Equal(t, 1, logs.FilterMessage("Initialized hash table.").Len())
		grew := logs.FilterMessage("Grew hash table.").All()
		require.Len(t, grew, 1, "grew once")
		assert.Equal(t, int64(4), grew[0].ContextMap()["from_buckets"])
		assert.Equal(t, int64(8), grew[0].ContextMap()["to_buckets"])
		assert.Equal(t, 1, logs.FilterMessage("Cleared hash table.").Len())
	})
}
