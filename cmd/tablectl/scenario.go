package main

import (
	"fmt"
	"io"

	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checker - Counts checks and reports the ones that fail
type checker struct {
	out     io.Writer
	success int
	total   int
}

// check - Counts one check and prints what was checked if ok is false
func (c *checker) check(ok bool, what string) {
	c.total++
	if ok {
		c.success++
		return
	}
	fmt.Fprintf(c.out, "Test %d failed: %s\n", c.total, what)
}

// newScenarioCommand - Returns the scenario sub command, it fails when any check of runScenario fails
func newScenarioCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Run the storage mode scenario against a table with *int keys and values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			success, total, err := runScenario(cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "All tests completed, summary: %d/%d tests passed.\n", success, total)
			if success != total {
				return fmt.Errorf("%d of %d checks failed", total-success, total)
			}

			return nil
		},
	}
}

// runScenario - Walks a table through insert, duplicate insert, erase, find, assign under all storage modes
func runScenario(out io.Writer, logger *zap.Logger) (success, total int, err error) {
	table, _, err := hashtable.New(hashtable.Conf[*int, *int]{
		KeyHasher:      hashfunc.NewPointerHasher[int](hashfunc.IntegerHasher[int]{}),
		KeyLifecycle:   hashfunc.PointerCopier[int]{},
		ValueLifecycle: hashfunc.PointerCopier[int]{},
		Logger:         logger,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create table")
		return
	}

	c := &checker{out: out}
	newInt := func(v int) *int { return &v }

	c.check(table.Size() == 0, "new table is empty")
	table.Clear()
	c.check(table.Size() == 0, "cleared table is empty")
	c.check(table.Begin() == table.BeginMut().Const(), "begin equals begin mut")
	c.check(table.End() == table.Begin(), "end equals begin on empty table")

	k, v := newInt(5), newInt(100)
	it := table.Insert(k, v, hashtable.Transfer, hashtable.Transfer)
	c.check(!it.IsEnd(), "insert 5")
	c.check(table.Key(it) == k, "transfer key stored as is")
	c.check(table.Value(it) == v, "transfer value stored as is")

	dup := table.Insert(newInt(5), newInt(200), hashtable.Transfer, hashtable.Transfer)
	c.check(dup.IsEnd(), "duplicate insert of 5 fails")
	c.check(table.Size() == 1, "size unchanged by failed insert")

	c.check(table.Erase(it).IsEnd(), "erasing only entry returns end")
	c.check(table.Size() == 0, "size zero after erase")

	k, v = newInt(10), newInt(200)
	it = table.Insert(k, v, hashtable.Transfer, hashtable.Transient)
	c.check(!it.IsEnd(), "insert 10")
	c.check(table.Key(it) == k, "transfer key stored as is")
	c.check(table.Value(it) != v, "transient value copied")
	c.check(*table.Value(it) == 200, "copied value equal")

	constIt := table.Find(k)
	c.check(it.Const() == constIt, "find returns inserted entry")

	static := newInt(250)
	it = table.FindMut(k)
	c.check(it.Const() == constIt, "find mut agrees with find")
	it = table.Assign(it, static, hashtable.Static)
	c.check(table.Value(constIt) == static, "static value stored as is")
	it = table.Assign(it, newInt(300), hashtable.Transfer)
	c.check(it.Const() == constIt, "assign returns same iterator")
	c.check(*static == 250, "static value not destroyed")

	c.check(table.Erase(it).IsEnd(), "erase last entry")
	c.check(*k == 0, "transfer key destroyed by erase")

	success, total = c.success, c.total

	return
}
