package main

import (
	"fmt"
	"math/rand"

	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// statOptions - Flag values of the stat sub command
type statOptions struct {
	keys         int
	buckets      int64
	fixed        bool
	seed         int64
	distribution bool
}

// addStatFlags - Adds the flags of the stat sub command
func addStatFlags(fs *pflag.FlagSet, o *statOptions) {
	fs.IntVar(&o.keys, "keys", 10000, "number of random keys to insert")
	fs.Int64Var(&o.buckets, "buckets", 0, "initial number of buckets, 0 for default")
	fs.BoolVar(&o.fixed, "fixed", false, "keep the number of buckets fixed")
	fs.Int64Var(&o.seed, "seed", 1, "random seed for key generation")
	fs.BoolVar(&o.distribution, "distribution", false, "print number of entries per bucket")
}

// newStatCommand - Returns the stat sub command, it fills a table with random keys and prints its TableStat
func newStatCommand(opts *rootOptions) *cobra.Command {
	statOpts := &statOptions{}

	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Insert random integer keys and print bucket statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			table, _, err := hashtable.New(hashtable.Conf[uint64, int]{
				NumberOfBuckets: statOpts.buckets,
				KeyHasher:       hashfunc.IntegerHasher[uint64]{},
				FixedSize:       statOpts.fixed,
				Logger:          logger,
			})
			if err != nil {
				return errors.Wrap(err, "failed to create table")
			}

			rnd := rand.New(rand.NewSource(statOpts.seed))
			var duplicates int
			for i := 0; i < statOpts.keys; i++ {
				if table.Insert(rnd.Uint64(), i, hashtable.Transfer, hashtable.Transfer).IsEnd() {
					duplicates++
				}
			}

			stat := table.Stat(statOpts.distribution)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entries: %d\n", stat.Entries)
			fmt.Fprintf(out, "duplicates rejected: %d\n", duplicates)
			fmt.Fprintf(out, "buckets: %d\n", stat.NumberOfBuckets)
			fmt.Fprintf(out, "used buckets: %d\n", stat.UsedBuckets)
			fmt.Fprintf(out, "longest chain: %d\n", stat.LongestChain)
			fmt.Fprintf(out, "average chain: %.2f\n", stat.AverageChain)
			fmt.Fprintf(out, "slots: %d (%d free)\n", stat.Slots, stat.FreeSlots)
			for i, n := range stat.BucketDistribution {
				fmt.Fprintf(out, "bucket %d: %d\n", i, n)
			}

			return nil
		},
	}
	addStatFlags(cmd.Flags(), statOpts)

	return cmd
}
