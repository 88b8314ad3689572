package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// rootOptions - Flag values shared by all sub commands
type rootOptions struct {
	verbose bool
}

// addRootFlags - Adds the flags shared by all sub commands
func addRootFlags(fs *pflag.FlagSet, o *rootOptions) {
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log table internals at debug level")
}

// logger - Returns a development logger when verbose output is asked for, a no-op logger otherwise
func (o *rootOptions) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create development logger")
	}

	return logger, nil
}

// newRootCommand - Returns the tablectl command with all sub commands added
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tablectl",
		Short:         "Exercise the hashtable package",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addRootFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(newScenarioCommand(opts), newStatCommand(opts))

	return cmd
}
