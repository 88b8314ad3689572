package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunScenario(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		success, total, err := runScenario(&out, zap.NewNop())

		// Check
		require.NoError(t, err)
		assert.Equal(t, total, success, "no failed checks: %s", out.String())
		assert.Greater(t, total, 20)
		assert.Empty(t, out.String(), "nothing reported")
	})
}

func TestCommands(t *testing.T) {
	t.Run("scenario prints summary", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer
		cmd := newRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"scenario"})

		// Execute
		err := cmd.Execute()

		// Check
		require.NoError(t, err)
		assert.Contains(t, out.String(), "All tests completed, summary:")
	})

	t.Run("stat prints distribution for fixed table", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer
		cmd := newRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"stat", "--keys", "100", "--buckets", "4", "--fixed", "--distribution"})

		// Execute
		err := cmd.Execute()

		// Check
		require.NoError(t, err)
		assert.Contains(t, out.String(), "entries: 100")
		assert.Contains(t, out.String(), "buckets: 4\n")
		assert.Contains(t, out.String(), "bucket 3:")
		assert.Contains(t, out.String(), "slots: 100 (0 free)")
	})

	t.Run("rejects unknown sub command arguments", func(t *testing.T) {
		// Prepare
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"scenario", "extra"})

		// Check
		assert.Error(t, cmd.Execute())
	})
}
