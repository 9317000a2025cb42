package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered under %q", name, parent.Name())
	return nil
}

func TestCommandTree(t *testing.T) {
	exec := findCommand(t, rootCmd, "exec")
	assert.False(t, exec.Hidden)

	agent := findCommand(t, rootCmd, "agent")
	assert.True(t, agent.Hidden, "the agent subcommand is an implementation detail of exec")

	cfg := findCommand(t, rootCmd, "config")
	for _, sub := range []string{"provider", "api-key", "model", "peek"} {
		findCommand(t, cfg, sub)
	}
}

func TestExecRequiresPrompt(t *testing.T) {
	exec := findCommand(t, rootCmd, "exec")
	require.Error(t, exec.Args(exec, nil))
	require.NoError(t, exec.Args(exec, []string{"list", "files"}))
}
