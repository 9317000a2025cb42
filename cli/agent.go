package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/termacli/terma/agent"
)

var agentCmd = &cobra.Command{
	Use:    "agent",
	Short:  "Run the background agent (started automatically by exec)",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runAgent,
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()

	session := agent.NewSession(agent.SessionOptions{Logger: logger})
	broker := agent.NewBroker(session, agent.Options{Logger: logger})

	if err := broker.Run(context.Background()); err != nil {
		if msg, ok := agent.Remediation(err); ok {
			fmt.Fprintln(os.Stderr, msg)
		}
		return err
	}
	return nil
}
