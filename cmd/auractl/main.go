// Command auractl runs the capture parser and the board projection offline,
// reading and writing YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aura/pkg/datemath"
)

var (
	logger   *zap.Logger
	timezone string
	verbose  bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "auractl",
		Short:         "Offline tools for Aura task capture and boards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				logger = zap.NewNop()
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l
			return nil
		},
	}

	root.PersistentFlags().StringVar(&timezone, "tz", "Europe/Madrid", "IANA timezone used to resolve relative dates")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newParseCmd(), newBoardCmd(), newMoveCmd())
	return root
}

func newParser() (*datemath.Parser, error) {
	p, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}
	return p, nil
}

func main() {
	logger = zap.NewNop()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	_ = logger.Sync()
}
