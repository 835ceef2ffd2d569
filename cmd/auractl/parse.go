package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aura/internal/capture"
	"aura/pkg/datemath"
)

var parseBase string

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Split a capture command into draft tasks",
		Long: `Splits the text on ";" and " / ", extracts the due date of every item
and prints the drafts as YAML. Without an argument the text is read from stdin.`,
		Example: `  auractl parse "comprar pan mañana; llamar a mamá el viernes"
  echo "pagar luz 30/06" | auractl parse --base 2024-01-08`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	cmd.Flags().StringVar(&parseBase, "base", "", "reference date (YYYY-MM-DD or RFC3339), defaults to now")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	parser, err := newParser()
	if err != nil {
		return err
	}

	base, err := baseTime(parseBase, parser.Location())
	if err != nil {
		return err
	}

	text := ""
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)

	drafts := slices.Collect(capture.New(parser).ParseCommand(text, base))
	logger.Debug("parsed command", zap.Int("drafts", len(drafts)), zap.Time("base", base))

	docs := make([]taskDoc, len(drafts))
	for i, d := range drafts {
		docs[i] = newTaskDoc(d)
	}
	return writeYAML(cmd.OutOrStdout(), docs)
}

// baseTime parses --base; an empty value means now.
func baseTime(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := datemath.ParseISO(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--base: %w", err)
	}
	return t, nil
}
