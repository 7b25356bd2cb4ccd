package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/internal/parser"
	"github.com/csssyntax/csssyntax/pkg/canon"
	"github.com/spf13/cobra"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize [file]",
	Short: "Parse a stylesheet and validate it against the built-in at-rule grammar table",
	Long: `Canonicalize parses a stylesheet and walks it against the grammar table
for the at-rules CSS itself defines (@media, @supports, @keyframes,
@font-face, @page, and so on), printing the resulting declaration/rule
tree as JSON and any grammar violations found (e.g. an @import with a
block, or an at-rule nested somewhere it isn't allowed) to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCanonicalize,
}

func init() {
	rootCmd.AddCommand(canonicalizeCmd)
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	input, err := readInput(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	sink := &errsink.CollectingSink{}
	p := parser.New(input, parser.WithSink(sink))
	sheet := p.ParseStylesheet()

	records, violations := canon.Canonicalize(sheet, canon.DefaultTable)

	if len(sink.Errors) > 0 {
		stderrSink := errsink.NewStderrSink(input, path)
		for _, e := range sink.Errors {
			fmt.Fprint(os.Stderr, stderrSink.Format(e))
		}
	}
	for _, v := range violations {
		fmt.Fprintln(os.Stderr, "grammar violation:", v)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}

	if len(violations) > 0 {
		return fmt.Errorf("found %d grammar violation(s)", len(violations))
	}
	return nil
}
