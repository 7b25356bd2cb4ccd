package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/internal/parser"
	"github.com/csssyntax/csssyntax/pkg/tree"
	"github.com/spf13/cobra"
)

var (
	parseDumpTree bool
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a CSS stylesheet and display the parse tree",
	Long: `Parse runs "parse a stylesheet" over a file (or stdin) and prints the
resulting rule tree. Use --json for a machine-readable projection, or
--dump-tree for a one-line-per-rule summary of the top-level rules (rules
nested inside blocks are not listed); the default is the serialized
(re-rendered) source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "print one line per top-level rule instead of serialized source")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print a JSON projection of the parse tree")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	if len(sink.Errors) > 0 {
		stderrSink := errsink.NewStderrSink(input, path)
		for _, e := range sink.Errors {
			fmt.Fprint(os.Stderr, stderrSink.Format(e))
		}
	}

	switch {
	case parseJSON:
		return printJSON(sheet)
	case parseDumpTree:
		dumpRules(sheet.Rules, 0)
		return nil
	default:
		fmt.Println(sheet.ToSource())
		return nil
	}
}

// printJSON prints the §6 JSON projection of the parse tree: the Stylesheet
// (and everything reachable from it — rules, blocks, functions, tokens)
// marshals itself via the MarshalJSON methods in pkg/tree/json.go and
// pkg/token/token_json.go, each node emitting `{type: <TYPE>, …}` and each
// token `{token: <tokenType>, …payload}` per the field table in spec §3.
func printJSON(sheet *tree.Stylesheet) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sheet)
}

func serializeComponentValues(cvs []tree.ComponentValue) string {
	var out string
	for _, cv := range cvs {
		out += cv.ToSource()
	}
	return out
}

func dumpRules(rules []tree.Rule, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	for _, r := range rules {
		switch v := r.(type) {
		case *tree.AtRule:
			fmt.Printf("%sAtRule @%s prelude=%q block=%v\n", prefix, v.Name, serializeComponentValues(v.Prelude), v.Block != nil)
		case *tree.QualifiedRule:
			fmt.Printf("%sQualifiedRule prelude=%q block=%v\n", prefix, serializeComponentValues(v.Prelude), v.Block != nil)
		}
	}
}
