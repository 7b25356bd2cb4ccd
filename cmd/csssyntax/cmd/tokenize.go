package cmd

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/internal/tokenizer"
	"github.com/csssyntax/csssyntax/pkg/token"
	"github.com/spf13/cobra"
)

var (
	tokenizeShowPos      bool
	tokenizeShowType     bool
	tokenizeKeepComments bool
	tokenizeUTF16        bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a CSS file and print the resulting tokens",
	Long: `Tokenize runs the CSS Syntax Module Level 3 tokenizer over a file (or
stdin) and prints the resulting token stream, one token per line.

Examples:
  # Tokenize a stylesheet
  csssyntax tokenize style.css

  # Show token types and positions
  csssyntax tokenize --show-type --show-pos style.css

  # Tokenize stdin
  cat style.css | csssyntax tokenize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().BoolVar(&tokenizeShowPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowType, "show-type", false, "show token type names")
	tokenizeCmd.Flags().BoolVar(&tokenizeKeepComments, "comments", false, "emit COMMENT tokens instead of discarding comments")
	tokenizeCmd.Flags().BoolVar(&tokenizeUTF16, "utf16", false, "treat input as raw UTF-16 bytes (BOM-sniffed) instead of UTF-8 text")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	var tz *tokenizer.Tokenizer
	if tokenizeUTF16 {
		raw, err := readInputBytes(path)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		sink := errsink.NewStderrSink(string(raw), path)
		tz, err = tokenizer.NewFromUTF16(raw, unicode.ExpectBOM, tokenizer.WithSink(sink), tokenizer.WithComments(tokenizeKeepComments))
		if err != nil {
			return fmt.Errorf("failed to decode UTF-16 input: %w", err)
		}
	} else {
		input, err := readInput(path)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		sink := errsink.NewStderrSink(input, path)
		tz = tokenizer.New(input, tokenizer.WithSink(sink), tokenizer.WithComments(tokenizeKeepComments))
	}

	for {
		tok := tz.Next()
		printTokenLine(tok)
		if tok.IsEOF() {
			break
		}
	}
	return nil
}

func printTokenLine(tok token.Token) {
	var out string
	if tokenizeShowType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	out += " " + fmt.Sprintf("%q", tok.ToSource())
	if tokenizeShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
