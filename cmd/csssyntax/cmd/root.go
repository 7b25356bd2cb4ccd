package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "csssyntax",
	Short: "CSS Syntax Module Level 3 tokenizer, parser, and canonicalizer",
	Long: `csssyntax implements the W3C CSS Syntax Module Level 3 tokenizer,
token stream, parser, serializer, and an optional grammar-driven
canonicalizer, exposed both as a Go library and as this CLI.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func readInput(path string) (string, error) {
	b, err := readInputBytes(path)
	return string(b), err
}

// readInputBytes is readInput without the string conversion, for commands
// that need to hand raw bytes to a decoder (e.g. --utf16) instead of
// assuming the input is already UTF-8 text.
func readInputBytes(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
