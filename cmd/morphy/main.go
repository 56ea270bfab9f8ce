// Command morphy builds lemmatizer snapshots from a WordNet database and
// looks up lemmas with them.
//
//	morphy generate <wordnet-directory> <model-file>
//	morphy resolve <model-file> <word> <penn-tag>
//	morphy serve [flags]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const usage = `Usage:
  morphy generate <wordnet-directory> <model-file>
  morphy resolve <model-file> <word> <penn-tag>
  morphy serve [--addr ADDR] [--model FILE] [--cache-size N] [--allowed-origins LIST]

Commands:
  generate  Creates a model from the given directory of WordNet database files.
  resolve   Finds lemmas for the given word and Penn Treebank part of speech tag
            using the given model. Writes one lemma per line to standard output.
            Use --normalize to lower-case the word and join collocations with '_'.
  serve     Serves a model over HTTP. Settings may also come from MORPHY_*
            environment variables (MORPHY_MODEL, MORPHY_ADDR, ...).
`

func printUsage(cmd *cobra.Command) {
	fmt.Fprint(cmd.ErrOrStderr(), usage)
}

// usageOnly is the Run of commands invoked without a usable set of
// arguments: print usage and succeed.
func usageOnly(cmd *cobra.Command, _ []string) error {
	printUsage(cmd)
	return nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "morphy",
		Args:          cobra.ArbitraryArgs,
		RunE:          usageOnly,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) { printUsage(cmd) })
	root.SetFlagErrorFunc(func(cmd *cobra.Command, _ error) error {
		printUsage(cmd)
		return nil
	})

	root.AddCommand(newGenerateCommand(), newResolveCommand(), newServeCommand())
	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "morphy: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
