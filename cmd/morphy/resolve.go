package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordnet-go/morphy"
)

func newResolveCommand() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:     "resolve <model-file> <word> <penn-tag>",
		Aliases: []string{"morphy"},
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return usageOnly(cmd, args)
			}
			word := args[1]
			if normalize {
				word = morphy.NormalizeForm(word)
			}
			lemmas, err := resolve(args[0], word, args[2])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, lemma := range lemmas {
				fmt.Fprintln(out, lemma)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize the word before lookup")
	return cmd
}

func resolve(modelPath, word, tag string) ([]string, error) {
	pos, err := morphy.FromPennTag(tag)
	if err != nil {
		return nil, err
	}
	l, err := morphy.LoadFile(modelPath)
	if err != nil {
		return nil, err
	}
	return l.Resolve(word, pos)
}
