package main

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wordnet-go/morphy"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "generate <wordnet-directory> <model-file>",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageOnly(cmd, args)
			}
			return generate(args[0], args[1])
		},
	}
}

func generate(wordNetDir, modelPath string) error {
	log.Printf("loading WordNet from %s", wordNetDir)
	l, err := morphy.LoadWordNet(wordNetDir)
	if err != nil {
		return err
	}
	logStats(l.Stats())

	if err := l.SaveFile(modelPath); err != nil {
		return err
	}
	fi, err := os.Stat(modelPath)
	if err != nil {
		return errors.Wrap(err, "stat model")
	}
	log.Printf("wrote %s (%s)", modelPath, humanize.Bytes(uint64(fi.Size())))
	return nil
}

func logStats(st morphy.Stats) {
	log.Printf("%s lemma forms", humanize.Comma(int64(st.Forms)))
	for _, pos := range morphy.PartsOfSpeech {
		log.Printf("  %-9s %8s lemmas %7s exceptions", pos,
			humanize.Comma(int64(st.Lemmas[pos])), humanize.Comma(int64(st.Exceptions[pos])))
	}
}
