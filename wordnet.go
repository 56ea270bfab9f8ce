package morphy

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// scannerBufSize bounds the length of a single line in a WordNet file.
// index.noun lines for polysemous words run to several kilobytes.
const scannerBufSize = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	return sc
}

// ReadIndex reads the lemmas from a WordNet index file (index.noun, ...).
// Lines starting with a space are the license header and are skipped; the
// lemma is the text before the first space of every other line.
func ReadIndex(r io.Reader) ([]string, error) {
	var lemmas []string
	sc := newScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}
		if idx := strings.IndexByte(line, ' '); idx >= 0 {
			line = line[:idx]
		}
		lemmas = append(lemmas, line)
	}
	return lemmas, sc.Err()
}

// ReadExceptions reads a WordNet exception list (noun.exc, ...). Each line
// holds an inflected form followed by one or more base forms.
func ReadExceptions(r io.Reader) ([]Exception, error) {
	var excs []Exception
	sc := newScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		excs = append(excs, Exception{Form: fields[0], Bases: fields[1:]})
	}
	return excs, sc.Err()
}

// LoadWordNet builds a Lemmatizer from the WordNet database directory dir,
// reading index.{adj,adv,noun,verb} and {adj,adv,noun,verb}.exc. Every file
// must be present.
func LoadWordNet(dir string) (*Lemmatizer, error) {
	lemmas := make(map[PartOfSpeech][]string, numPOS)
	excs := make(map[PartOfSpeech][]Exception, numPOS)

	for _, pos := range PartsOfSpeech {
		name := "index." + pos.WordNetName()
		list, err := readFile(filepath.Join(dir, name), ReadIndex)
		if err != nil {
			return nil, err
		}
		lemmas[pos] = list

		name = pos.WordNetName() + ".exc"
		records, err := readFile(filepath.Join(dir, name), ReadExceptions)
		if err != nil {
			return nil, err
		}
		excs[pos] = records
	}

	set, err := NewLemmaSet(lemmas)
	if err != nil {
		return nil, err
	}
	table, err := NewExceptionTable(excs)
	if err != nil {
		return nil, err
	}
	return New(set, table), nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filepath.Base(path))
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath.Base(path))
	}
	return out, nil
}
