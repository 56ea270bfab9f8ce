package morphy

import (
	"bufio"
	"bytes"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorruptSnapshot is returned when a snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// maxPrealloc caps map and slice capacity hints taken from the stream, so a
// corrupt length cannot trigger a huge allocation before decoding fails.
const maxPrealloc = 1 << 16

// A snapshot is a MessagePack stream of two values:
//
//	lemmas:     map[string][]ordinal
//	exceptions: map[ordinal]map[string][]string
//
// The substitution rules are compiled in and never stored.

// WriteSnapshot encodes l to w. Keys are written in sorted order, so equal
// Lemmatizers produce identical bytes.
func (l *Lemmatizer) WriteSnapshot(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := l.encodeLemmas(enc); err != nil {
		return errors.Wrap(err, "encode lemmas")
	}
	if err := l.encodeExceptions(enc); err != nil {
		return errors.Wrap(err, "encode exceptions")
	}
	return nil
}

func (l *Lemmatizer) encodeLemmas(enc *msgpack.Encoder) error {
	forms := l.lemmas.forms
	if err := enc.EncodeMapLen(len(forms)); err != nil {
		return err
	}
	for _, form := range slices.Sorted(maps.Keys(forms)) {
		if err := enc.EncodeString(form); err != nil {
			return err
		}
		set := forms[form].list()
		if err := enc.EncodeArrayLen(len(set)); err != nil {
			return err
		}
		for _, pos := range set {
			if err := enc.EncodeInt(int64(pos)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Lemmatizer) encodeExceptions(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(numPOS); err != nil {
		return err
	}
	for _, pos := range PartsOfSpeech {
		if err := enc.EncodeInt(int64(pos)); err != nil {
			return err
		}
		table := l.exceptions.byPOS[pos]
		if err := enc.EncodeMapLen(len(table)); err != nil {
			return err
		}
		for _, form := range slices.Sorted(maps.Keys(table)) {
			if err := enc.EncodeString(form); err != nil {
				return err
			}
			bases := table[form]
			if err := enc.EncodeArrayLen(len(bases)); err != nil {
				return err
			}
			for _, b := range bases {
				if err := enc.EncodeString(b); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SaveFile writes a snapshot of l to path. The file is written next to
// path under a temporary name and renamed into place once complete.
func (l *Lemmatizer) SaveFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = l.WriteSnapshot(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close snapshot")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename snapshot")
	}
	return nil
}

// ReadSnapshot decodes a Lemmatizer from r. Any decoding problem, including
// trailing bytes after the second value, fails the whole read with an error
// wrapping ErrCorruptSnapshot.
func ReadSnapshot(r io.Reader) (*Lemmatizer, error) {
	dec := msgpack.NewDecoder(r)

	lemmas, err := decodeLemmas(dec)
	if err != nil {
		return nil, err
	}
	exceptions, err := decodeExceptions(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.PeekCode(); err != io.EOF {
		return nil, corrupt("trailing data", err)
	}
	return New(lemmas, exceptions), nil
}

// LoadFile memory-maps the snapshot at path and decodes it.
func LoadFile(path string) (*Lemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat snapshot")
	}
	if fi.Size() == 0 {
		return nil, corrupt("empty file", nil)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "mmap snapshot")
	}
	defer m.Unmap()

	return ReadSnapshot(bytes.NewReader(m))
}

func corrupt(what string, err error) error {
	if err == nil {
		return errors.Wrap(ErrCorruptSnapshot, what)
	}
	return errors.Wrapf(ErrCorruptSnapshot, "%s: %v", what, err)
}

func decodeLemmas(dec *msgpack.Decoder) (*LemmaSet, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, corrupt("lemmas", err)
	}
	s := &LemmaSet{forms: make(map[string]posSet, min(max(n, 0), maxPrealloc))}
	for range max(n, 0) {
		form, err := dec.DecodeString()
		if err != nil {
			return nil, corrupt("lemma form", err)
		}
		k, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, corrupt("lemma "+form, err)
		}
		for range max(k, 0) {
			pos, err := decodePOS(dec)
			if err != nil {
				return nil, corrupt("lemma "+form, err)
			}
			s.add(form, pos)
		}
	}
	return s, nil
}

func decodeExceptions(dec *msgpack.Decoder) (*ExceptionTable, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, corrupt("exceptions", err)
	}
	t := newExceptionTable()
	for range max(n, 0) {
		pos, err := decodePOS(dec)
		if err != nil {
			return nil, corrupt("exception part of speech", err)
		}
		m, err := dec.DecodeMapLen()
		if err != nil {
			return nil, corrupt("exceptions "+pos.String(), err)
		}
		for range max(m, 0) {
			form, err := dec.DecodeString()
			if err != nil {
				return nil, corrupt("exception form", err)
			}
			k, err := dec.DecodeArrayLen()
			if err != nil {
				return nil, corrupt("exception "+form, err)
			}
			bases := make([]string, 0, min(max(k, 0), maxPrealloc))
			for range max(k, 0) {
				b, err := dec.DecodeString()
				if err != nil {
					return nil, corrupt("exception "+form, err)
				}
				bases = append(bases, b)
			}
			t.byPOS[pos][form] = bases
		}
	}
	return t, nil
}

func decodePOS(dec *msgpack.Decoder) (PartOfSpeech, error) {
	v, err := dec.DecodeInt()
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= numPOS {
		return 0, errors.Wrapf(ErrInvalidPartOfSpeech, "ordinal %d", v)
	}
	return PartOfSpeech(v), nil
}
