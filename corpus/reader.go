package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/gazetteer/core"
)

// Scanner buffer large enough for the longest dictionary lines seen in
// the wild (vernacular name lists with long synonymy columns).
const maxLineBytes = 1 << 20

// Stats accounts for one dictionary read. Skipped counts lines that were
// present but unusable (missing label column, empty term).
type Stats struct {
	Lines   int
	Entries int
	Skipped int
}

// ReadDictionary reads a dictionary file: UTF-8 text, one
// term<TAB>label pair per line, no header, '#' comment lines ignored.
// Files ending in ".gz" are decompressed transparently. Malformed lines
// are skipped and counted, never fatal. Terms may repeat; every
// (term, label) pair is retained.
func ReadDictionary(path string) ([]core.Entry, Stats, error) {
	r, closeAll, err := openMaybeGzip(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer closeAll()

	return ReadDictionaryFrom(r)
}

// ReadDictionaryFrom reads dictionary lines from r. See ReadDictionary.
func ReadDictionaryFrom(r io.Reader) ([]core.Entry, Stats, error) {
	var (
		entries []core.Entry
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Lines++

		term, label, found := strings.Cut(line, "\t")
		term = strings.TrimSpace(term)
		label = strings.TrimSpace(label)
		if !found || term == "" || label == "" {
			stats.Skipped++
			continue
		}

		entries = append(entries, core.Entry{Term: term, Label: label})
		stats.Entries++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return entries, stats, nil
}

// ReadFilter reads a filter-word file: one word per line, '#' comment
// lines and blank lines ignored, ".gz" decompressed transparently. The
// words are returned verbatim; normalization is the caller's concern so
// that it matches the tokenizer configuration in use.
func ReadFilter(path string) ([]string, error) {
	r, closeAll, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer closeAll()

	return ReadFilterFrom(r)
}

// ReadFilterFrom reads filter words from r. See ReadFilter.
func ReadFilterFrom(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return words, nil
}

// ReadBytes returns the raw (still compressed) bytes of a corpus file,
// used for content-addressed cache keys.
func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return data, nil
}

func openMaybeGzip(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}

	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return gz, func() error {
		gzErr := gz.Close()
		if err := f.Close(); err != nil {
			return err
		}
		return gzErr
	}, nil
}
