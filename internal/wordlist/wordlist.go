package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultPath is the system word list used when no dictionary is configured.
const DefaultPath = "/usr/share/dict/words"

// Supported dictionary encodings.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "iso-8859-1"
)

// ErrOpen is returned when the dictionary file cannot be opened.
var ErrOpen = errors.New("failed to open dictionary")

// ErrEncoding is returned for an encoding name that is not supported.
var ErrEncoding = errors.New("unsupported dictionary encoding")

// ScanStats counts what a Source has read so far.
type ScanStats struct {
	// Lines is the number of lines handed out to the consumer
	Lines int
	// Skipped is the number of lines dropped because they were not valid UTF-8
	Skipped int
	// ReadErr is the I/O error that ended the scan early, if any
	ReadErr error
}

// Source yields dictionary lines one at a time, in file order.
// A Source is single-pass: Lines may be ranged over once.
type Source struct {
	reader *bufio.Reader
	closer io.Closer
	name   string
	stats  ScanStats
}

// Open opens the dictionary at path, decoding it from encoding.
// ISO-8859-1 files are transcoded to UTF-8 as they are read.
// A failure to open wraps ErrOpen and the underlying *fs.PathError.
func Open(path string, encoding string) (*Source, error) {
	if !ValidEncoding(encoding) {
		return nil, fmt.Errorf("%w: %q", ErrEncoding, encoding)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return &Source{
		reader: bufio.NewReader(decode(f, encoding)),
		closer: f,
		name:   path,
	}, nil
}

// ValidEncoding reports whether encoding is one of the supported names.
func ValidEncoding(encoding string) bool {
	return encoding == EncodingUTF8 || encoding == EncodingLatin1
}

// decode wraps r so that it yields UTF-8.
func decode(r io.Reader, encoding string) io.Reader {
	if encoding == EncodingLatin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// NewSource wraps an arbitrary UTF-8 reader. Close is a no-op for sources built this way.
func NewSource(r io.Reader, name string) *Source {
	return &Source{
		reader: bufio.NewReader(r),
		name:   name,
	}
}

// FromLines builds a Source over an in-memory list of lines.
func FromLines(lines ...string) *Source {
	return NewSource(strings.NewReader(strings.Join(lines, "\n")), "memory")
}

// Name returns the path or label the source was built with.
func (s *Source) Name() string {
	return s.name
}

// Stats returns the counters accumulated so far.
func (s *Source) Stats() ScanStats {
	return s.stats
}

// Lines returns the lazy sequence of lines, without their terminators.
// Lines that are not valid UTF-8 are skipped and counted. A read error other
// than io.EOF ends the sequence and is recorded in Stats.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := s.reader.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !utf8.ValidString(line) {
					s.stats.Skipped++
				} else {
					s.stats.Lines++
					if !yield(line) {
						return
					}
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.stats.ReadErr = err
				}
				return
			}
		}
	}
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("failed to close dictionary %s: %w", s.name, err)
	}
	return nil
}
