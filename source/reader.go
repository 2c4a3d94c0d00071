package source

import (
	"io"

	"github.com/arnodel/streamtokens/internal/scanner"
	"github.com/arnodel/streamtokens/token"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("streamtokens.source")

// Pos is the line and column of a Char, both starting at 0.
type Pos = scanner.Pos

// Char is a rune together with where it was found.
type Char struct {
	Rune rune
	Pos  Pos
}

type readerSource struct {
	scanner *scanner.Scanner
	err     error
}

func (s *readerSource) end(err error) {
	if err == io.EOF || s.err != nil {
		return
	}
	s.err = errors.Wrapf(err, "read error at %s", s.scanner.CurrentPos())
	log.Errorf("%s", s.err)
}

// Err returns the error that ended the source, or nil if it reached the end
// of its input (or has not ended yet).
func (s *readerSource) Err() error {
	return s.err
}

// ByteSource produces the bytes read from an io.Reader.
type ByteSource struct {
	readerSource
}

var _ token.Source[byte] = &ByteSource{}

func NewByteSource(r io.Reader, opts ...Option) *ByteSource {
	return &ByteSource{readerSource{scanner: newScanner(r, opts)}}
}

func (s *ByteSource) Next() (byte, bool) {
	b, err := s.scanner.ReadByte()
	if err != nil {
		s.end(err)
		return 0, false
	}
	return b, true
}

// RuneSource produces the runes decoded from UTF-8 text read from an
// io.Reader.  Invalid bytes are produced as utf8.RuneError.
type RuneSource struct {
	readerSource
}

var _ token.Source[rune] = &RuneSource{}

func NewRuneSource(r io.Reader, opts ...Option) *RuneSource {
	return &RuneSource{readerSource{scanner: newScanner(r, opts)}}
}

func (s *RuneSource) Next() (rune, bool) {
	r, _, err := s.scanner.ReadRune()
	if err != nil {
		s.end(err)
		return 0, false
	}
	return r, true
}

// CharSource is like RuneSource but also records the position of each rune,
// which a parser can use in error messages.
type CharSource struct {
	readerSource
}

var _ token.Source[Char] = &CharSource{}

func NewCharSource(r io.Reader, opts ...Option) *CharSource {
	return &CharSource{readerSource{scanner: newScanner(r, opts)}}
}

func (s *CharSource) Next() (Char, bool) {
	pos := s.scanner.CurrentPos()
	r, _, err := s.scanner.ReadRune()
	if err != nil {
		s.end(err)
		return Char{}, false
	}
	return Char{Rune: r, Pos: pos}, true
}
