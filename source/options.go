package source

import (
	"io"

	"github.com/arnodel/streamtokens/internal/scanner"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultBufSize = 4096

type options struct {
	bufSize int
	form    *norm.Form
}

// Option configures the reader sources.
type Option func(*options)

// WithBufferSize sets the size of the read buffer.
func WithBufferSize(size int) Option {
	return func(o *options) {
		o.bufSize = size
	}
}

// WithNormalization applies a Unicode normalization form to the text before
// it is decoded into runes.
func WithNormalization(form norm.Form) Option {
	return func(o *options) {
		o.form = &form
	}
}

func newScanner(r io.Reader, opts []Option) *scanner.Scanner {
	o := options{bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.form != nil {
		r = transform.NewReader(r, *o.form)
	}
	return scanner.NewScannerSize(r, o.bufSize)
}
