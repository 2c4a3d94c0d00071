package token

import "iter"

// A Source produces tokens on demand.  Next returns false once there are no
// more tokens.  A cursor calls Next at most once per token, and never again
// after it has returned false, so sources do not need to support replay.
//
// Errors are the source's business: a source that can fail should end its
// sequence and report the failure some other way (see the source package).
type Source[T any] interface {
	Next() (T, bool)
}

// SliceSource produces the tokens of a slice in order.
type SliceSource[T any] struct {
	toks []T
}

var _ Source[int] = &SliceSource[int]{}

func NewSliceSource[T any](toks []T) *SliceSource[T] {
	return &SliceSource[T]{toks: toks}
}

func (s *SliceSource[T]) Next() (tok T, ok bool) {
	if len(s.toks) > 0 {
		tok, ok = s.toks[0], true
		s.toks = s.toks[1:]
	}
	return
}

// ChannelSource produces the values received from a channel, until the
// channel is closed.
type ChannelSource[T any] <-chan T

var _ Source[int] = make(ChannelSource[int])

func (s ChannelSource[T]) Next() (T, bool) {
	tok, ok := <-s
	return tok, ok
}

// FuncSource adapts a function to the Source interface.
type FuncSource[T any] func() (T, bool)

var _ Source[int] = FuncSource[int](nil)

func (f FuncSource[T]) Next() (T, bool) {
	return f()
}

// SeqSource produces the values of an iter.Seq.  The sequence is pulled
// lazily, one value per call to Next.  Call Stop to release the sequence if
// it is not consumed to the end.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

var _ Source[int] = &SeqSource[int]{}

func NewSeqSource[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

func (s *SeqSource[T]) Stop() {
	s.stop()
}

type emptySource[T any] struct{}

func (emptySource[T]) Next() (tok T, ok bool) {
	return
}
