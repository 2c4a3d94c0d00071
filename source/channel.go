package source

import (
	"context"

	"github.com/arnodel/streamtokens/token"
	"github.com/pkg/errors"
)

// ContextSource produces the values received from a channel.  It ends when
// the channel is closed or when its context is done, whichever comes first.
type ContextSource[T any] struct {
	ctx  context.Context
	ch   <-chan T
	errc <-chan error
	err  error
}

var _ token.Source[int] = &ContextSource[int]{}

func NewContextSource[T any](ctx context.Context, ch <-chan T) *ContextSource[T] {
	return &ContextSource[T]{ctx: ctx, ch: ch}
}

// Start runs produce in a goroutine and returns a source for the values it
// sends.  The channel is closed when produce returns, and the error it returns
// is reported by Err.  produce should stop when ctx is done; Send helps with
// that.
func Start[T any](ctx context.Context, produce func(context.Context, chan<- T) error) *ContextSource[T] {
	ch := make(chan T)
	errc := make(chan error, 1)
	go func() {
		defer close(ch)
		errc <- produce(ctx, ch)
	}()
	s := NewContextSource[T](ctx, ch)
	s.errc = errc
	return s
}

// Send sends v on ch unless ctx is done first.  It returns false in that
// case.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *ContextSource[T]) Next() (tok T, ok bool) {
	if err := s.ctx.Err(); err != nil {
		s.err = err
		return tok, false
	}
	select {
	case tok, ok = <-s.ch:
		if !ok && s.errc != nil {
			if err := <-s.errc; err != nil {
				s.err = errors.Wrap(err, "producer failed")
			}
			s.errc = nil
		}
		return tok, ok
	case <-s.ctx.Done():
		s.err = s.ctx.Err()
		return tok, false
	}
}

// Err returns why the source ended: the context's error, the producer's
// error, or nil if the channel was closed normally.
func (s *ContextSource[T]) Err() error {
	return s.err
}
