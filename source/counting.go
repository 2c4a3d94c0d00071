package source

import "github.com/arnodel/streamtokens/token"

// Counting wraps a source and counts how many times it is pulled.
type Counting[T any] struct {
	source token.Source[T]
	pulls  int
}

var _ token.Source[int] = &Counting[int]{}

func NewCounting[T any](source token.Source[T]) *Counting[T] {
	return &Counting[T]{source: source}
}

func (c *Counting[T]) Next() (T, bool) {
	c.pulls++
	return c.source.Next()
}

// Pulls is the number of calls to Next so far.
func (c *Counting[T]) Pulls() int {
	return c.pulls
}
