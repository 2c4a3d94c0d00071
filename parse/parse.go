// Package parse has a few parsing helpers built on the primitive operations
// of token.Tokens.  They work the same over streaming and in-memory cursors.
//
// Every helper that fails leaves the cursor where it found it.
package parse

import "github.com/arnodel/streamtokens/token"

// A Func parses a value from ts, reporting whether it succeeded.
type Func[T, R any] func(ts token.Tokens[T]) (R, bool)

// must turns checkpoint errors into panics.  The helpers in this package only
// use checkpoints they own, so an error means the cursor's bookkeeping is
// broken and carrying on would produce wrong results.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Optional runs f and rewinds the cursor if it fails.
func Optional[T, R any](ts token.Tokens[T], f Func[T, R]) (R, bool) {
	cp := ts.Checkpoint()
	defer func() { must(ts.Release(cp)) }()
	res, ok := f(ts)
	if !ok {
		must(ts.Rewind(cp))
	}
	return res, ok
}

// Attempt runs f and rewinds the cursor if it returns false.
func Attempt[T any](ts token.Tokens[T], f func(token.Tokens[T]) bool) bool {
	_, ok := Optional[T, struct{}](ts, func(ts token.Tokens[T]) (struct{}, bool) {
		return struct{}{}, f(ts)
	})
	return ok
}

// Token consumes the next token if it is want.
func Token[T comparable](ts token.Tokens[T], want T) bool {
	return Attempt(ts, func(ts token.Tokens[T]) bool {
		tok, ok := ts.Advance()
		return ok && tok == want
	})
}

// Tokens consumes the next len(want) tokens if they are want.
func Tokens[T comparable](ts token.Tokens[T], want []T) bool {
	return Attempt(ts, func(ts token.Tokens[T]) bool {
		for _, w := range want {
			if tok, ok := ts.Advance(); !ok || tok != w {
				return false
			}
		}
		return true
	})
}

// Satisfy consumes the next token if pred holds for it.
func Satisfy[T any](ts token.Tokens[T], pred func(T) bool) (T, bool) {
	return Optional[T, T](ts, func(ts token.Tokens[T]) (T, bool) {
		tok, ok := ts.Advance()
		return tok, ok && pred(tok)
	})
}

// TakeWhile consumes and returns tokens as long as pred holds.  The first
// token that fails pred is left for the next parser.
func TakeWhile[T any](ts token.Tokens[T], pred func(T) bool) []T {
	var toks []T
	for {
		tok, ok := Satisfy(ts, pred)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// SkipWhile is like TakeWhile but only counts the tokens.
func SkipWhile[T any](ts token.Tokens[T], pred func(T) bool) int {
	n := 0
	for {
		if _, ok := Satisfy(ts, pred); !ok {
			return n
		}
		n++
	}
}

// OneOf returns the result of the first alternative that succeeds.  Each
// alternative starts from the same position.
func OneOf[T, R any](ts token.Tokens[T], alts ...Func[T, R]) (R, bool) {
	for _, alt := range alts {
		if res, ok := Optional(ts, alt); ok {
			return res, true
		}
	}
	var zero R
	return zero, false
}

// SepBy parses zero or more items separated by sep.  A trailing separator
// is not consumed.
func SepBy[T, R any](ts token.Tokens[T], item Func[T, R], sep func(token.Tokens[T]) bool) []R {
	first, ok := Optional(ts, item)
	if !ok {
		return nil
	}
	res := []R{first}
	for {
		next, ok := Optional[T, R](ts, func(ts token.Tokens[T]) (R, bool) {
			if !sep(ts) {
				var zero R
				return zero, false
			}
			return item(ts)
		})
		if !ok {
			return res
		}
		res = append(res, next)
	}
}
