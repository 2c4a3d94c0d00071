package parse

import (
	"strconv"

	"github.com/arnodel/streamtokens/internal/scanner"
	"github.com/arnodel/streamtokens/token"
)

// Scan consumes tokens while pred holds and passes them to use without
// copying them: the slice is a view of the cursor's window and is only valid
// during the call to use.
func Scan[T, R any](c *token.Cursor[T], pred func(T) bool, use func([]T) R) R {
	start := c.Checkpoint()
	defer func() { must(c.Release(start)) }()
	SkipWhile[T](c, pred)
	toks, err := c.Since(start)
	must(err)
	return use(toks)
}

// Int parses an optionally negative decimal integer.  If there is none, or
// it does not fit in an int, nothing is consumed.
func Int(c *token.Cursor[rune]) (int, bool) {
	start := c.Checkpoint()
	defer func() { must(c.Release(start)) }()
	Token[rune](c, '-')
	SkipWhile[rune](c, scanner.IsDigit[rune])
	toks, err := c.Since(start)
	must(err)
	n, err := strconv.Atoi(string(toks))
	if err != nil {
		must(c.Rewind(start))
		return 0, false
	}
	return n, true
}

// LineEnding consumes "\r\n" or "\n".
func LineEnding(ts token.Tokens[rune]) bool {
	return Tokens(ts, []rune("\r\n")) || Token(ts, '\n')
}
