package parse

import (
	"strconv"
	"strings"
	"testing"

	"github.com/arnodel/streamtokens/internal/scanner"
	"github.com/arnodel/streamtokens/source"
	"github.com/arnodel/streamtokens/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streaming(s string) (*token.Cursor[rune], *source.Counting[rune]) {
	src := source.NewCounting[rune](source.NewRuneSource(strings.NewReader(s)))
	return token.NewCursor[rune](src), src
}

func rest(ts token.Tokens[rune]) string {
	return string(TakeWhile(ts, func(rune) bool { return true }))
}

func TestTakeWhileLeavesFailingToken(t *testing.T) {
	c, src := streaming("123ab")
	digits := TakeWhile[rune](c, scanner.IsDigit[rune])
	assert.Equal(t, "123", string(digits))
	assert.Equal(t, 4, src.Pulls())
	assert.Equal(t, 0, c.Live())

	r, ok := c.Advance()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 4, src.Pulls())
}

func TestTokenAndTokens(t *testing.T) {
	c, _ := streaming("hello world")
	assert.False(t, Tokens[rune](c, []rune("help")))
	assert.Equal(t, 0, c.Position())
	assert.True(t, Tokens[rune](c, []rune("hello")))
	assert.False(t, Token[rune](c, 'w'))
	assert.True(t, Token[rune](c, ' '))
	assert.Equal(t, "world", rest(c))
	assert.False(t, Token[rune](c, 'x'))
	assert.True(t, c.IsExhausted())
}

func TestOptional(t *testing.T) {
	c, _ := streaming("ab")
	_, ok := Optional[rune, string](c, func(ts token.Tokens[rune]) (string, bool) {
		ts.Advance()
		ts.Advance()
		return "", false
	})
	assert.False(t, ok)
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Live())
}

func TestOneOf(t *testing.T) {
	keyword := func(kw string) Func[rune, string] {
		return func(ts token.Tokens[rune]) (string, bool) {
			return kw, Tokens(ts, []rune(kw))
		}
	}
	for _, input := range []string{"fork", "for", "foreach"} {
		t.Run(input, func(t *testing.T) {
			c, src := streaming(input + "!")
			kw, ok := OneOf[rune, string](c, keyword("foreach"), keyword("fork"), keyword("for"))
			require.True(t, ok)
			assert.Equal(t, input, kw)
			assert.Equal(t, "!", rest(c))
			assert.Equal(t, len(input)+2, src.Pulls())
		})
	}

	c, _ := streaming("if")
	_, ok := OneOf[rune, string](c, keyword("for"), keyword("while"))
	assert.False(t, ok)
	assert.Equal(t, "if", rest(c))
}

func number(ts token.Tokens[rune]) (int, bool) {
	digits := TakeWhile(ts, scanner.IsDigit[rune])
	if len(digits) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(string(digits))
	return n, err == nil
}

func TestSepBy(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
		rest     string
	}{
		{"", nil, ""},
		{"x", nil, "x"},
		{"1", []int{1}, ""},
		{"1\n2\r\n3", []int{1, 2, 3}, ""},
		{"1\n2\n", []int{1, 2}, "\n"},
		{"10\nab", []int{10}, "\nab"},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			streamCursor, _ := streaming(tt.input)
			memCursor := token.NewCursorFromSlice([]rune(tt.input))
			for _, c := range []*token.Cursor[rune]{streamCursor, memCursor} {
				nums := SepBy[rune, int](c, number, LineEnding)
				assert.Equal(t, tt.expected, nums)
				assert.Equal(t, tt.rest, rest(c))
				assert.Equal(t, 0, c.Live())
			}
		})
	}
}

func TestScan(t *testing.T) {
	c, _ := streaming("abc123")
	word := Scan(c, scanner.IsAlpha[rune], func(toks []rune) string {
		return string(toks)
	})
	assert.Equal(t, "abc", word)
	assert.Equal(t, 0, c.Live())
	assert.Equal(t, 1, c.Retained(), "only the probed token should remain")
	assert.Equal(t, "123", rest(c))
}

func TestInt(t *testing.T) {
	tests := []struct {
		input string
		n     int
		ok    bool
		rest  string
	}{
		{"42", 42, true, ""},
		{"-17x", -17, true, "x"},
		{"-x", 0, false, "-x"},
		{"", 0, false, ""},
		{"99999999999999999999999", 0, false, "99999999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, _ := streaming(tt.input)
			n, ok := Int(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.rest, rest(c))
		})
	}
}

func TestStreamingAndBufferedAgree(t *testing.T) {
	input := "12\n7\r\n300\nnot a number"
	streamCursor, src := streaming(input)
	memCursor := token.NewCursorFromSlice([]rune(input))

	fromStream := SepBy[rune, int](streamCursor, number, LineEnding)
	fromMem := SepBy[rune, int](memCursor, number, LineEnding)
	assert.Equal(t, fromMem, fromStream)
	assert.Equal(t, memCursor.Position(), streamCursor.Position())
	assert.Equal(t, rest(memCursor), rest(streamCursor))
	assert.Equal(t, len([]rune(input))+1, src.Pulls())
}
