package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnodel/streamtokens/parse"
	"github.com/arnodel/streamtokens/source"
	"github.com/arnodel/streamtokens/token"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("fizzbuzz")

type result uint8

const (
	neither result = iota
	fizz
	buzz
	fizzBuzz
)

func (r result) String() string {
	switch r {
	case fizz:
		return "Fizz"
	case buzz:
		return "Buzz"
	case fizzBuzz:
		return "FizzBuzz"
	default:
		return "Neither"
	}
}

func classify(n int) result {
	switch {
	case n%15 == 0:
		return fizzBuzz
	case n%3 == 0:
		return fizz
	case n%5 == 0:
		return buzz
	default:
		return neither
	}
}

type game struct {
	out       io.Writer
	stats     io.Writer
	colorizer *colorizer
	echo      bool
	showStats bool

	// First error writing to out
	err error
}

func (g *game) answer(n int) {
	if g.err != nil {
		return
	}
	r := classify(n)
	text := r.String()
	if r == neither {
		text = strconv.Itoa(n)
	}
	if err := g.colorizer.write(g.out, r, text); err != nil {
		g.err = err
		return
	}
	_, g.err = io.WriteString(g.out, "\n")
}

// play reads numbers from input and answers each one as soon as it has been
// parsed.
func (g *game) play(input io.Reader) error {
	runes := source.NewRuneSource(input)
	src := source.NewCounting[rune](runes)
	c := token.NewCursor[rune](src)

	// Everything after start is retained, so only take it if we need it.
	var start token.Checkpoint
	if g.echo {
		start = c.Checkpoint()
	}

	number := func(token.Tokens[rune]) (int, bool) {
		n, ok := parse.Int(c)
		if ok {
			g.answer(n)
		}
		return n, ok
	}
	numbers := parse.SepBy[rune, int](c, number, parse.LineEnding)
	parse.LineEnding(c)
	log.Infof("parsed %d numbers", len(numbers))

	if g.err != nil {
		return g.err
	}
	if err := runes.Err(); err != nil {
		return err
	}
	if !c.IsExhausted() {
		fmt.Fprintf(g.out, "Stopping at position %d: not a number\n", c.Position())
	}

	if g.echo {
		read, err := c.Since(start)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.out, "You entered:\n%s\n", strings.TrimRight(string(read), "\r\n"))
		if err := c.Release(start); err != nil {
			return err
		}
	}

	if g.showStats {
		fmt.Fprintf(g.stats, "source pulls: %d, peak buffered tokens: %d\n", src.Pulls(), c.PeakRetained())
	}
	return nil
}
