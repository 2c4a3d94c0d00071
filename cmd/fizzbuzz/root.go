package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

type options struct {
	file      string
	colorMode string
	echo      bool
	stats     bool
	verbose   int
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "fizzbuzz",
		Short: "Play fizzbuzz with numbers as they are typed",
		Long: `Reads numbers separated by line endings and answers each one as soon as
it has been read: "Fizz" if it is divisible by 3, "Buzz" if it is divisible by
5, "FizzBuzz" if it is divisible by both, and the number itself otherwise.

Input is parsed incrementally, so answers appear line by line when typing
into a terminal.  Parsing stops at the first line that is not a number.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(opts.verbose, nil)

			var input io.Reader = cmd.InOrStdin()
			if opts.file != "" {
				f, err := os.Open(opts.file)
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				input = f
			}

			out, colorizer, err := setupOutput(cmd.OutOrStdout(), opts.colorMode)
			if err != nil {
				return err
			}

			if isTerminal(input) {
				fmt.Fprintln(out, "Let's play fizzbuzz! Enter a number per line, anything else to stop.")
			}

			g := &game{
				out:       out,
				stats:     cmd.ErrOrStderr(),
				colorizer: colorizer,
				echo:      opts.echo,
				showStats: opts.stats,
			}
			return g.play(input)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read numbers from this file instead of stdin")
	cmd.Flags().StringVar(&opts.colorMode, "color", "auto", "colorize output: auto, always, never")
	cmd.Flags().BoolVar(&opts.echo, "echo", false, "print back everything that was read at the end")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print source pulls and peak buffered tokens to stderr")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	return cmd
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// setupOutput returns the writer to print to and the colorizer to use, nil
// meaning no colors.
func setupOutput(stdout io.Writer, colorMode string) (io.Writer, *colorizer, error) {
	switch colorMode {
	case "auto":
		if !isTerminal(stdout) {
			return stdout, nil, nil
		}
	case "always":
	case "never":
		return stdout, nil, nil
	default:
		return nil, nil, errors.Errorf("invalid color mode: %q", colorMode)
	}
	if f, ok := stdout.(*os.File); ok {
		return colorable.NewColorable(f), &defaultColorizer, nil
	}
	return stdout, &defaultColorizer, nil
}
