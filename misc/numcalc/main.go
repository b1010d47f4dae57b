package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shabbyrobe/go-bignum/internal/calc"
	"github.com/spf13/cobra"
)

// numcalc is a small calculator for poking at num.Int from the command line:
//
//	numcalc eval 123456789012345678901234567890 / 987654321
//	numcalc eval ~ 5
//	echo '-5 & 3' | numcalc repl
//
// Negative operands on the command line need a '--' first so they aren't
// taken for flags. Pass --dump to see the sign and base 2^32 digits of each
// result.

var (
	logLevel string
	dump     bool
)

var rootCmd = &cobra.Command{
	Use:           "numcalc",
	Short:         "Arbitrary-precision integer calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval <a> <op> <b> | <op> <a>",
	Short: "Evaluate a single expression",
	Example: `  numcalc eval 2 '*' 3
  numcalc eval -- -5 '&' 3`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEvaluator()
		if err != nil {
			return err
		}
		res, err := e.Eval(args)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate one expression per line from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEvaluator()
		if err != nil {
			return err
		}
		return repl(e, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "dump the raw representation of each result")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newEvaluator() (*calc.Evaluator, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
	return calc.New(log), nil
}

// maxLine caps a single REPL line; operands can run to millions of digits.
const maxLine = 64 << 20

func repl(e *calc.Evaluator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := e.EvalLine(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		printResult(out, res)
	}
	return scanner.Err()
}

func printResult(out io.Writer, res calc.Result) {
	fmt.Fprintln(out, res)
	if dump && !res.IsBool {
		neg, digits := res.Int.Raw()
		fmt.Fprint(out, spew.Sdump(struct {
			Neg    bool
			Digits []uint32
		}{neg, digits}))
	}
}
