package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.creack.net/gocalc/shell"
)

// errReported is returned when the error has already been printed.
var errReported = errors.New("reported")

var (
	flDebug   bool
	flNoColor bool
	flDigits  int
)

var rootCmd = &cobra.Command{
	Use:   "gocalc [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `gocalc evaluates arithmetic expressions made of decimal (1.5) and
hexadecimal (0xFF) numbers, + - * /, parentheses and negation.

Without arguments, expressions are read from stdin, one per line.
With arguments, they are joined and evaluated once. Use -- before an
expression starting with a minus sign: gocalc -- -2 * 3`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&flDebug, "debug", false, "Dump the parsed expression tree to stderr")
	rootCmd.Flags().BoolVar(&flNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().IntVar(&flDigits, "digits", shell.DefaultDigits, fmt.Sprintf("Maximum fractional digits in results (0-%d)", shell.MaxDigits))
}

func run(cmd *cobra.Command, args []string) error {
	if flDigits < 0 || flDigits > shell.MaxDigits {
		return fmt.Errorf("invalid --digits %d, must be between 0 and %d", flDigits, shell.MaxDigits)
	}
	opts := shell.Options{
		Color:  !flNoColor && colorable(cmd.ErrOrStderr()),
		Debug:  flDebug,
		Digits: flDigits,
	}

	if len(args) > 0 {
		if err := shell.Eval(strings.Join(args, " "), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts); err != nil {
			return errReported
		}
		return nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok {
		opts.Interactive = term.IsTerminal(int(f.Fd()))
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return shell.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
}

// colorable reports whether w, where errors are printed, is a terminal
// accepting colors. NO_COLOR and TERM=dumb disable colors.
func colorable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			log.Printf("Fail: %s.", err)
		}
		os.Exit(1)
	}
}
