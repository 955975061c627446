// Package shell implements the interactive menu loop.
//
// The shell has a single state: waiting for a menu choice. Every iteration
// reloads the store through the tracker, prints the menu, reads one choice
// and runs the matching operation. There is no exit command; the loop ends
// when input is exhausted or the context is cancelled.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/shoestock/internal/tracker"
)

// Menu is printed before every choice.
const Menu = "\nPlease enter one of the following options:\n" +
	"a = Add a shoe\n" +
	"v = View all\n" +
	"r = Restock the product with the lowest quantity\n" +
	"s = Search products by code\n" +
	"c = Calculate the total value of each stock item\n" +
	"f = Find the product with the highest quantity\n"

// Shell is an interactive session over one tracker.
type Shell struct {
	tracker *tracker.Tracker
	input   *lineReader
	out     io.Writer
	log     *zap.Logger
}

// New creates a shell reading choices from in and writing to out.
func New(t *tracker.Tracker, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		tracker: t,
		input:   newLineReader(in),
		out:     out,
		log:     log,
	}
}

// Run drives the menu loop until input ends or ctx is cancelled. Both are
// normal terminations and return nil.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := s.iterate(ctx); err != nil {
			if isTermination(err) {
				s.log.Debug("shell stopped", zap.Error(err))
				return nil
			}
			return err
		}
	}
}

func isTermination(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// iterate runs one reload, prompt and dispatch cycle.
func (s *Shell) iterate(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return err
	}

	choice, err := s.prompt(ctx, Menu)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "a":
		return s.capture(ctx)
	case "v":
		return s.viewAll()
	case "r":
		return s.restock(ctx)
	case "s":
		return s.search(ctx)
	case "c":
		return s.valuePerItem()
	case "f":
		return s.highest()
	default:
		s.println("Incorrect input, try again.")
		return nil
	}
}

// reload refreshes the store and prints a diagnostic per skipped line.
// A file that cannot be read is reported and the menu is still offered.
func (s *Shell) reload(ctx context.Context) error {
	result, err := s.tracker.Reload(ctx)
	if err != nil {
		if isTermination(err) {
			return err
		}
		s.log.Error("failed to load inventory", zap.Error(err))
		s.printf("Error loading inventory: %v\n", err)
		return nil
	}
	for _, skipped := range result.Skipped {
		s.printf("Error reading line: %s. %v\n", skipped.Raw, skipped.Err)
	}
	return nil
}

// prompt writes text and returns the next input line.
func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.input.next(ctx)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
