package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrCancelled is returned when the user enters q or input ends.
	ErrCancelled = errors.New("selection cancelled")
	// ErrInvalidSelection is the parent of all rejected inputs.
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNotANumber       = fmt.Errorf("%w: please enter a number", ErrInvalidSelection)
	ErrOutOfRange       = fmt.Errorf("%w: out of range", ErrInvalidSelection)
)

// Choose prints a prompt to out, reads one line from in and returns the
// selected 0-based index among n candidates.
func Choose(in io.Reader, out io.Writer, n int) (int, error) {
	fmt.Fprintln(out, "\nEnter the number of the screenshot to view details (or 'q' to quit):")
	fmt.Fprint(out, "> ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	choice := strings.TrimSpace(line)
	if errors.Is(err, io.EOF) && choice == "" {
		return 0, ErrCancelled
	}
	return Parse(choice, n)
}

// Parse converts a 1-based answer into a 0-based index.
func Parse(choice string, n int) (int, error) {
	if strings.EqualFold(choice, "q") {
		return 0, ErrCancelled
	}
	num, err := strconv.Atoi(choice)
	if err != nil {
		return 0, ErrNotANumber
	}
	if num < 1 || num > n {
		return 0, fmt.Errorf("%w: %d not in 1-%d", ErrOutOfRange, num, n)
	}
	return num - 1, nil
}
