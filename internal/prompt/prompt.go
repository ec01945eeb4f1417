// Package prompt implements the line-oriented interaction layer shared by
// the calculator utilities: menu selection with a re-prompt loop and
// single-shot numeric operand reading.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmagnuss/calcsuite/internal/styles"
)

// Prompter reads user input line by line and writes prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given reader and writer.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next input line with surrounding whitespace trimmed.
// A line terminated by EOF is still returned; the error surfaces on the
// following read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Choose prints the prompt and reads lines until one matches an entry in
// keys, printing invalid after each rejected entry. Only a read failure
// ends the loop with an error.
func (p *Prompter) Choose(prompt string, keys []string, invalid string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		for _, key := range keys {
			if line == key {
				return line, nil
			}
		}
		fmt.Fprintln(p.out, styles.RenderError(invalid))
	}
}

// ReadFloat prints the prompt and converts the next line to a float64.
// Conversion failure is returned to the caller; there is no retry.
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", line, err)
	}
	return value, nil
}

// ReadInt prints the prompt and converts the next line to an int.
// Conversion failure is returned to the caller; there is no retry.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", line, err)
	}
	return value, nil
}
