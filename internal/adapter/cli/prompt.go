package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter owns all reading and parsing of user input. Malformed input
// never reaches the core services; the prompter re-prompts until it has
// a well-typed value or the input stream ends.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// EOF reports whether the input stream has ended. Callers use it to
// unwind menu loops instead of spinning on empty reads.
func (p *Prompter) EOF() bool {
	return p.eof
}

func (p *Prompter) readLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// ReadLine prints prompt and returns one trimmed line of input.
func (p *Prompter) ReadLine(prompt string) string {
	promptStyle.Fprint(p.out, prompt)
	return p.readLine()
}

// ReadInt prints prompt and reads an integer, re-prompting on anything
// that does not parse. Returns 0 once the input stream ends.
func (p *Prompter) ReadInt(prompt string) int {
	promptStyle.Fprint(p.out, prompt)
	for {
		line := p.readLine()
		n, err := strconv.Atoi(line)
		if err == nil {
			return n
		}
		if p.eof {
			return 0
		}
		errorStyle.Fprint(p.out, "Invalid input. Please enter a number: ")
	}
}

// ReadDecimal prints prompt and reads a decimal number, re-prompting on
// anything that does not parse. Returns zero once the input stream ends.
func (p *Prompter) ReadDecimal(prompt string) decimal.Decimal {
	promptStyle.Fprint(p.out, prompt)
	for {
		line := p.readLine()
		d, err := decimal.NewFromString(line)
		if err == nil {
			return d
		}
		if p.eof {
			return decimal.Zero
		}
		errorStyle.Fprint(p.out, "Invalid input. Please enter a numerical value: ")
	}
}

// Pause waits for the user to press ENTER.
func (p *Prompter) Pause() {
	fmt.Fprint(p.out, "\nPress ENTER to continue...")
	p.readLine()
}
