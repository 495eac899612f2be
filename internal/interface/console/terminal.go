package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Terminal reads line-oriented answers and writes menu output.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next input line without its line
// terminator. It returns io.EOF once input is exhausted.
func (t *Terminal) Prompt(label string) (string, error) {
	_, _ = fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Println(a ...any) {
	_, _ = fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(t.out, format, a...)
}
