package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Console reads answers line by line and writes prompts and messages.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// Prompt writes text as is and waits for one line of input. It returns
// io.EOF once the input is exhausted; a last line without a newline is still
// returned as an answer.
func (c *Console) Prompt(text string) (string, error) {
	c.write(text)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return trimEOL(line), nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "read console input")
	}

	return trimEOL(line), nil
}

// Say writes text followed by a newline.
func (c *Console) Say(text string) {
	c.write(text + "\n")
}

func (c *Console) write(text string) {
	if _, err := fmt.Fprint(c.out, text); err != nil {
		log.WithError(errors.Wrap(err, "write console output")).Error("console")
	}
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
