package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// lineReader delivers input lines over a channel so a prompt can give up
// when its context is cancelled instead of blocking on a read.
type lineReader struct {
	lines chan string
	err   error // io.EOF or the read error; set before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go lr.run(r)
	return lr
}

func (lr *lineReader) run(r io.Reader) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lr.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			lr.err = err
			close(lr.lines)
			return
		}
	}
}

// next returns the next line, io.EOF when input is exhausted, or the
// context error.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", lr.err
		}
		return line, nil
	}
}
