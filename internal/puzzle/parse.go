package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedLine reports an input line that is not exactly nine digit
// characters followed by a line break.
var ErrMalformedLine = errors.New("malformed puzzle line")

// ReadAll consumes the stream until EOF, decoding back-to-back nine-line
// puzzles. Each puzzle is validated with Check before it is accepted;
// any malformed line or invalid puzzle aborts the whole intake.
func ReadAll(r io.Reader) ([]Puzzle, error) {
	br := bufio.NewReader(r)
	var puzzles []Puzzle
	for {
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return puzzles, nil
			}
			return nil, fmt.Errorf("read input: %w", err)
		}
		p, err := readOne(br)
		if err != nil {
			return nil, err
		}
		if err := Check(&p); err != nil {
			return nil, fmt.Errorf("puzzle %d: %w", len(puzzles)+1, err)
		}
		puzzles = append(puzzles, p)
	}
}

func readOne(br *bufio.Reader) (Puzzle, error) {
	var p Puzzle
	for row := 0; row < AxisSize; row++ {
		line, err := br.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return p, fmt.Errorf("%w: unexpected end of stream", ErrMalformedLine)
			}
			return p, fmt.Errorf("read input: %w", err)
		}
		if len(line) != AxisSize+1 {
			return p, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		for col := 0; col < AxisSize; col++ {
			c := line[col]
			if c < '0' || c > '9' {
				return p, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			p[RowIndex(row, col)] = int(c - '0')
		}
	}
	return p, nil
}
