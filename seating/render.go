package seating

import (
	"fmt"
	"strconv"
	"strings"
)

// Text produced by Render.
const (
	NoSeatMessage = "Apologies, there are no available seats, please wait for one to open up."
	Legend        = " -- X = seat taken, O = Optimal desk"
)

// Render describes seat to the newcomer and draws the row.
// Seats are announced 1-based. The chosen seat is drawn as [O], taken seats
// as [X] and free seats as [ ], each followed by a space, then Legend.
// A seat outside the row yields NoSeatMessage.
// Complexity: O(N).
func Render(row []bool, seat int) string {
	if seat < 0 || seat >= len(row) {
		return NoSeatMessage
	}

	var sb strings.Builder
	sb.Grow(len("The student shall sit in seat #\n") + 4*len(row) + len(Legend) + 8)
	sb.WriteString("The student shall sit in seat #")
	sb.WriteString(strconv.Itoa(seat + 1))
	sb.WriteByte('\n')
	for i, taken := range row {
		c := byte(' ')
		switch {
		case i == seat:
			c = 'O'
		case taken:
			c = 'X'
		}
		sb.WriteByte('[')
		sb.WriteByte(c)
		sb.WriteString("] ")
	}
	sb.WriteString(Legend)

	return sb.String()
}

// FormatRow writes row compactly: X for a taken seat, _ for a free one.
func FormatRow(row []bool) string {
	b := make([]byte, len(row))
	for i, taken := range row {
		b[i] = '_'
		if taken {
			b[i] = 'X'
		}
	}

	return string(b)
}

// ParseRow reads a row written with X, x or 1 for taken seats and
// _, ., - or 0 for free ones. ASCII whitespace is ignored, so
// "XX___ X" and "XX___X" are the same row.
// Returns an error wrapping ErrBadSymbol on any other character.
func ParseRow(s string) ([]bool, error) {
	row := make([]bool, 0, len(s))
	for pos, r := range s {
		switch r {
		case 'X', 'x', '1':
			row = append(row, true)
		case '_', '.', '-', '0':
			row = append(row, false)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrBadSymbol, r, pos)
		}
	}

	return row, nil
}
