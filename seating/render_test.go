package seating_test

import (
	"testing"

	"github.com/katalvlaran/seater/seating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRender_Seat checks the announcement and the drawn row.
func TestRender_Seat(t *testing.T) {
	row := []bool{T, T, F, F, F, T, F, T, T, F}
	got := seating.Render(row, 3)
	want := "The student shall sit in seat #4\n" +
		"[X] [X] [ ] [O] [ ] [X] [ ] [X] [X] [ ]  -- X = seat taken, O = Optimal desk"
	assert.Equal(t, want, got)
}

// TestRender_SingleSeat draws a one-seat row.
func TestRender_SingleSeat(t *testing.T) {
	got := seating.Render([]bool{F}, 0)
	assert.Equal(t, "The student shall sit in seat #1\n[O]  -- X = seat taken, O = Optimal desk", got)
}

// TestRender_NoSeat covers the sentinel, the empty row and negative seats.
func TestRender_NoSeat(t *testing.T) {
	assert.Equal(t, seating.NoSeatMessage, seating.Render([]bool{T}, 1))
	assert.Equal(t, seating.NoSeatMessage, seating.Render(nil, 0))
	assert.Equal(t, seating.NoSeatMessage, seating.Render([]bool{F, F}, -1))
	assert.Equal(t, "Apologies, there are no available seats, please wait for one to open up.", seating.NoSeatMessage)
}

// TestFormatParseRow round-trips the compact form and checks accepted symbols.
func TestFormatParseRow(t *testing.T) {
	row := []bool{T, F, F, T, F}
	assert.Equal(t, "X__X_", seating.FormatRow(row))

	parsed, err := seating.ParseRow("X__X_")
	require.NoError(t, err)
	assert.Equal(t, row, parsed)

	parsed, err = seating.ParseRow(" x.-1 0\t")
	require.NoError(t, err)
	assert.Equal(t, []bool{T, F, F, T, F}, parsed)

	parsed, err = seating.ParseRow("")
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

// TestParseRow_BadSymbol rejects unknown characters with ErrBadSymbol.
func TestParseRow_BadSymbol(t *testing.T) {
	_, err := seating.ParseRow("X_?X")
	require.ErrorIs(t, err, seating.ErrBadSymbol)
	assert.Contains(t, err.Error(), "offset 2")
}
