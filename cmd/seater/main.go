// Package main - Testing Center Seater.
//
// Scenario:
//
//	A student walks into a testing center with a single row of desks and
//	should sit as far as possible from everyone already there. The program
//	picks one of the rows below, finds the optimal desk and draws the row:
//
//	[X] [X] [ ] [O] [ ] [X] [ ] [X] [X] [ ]  -- X = seat taken, O = Optimal desk
//
// Expected Output (case 0):
//
//	Welcome to the Testing Center Seater!!
//	The student shall sit in seat #4
//	[X] [X] [ ] [O] [ ] [X] [ ] [X] [X] [ ]  -- X = seat taken, O = Optimal desk
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/seater/seating"
)

// desiredCase selects the row from testCases that main seats.
const desiredCase = 0

// testCases lists the rows main can seat, X for taken and _ for free.
var testCases = []string{
	"XX___X_XX_", // 0: widest interior gap, seat index 3
	"_",          // 1: a single free desk
	"X",          // 2: no free desk, wait
	"____",       // 3: open room, leftmost desk
	"X____",      // 4: taken start, seat at the far end
	"X___X",      // 5: taken ends, seat in the middle
	"X__X",       // 6: even interior gap leans left
	"__X___X",    // 7: start edge ties the interior gap and keeps it
	"_X_",        // 8: middle taken, seat at the end
	"X_X_X_X_",   // 9: staggered with the end open, seat at the end
	"X_X_X_X",    // 10: staggered, last equal interior desk
}

func main() {
	row, err := seating.ParseRow(testCases[desiredCase])
	if err != nil {
		log.Fatalf("case %d: %v", desiredCase, err)
	}
	if err := run(os.Stdout, row); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// run greets the student and prints where they should sit in row.
func run(w io.Writer, row []bool) error {
	seat := seating.OptimalSeat(row)
	_, err := fmt.Fprintf(w, "Welcome to the Testing Center Seater!!\n%s\n", seating.Render(row, seat))

	return err
}
