// Package seating picks the best free seat in a single row of seats for a
// newly arriving occupant, keeping them as far as possible from everyone
// already seated.
//
// What:
//
//   - A row is a []bool where true marks a taken seat.
//   - Free seats form maximal runs ("spans"). A span touching either end of
//     the row is an Edge span, one bounded by taken seats on both sides is
//     an Interior span.
//   - Each span is scored: full width for Edge spans, half width for
//     Interior spans. The highest score wins.
//   - Render draws the row with the chosen seat marked, ParseRow/FormatRow
//     convert rows to and from a compact text form.
//
// Tie-breaks:
//
//   - Equal score: an Edge span beats an Interior span.
//   - Equal score, both Edge: the leading edge keeps the seat whenever the
//     skip window after it (up to index 2w for width w) shortens the
//     trailing edge ("___X___" seats at 0). A later equal Edge span only
//     replaces an earlier one when that window does not reach it
//     ("__X__" seats at 4).
//   - A fully open row seats at index 0.
//   - Equal score, both Interior: the later span wins, unless the current
//     candidate sits at index 0.
//   - Odd Interior gaps put the seat on the left of the middle.
//
// Why:
//
//   - Testing centers, libraries, open offices: spread people out.
//
// Complexity:
//
//   - OptimalSeat, Choose: O(N·L) time (L = longest free span), O(1) memory.
//   - Spans:              O(N) time, O(S) memory (S = number of spans).
//   - Render, FormatRow:  O(N).
//
// Errors:
//
//   - ErrBadSymbol: ParseRow met a character that is neither taken nor free.
//
// Selection never fails: an empty or fully taken row yields the sentinel
// len(row) from OptimalSeat and ok=false from Choose.
package seating
