package seating

// OptimalSeat returns the index of the seat a newcomer should take in row,
// or len(row) when no seat is free (including the empty row).
//
// Algorithm Outline:
//  1. best = 0, bestScore = 0.
//  2. Scan left to right. A taken seat at index best pushes best to the
//     next index, so the fallback never names a taken seat.
//  3. Once bestScore > 0, a free seat at or before best+2*bestScore lies
//     in the window of the current candidate and is skipped. The window
//     is anchored at the chosen seat, so it may cover the first seats of
//     the next span; that span is then measured from the window's end.
//  4. Any other free seat opens a span; measure it to its last free seat
//     and score it.
//     Edge:     replace the candidate when score >= bestScore.
//     Interior: replace when score >= bestScore and either best != 0 or
//     score > bestScore, so an equal Interior span never unseats a
//     candidate at the very start of the row.
//
// Complexity: O(N·L) time (L = longest free span), O(1) extra memory.
// The row is only read, so concurrent calls on a shared row are safe.
func OptimalSeat(row []bool) int {
	best, bestScore := 0, 0.0

	for i := 0; i < len(row); i++ {
		if row[i] {
			if i == best {
				best++
			}
			continue
		}
		if bestScore != 0 && i <= best+int(2*bestScore) {
			continue
		}

		span := spanAt(row, i)
		score := span.Score()
		switch span.Kind {
		case Edge:
			if score >= bestScore {
				best, bestScore = span.Seat(), score
			}
		case Interior:
			if score >= bestScore && (best != 0 || score > bestScore) {
				best, bestScore = span.Seat(), score
			}
		}
	}

	return best
}

// Choose is the comma-ok form of OptimalSeat. It reports ok=false, with
// seat=-1, when the row has no free seat.
func Choose(row []bool) (seat int, ok bool) {
	seat = OptimalSeat(row)
	if seat >= len(row) {
		return -1, false
	}

	return seat, true
}

// Spans lists every maximal run of free seats in row, left to right.
// Complexity: O(N).
func Spans(row []bool) []Span {
	var spans []Span
	for i := 0; i < len(row); i++ {
		if row[i] {
			continue
		}
		span := spanAt(row, i)
		spans = append(spans, span)
		i = span.End
	}

	return spans
}

// spanAt measures the free run from index i, which must be free, to the
// next taken seat or the end of the row.
func spanAt(row []bool, i int) Span {
	j := i
	for j+1 < len(row) && !row[j+1] {
		j++
	}
	kind := Interior
	if i == 0 || j == len(row)-1 {
		kind = Edge
	}

	return Span{Start: i, End: j, Kind: kind}
}
