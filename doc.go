// Package seater finds the best seat for a newcomer in a row of seats:
// the free seat furthest from everyone already sitting.
//
// 🚀 What is inside?
//
//   - seating/    — span model, OptimalSeat/Choose selector, Render/ParseRow
//   - cmd/seater/ — the Testing Center Seater program
//
// ✨ Rules in one glance:
//
//   - Edge spans score their full width, interior spans half of it.
//   - Ties go to edges; odd interior gaps lean left.
//   - A full or empty row returns len(row): "no seat".
//
// Quick ASCII example:
//
//	[X] [X] [ ] [O] [ ] [X] [ ] [X] [X] [ ]
//
// seats the newcomer in the middle of the widest gap.
//
//	go get github.com/katalvlaran/seater
package seater
