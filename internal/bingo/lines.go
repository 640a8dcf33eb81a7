package bingo

import "fmt"

// LineKind names the shape of a winning line.
type LineKind string

const (
	LineRow      LineKind = "row"
	LineColumn   LineKind = "column"
	LineDiagonal LineKind = "diagonal"
)

// Line identifies one of the 12 winning lines of a card.
// Diagonal 0 runs from B1 to O5, diagonal 1 from B5 to O1.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

func (l Line) String() string {
	return fmt.Sprintf("%s %d", l.Kind, l.Index+1)
}

// cells returns the (row, column) coordinates covered by the line.
func (l Line) cells() [ColumnSize][2]int {
	var out [ColumnSize][2]int
	for i := 0; i < ColumnSize; i++ {
		switch l.Kind {
		case LineRow:
			out[i] = [2]int{l.Index, i}
		case LineColumn:
			out[i] = [2]int{i, l.Index}
		case LineDiagonal:
			if l.Index == 0 {
				out[i] = [2]int{i, i}
			} else {
				out[i] = [2]int{ColumnSize - 1 - i, i}
			}
		}
	}
	return out
}

// AllLines lists rows, then columns, then both diagonals.
func AllLines() []Line {
	lines := make([]Line, 0, 2*ColumnSize+2)
	for i := 0; i < ColumnSize; i++ {
		lines = append(lines, Line{Kind: LineRow, Index: i})
	}
	for i := 0; i < ColumnSize; i++ {
		lines = append(lines, Line{Kind: LineColumn, Index: i})
	}
	return append(lines, Line{Kind: LineDiagonal, Index: 0}, Line{Kind: LineDiagonal, Index: 1})
}

// WinningLine returns the first line of b whose numbers have all been called.
func WinningLine(b Board, called map[int]bool) (Line, bool) {
	for _, l := range AllLines() {
		complete := true
		for _, c := range l.cells() {
			if !called[b.Cells[c[0]][c[1]]] {
				complete = false
				break
			}
		}
		if complete {
			return l, true
		}
	}
	return Line{}, false
}
