// internal/bingo/board.go
//
// Board building for a single Bingo card.
// Responsibilities:
//   - Build one column of 5 distinct numbers from its 15-wide range.
//   - Assemble the five columns (B, I, N, G, O) into a 5x5 card.
//   - Validate a card supplied from outside (full replacement updates).
//   - Encode cards with the flat numberB1..numberO5 field names.
//
// Column k draws from [ColumnBases[k], ColumnBases[k]+14]; the value drawn
// r-th lands in cell (r, k).

package bingo

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Letters are the column letters in board order.
const Letters = "BINGO"

// ColumnBases holds the lowest number of each column range.
var ColumnBases = [ColumnSize]int{1, 16, 31, 46, 61}

var (
	// ErrIncompleteColumn is returned when the draw budget runs out before a
	// column holds ColumnSize distinct numbers.
	ErrIncompleteColumn = errors.New("incomplete column")
	// ErrInvalidBoard is returned by ValidateBoard.
	ErrInvalidBoard = errors.New("invalid board")
)

// Board is a player's card. Cells is indexed [row][column].
type Board struct {
	ID      int64
	GamerID int64
	Cells   [ColumnSize][ColumnSize]int
}

// Column returns the five values of column k, top to bottom.
func (b Board) Column(k int) []int {
	out := make([]int, ColumnSize)
	for r := 0; r < ColumnSize; r++ {
		out[r] = b.Cells[r][k]
	}
	return out
}

// Numbers returns all 25 cell values, row by row.
func (b Board) Numbers() []int {
	out := make([]int, 0, ColumnSize*ColumnSize)
	for r := 0; r < ColumnSize; r++ {
		out = append(out, b.Cells[r][:]...)
	}
	return out
}

// BuildColumn draws up to attempts numbers from [base, base+14] and keeps the
// distinct ones until ColumnSize are collected. A shortfall is an error.
func BuildColumn(src Source, base, attempts int) ([]int, error) {
	column := make([]int, 0, ColumnSize)
	for i := 0; i < attempts && len(column) < ColumnSize; i++ {
		n := RandomInRange(src, base)
		if !slices.Contains(column, n) {
			column = append(column, n)
		}
	}
	if len(column) < ColumnSize {
		return column, fmt.Errorf("%w: base %d gave %d of %d numbers in %d attempts",
			ErrIncompleteColumn, base, len(column), ColumnSize, attempts)
	}
	return column, nil
}

// AssembleBoard builds every column and lays them out on a new card.
// The card is not persisted.
func AssembleBoard(src Source, gamerID int64, attempts int) (Board, error) {
	b := Board{GamerID: gamerID}
	for k, base := range ColumnBases {
		column, err := BuildColumn(src, base, attempts)
		if err != nil {
			return Board{}, err
		}
		for r, v := range column {
			b.Cells[r][k] = v
		}
	}
	return b, nil
}

// ValidateBoard checks that every column stays in its range and holds
// distinct numbers.
func ValidateBoard(b Board) error {
	for k, base := range ColumnBases {
		seen := make(map[int]bool, ColumnSize)
		for r := 0; r < ColumnSize; r++ {
			v := b.Cells[r][k]
			if v < base || v > base+ColumnWidth-1 {
				return fmt.Errorf("%w: %s out of range [%d,%d]: %d",
					ErrInvalidBoard, cellName(r, k), base, base+ColumnWidth-1, v)
			}
			if seen[v] {
				return fmt.Errorf("%w: column %c repeats %d", ErrInvalidBoard, Letters[k], v)
			}
			seen[v] = true
		}
	}
	return nil
}

// cellName is the wire field for cell (r, k), e.g. numberN3.
func cellName(r, k int) string {
	return fmt.Sprintf("number%c%d", Letters[k], r+1)
}

// MarshalJSON writes the card as idBoard, gamerId and numberB1..numberO5.
func (b Board) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 2+ColumnSize*ColumnSize)
	out["idBoard"] = b.ID
	out["gamerId"] = b.GamerID
	for r := 0; r < ColumnSize; r++ {
		for k := 0; k < ColumnSize; k++ {
			out[cellName(r, k)] = b.Cells[r][k]
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat wire shape. Unknown fields are ignored and
// missing cells stay zero.
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Board
	if v, ok := raw["idBoard"]; ok {
		if err := json.Unmarshal(v, &out.ID); err != nil {
			return fmt.Errorf("idBoard: %w", err)
		}
	}
	if v, ok := raw["gamerId"]; ok {
		if err := json.Unmarshal(v, &out.GamerID); err != nil {
			return fmt.Errorf("gamerId: %w", err)
		}
	}
	for r := 0; r < ColumnSize; r++ {
		for k := 0; k < ColumnSize; k++ {
			name := cellName(r, k)
			v, ok := raw[name]
			if !ok {
				continue
			}
			if err := json.Unmarshal(v, &out.Cells[r][k]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	*b = out
	return nil
}
