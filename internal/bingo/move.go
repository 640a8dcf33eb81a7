package bingo

import (
	"errors"
	"fmt"
)

// ErrNumbersExhausted is returned when every number has been called.
var ErrNumbersExhausted = errors.New("all numbers called")

// ValidNumber reports whether n can be called.
func ValidNumber(n int) bool { return n >= 1 && n <= MaxNumber }

// Letter returns the column letter for n: 1-15 B, 16-30 I, 31-45 N,
// 46-60 G, 61-75 O. Numbers outside [1,75] have no letter.
func Letter(n int) string {
	if !ValidNumber(n) {
		return ""
	}
	return string(Letters[(n-1)/ColumnWidth])
}

// DrawNumber returns a number uniformly distributed in [1,75].
func DrawNumber(src Source) int {
	return src.Intn(MaxNumber) + 1
}

// DrawUnique picks uniformly among the numbers not in called.
func DrawUnique(src Source, called map[int]bool) (int, error) {
	remaining := make([]int, 0, MaxNumber)
	for n := 1; n <= MaxNumber; n++ {
		if !called[n] {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == 0 {
		return 0, ErrNumbersExhausted
	}
	return remaining[src.Intn(len(remaining))], nil
}

// DrawMove draws the next call for gameID.
func DrawMove(src Source, gameID int64, called map[int]bool, unique bool) (Move, error) {
	if !unique {
		n := DrawNumber(src)
		return Move{GameID: gameID, Number: n, Letter: Letter(n)}, nil
	}
	n, err := DrawUnique(src, called)
	if err != nil {
		return Move{}, fmt.Errorf("game %d: %w", gameID, err)
	}
	return Move{GameID: gameID, Number: n, Letter: Letter(n)}, nil
}
