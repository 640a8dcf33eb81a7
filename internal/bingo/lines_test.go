package bingo

import "testing"

func calledSet(nums ...int) map[int]bool {
	out := make(map[int]bool, len(nums))
	for _, n := range nums {
		out[n] = true
	}
	return out
}

func TestWinningLine(t *testing.T) {
	b := ladderBoard()
	tests := []struct {
		name   string
		called map[int]bool
		want   Line
		won    bool
	}{
		{
			name:   "third row",
			called: calledSet(3, 18, 33, 48, 63),
			want:   Line{Kind: LineRow, Index: 2},
			won:    true,
		},
		{
			name:   "N column",
			called: calledSet(31, 32, 33, 34, 35, 1),
			want:   Line{Kind: LineColumn, Index: 2},
			won:    true,
		},
		{
			name:   "B1 to O5 diagonal",
			called: calledSet(1, 17, 33, 49, 65),
			want:   Line{Kind: LineDiagonal, Index: 0},
			won:    true,
		},
		{
			name:   "B5 to O1 diagonal",
			called: calledSet(5, 19, 33, 47, 61),
			want:   Line{Kind: LineDiagonal, Index: 1},
			won:    true,
		},
		{
			name:   "four of a row",
			called: calledSet(3, 18, 33, 48),
		},
		{
			name:   "nothing called",
			called: map[int]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, won := WinningLine(b, tt.called)
			if won != tt.won {
				t.Fatalf("won = %v, want %v", won, tt.won)
			}
			if won && got != tt.want {
				t.Fatalf("line = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllLines(t *testing.T) {
	lines := AllLines()
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	if lines[0].String() != "row 1" || lines[11].String() != "diagonal 2" {
		t.Fatalf("unexpected line order: %v", lines)
	}
}
