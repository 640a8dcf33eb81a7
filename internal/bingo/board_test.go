package bingo

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

// scriptSource replays vals in order, wrapping around.
type scriptSource struct {
	vals  []int
	calls int
}

func (s *scriptSource) Intn(n int) int {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v % n
}

// ladderBoard returns the card whose column k reads base_k .. base_k+4.
func ladderBoard() Board {
	var b Board
	for k, base := range ColumnBases {
		for r := 0; r < ColumnSize; r++ {
			b.Cells[r][k] = base + r
		}
	}
	return b
}

func TestBuildColumnRangeAndDistinct(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		src := rand.New(rand.NewSource(seed))
		for _, base := range ColumnBases {
			column, err := BuildColumn(src, base, 1000)
			if err != nil {
				t.Fatalf("seed %d base %d: %v", seed, base, err)
			}
			if len(column) != ColumnSize {
				t.Fatalf("seed %d base %d: got %d values", seed, base, len(column))
			}
			seen := map[int]bool{}
			for _, v := range column {
				if v < base || v > base+14 {
					t.Fatalf("seed %d base %d: %d out of range", seed, base, v)
				}
				if seen[v] {
					t.Fatalf("seed %d base %d: %d repeated", seed, base, v)
				}
				seen[v] = true
			}
		}
	}
}

func TestBuildColumnOColumn(t *testing.T) {
	column, err := BuildColumn(rand.New(rand.NewSource(7)), 61, 1000)
	if err != nil {
		t.Fatalf("build column: %v", err)
	}
	for _, v := range column {
		if v < 61 || v > 75 {
			t.Fatalf("expected value in [61,75], got %d", v)
		}
	}
}

func TestBuildColumnIncomplete(t *testing.T) {
	src := &scriptSource{vals: []int{0}}
	column, err := BuildColumn(src, 16, DefaultColumnAttempts)
	if !errors.Is(err, ErrIncompleteColumn) {
		t.Fatalf("expected ErrIncompleteColumn, got %v", err)
	}
	if len(column) != 1 || column[0] != 16 {
		t.Fatalf("expected partial column [16], got %v", column)
	}
	if src.calls != DefaultColumnAttempts {
		t.Fatalf("expected %d draws, got %d", DefaultColumnAttempts, src.calls)
	}
}

func TestBuildColumnRejectsDuplicates(t *testing.T) {
	src := &scriptSource{vals: []int{3, 3, 0, 3, 1, 2, 4, 9, 9}}
	column, err := BuildColumn(src, 1, DefaultColumnAttempts)
	if err != nil {
		t.Fatalf("build column: %v", err)
	}
	want := []int{4, 1, 2, 3, 5}
	for i := range want {
		if column[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, column)
		}
	}
	if src.calls != 7 {
		t.Fatalf("expected sampling to stop after 7 draws, got %d", src.calls)
	}
}

func TestAssembleBoardLayout(t *testing.T) {
	src := &scriptSource{vals: []int{0, 1, 2, 3, 4}}
	b, err := AssembleBoard(src, 42, DefaultColumnAttempts)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if b.GamerID != 42 {
		t.Fatalf("expected gamer id 42, got %d", b.GamerID)
	}
	if b.Cells != ladderBoard().Cells {
		t.Fatalf("unexpected layout: %v", b.Cells)
	}
	if got := b.Column(3); got[0] != 46 || got[4] != 50 {
		t.Fatalf("unexpected G column: %v", got)
	}
}

func TestAssembleBoardRespectsColumns(t *testing.T) {
	b, err := AssembleBoard(rand.New(rand.NewSource(99)), 1, 1000)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if n := len(b.Numbers()); n != 25 {
		t.Fatalf("expected 25 cells, got %d", n)
	}
	if err := ValidateBoard(b); err != nil {
		t.Fatalf("expected valid board, got %v", err)
	}
}

func TestAssembleBoardPropagatesShortfall(t *testing.T) {
	_, err := AssembleBoard(&scriptSource{vals: []int{5}}, 1, DefaultColumnAttempts)
	if !errors.Is(err, ErrIncompleteColumn) {
		t.Fatalf("expected ErrIncompleteColumn, got %v", err)
	}
}

func TestValidateBoard(t *testing.T) {
	outOfRange := ladderBoard()
	outOfRange.Cells[2][1] = 31

	repeated := ladderBoard()
	repeated.Cells[4][4] = repeated.Cells[0][4]

	zero := Board{}

	tests := []struct {
		name    string
		board   Board
		wantErr bool
	}{
		{name: "ladder", board: ladderBoard()},
		{name: "out of range", board: outOfRange, wantErr: true},
		{name: "repeated in column", board: repeated, wantErr: true},
		{name: "empty", board: zero, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoard(tt.board)
			if tt.wantErr && !errors.Is(err, ErrInvalidBoard) {
				t.Fatalf("expected ErrInvalidBoard, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBoardJSONRoundTrip(t *testing.T) {
	b, err := AssembleBoard(rand.New(rand.NewSource(3)), 12, 1000)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	b.ID = 5

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]int
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if fields["numberN3"] != b.Cells[2][2] || fields["numberO1"] != b.Cells[0][4] {
		t.Fatalf("cell names do not match positions: %s", data)
	}
	if fields["idBoard"] != 5 || fields["gamerId"] != 12 {
		t.Fatalf("unexpected ids: %s", data)
	}

	var back Board
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != b {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, b)
	}
}

func TestBoardUnmarshalRejectsBadCell(t *testing.T) {
	var b Board
	if err := json.Unmarshal([]byte(`{"numberB1":"x"}`), &b); err == nil {
		t.Fatal("expected error for non-numeric cell")
	}
}
