package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	base := errors.New("disk on fire")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("game %d", 3), want: KindNotFound},
		{name: "wrapped invalid", err: fmt.Errorf("decode: %w", Invalid("bad id")), want: KindInvalid},
		{name: "conflict", err: Conflict("taken"), want: KindConflict},
		{name: "plain error", err: base, want: KindInternal},
		{name: "wrap keeps kind", err: Wrap(KindNotFound, base, "load"), want: KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := Wrap(KindNotFound, cause, "gamer %d", 4)
	if err.Error() != "gamer 4: no rows" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if !errors.Is(err, NotFound("")) {
		t.Fatal("expected kind match")
	}
	if errors.Is(err, Conflict("")) {
		t.Fatal("unexpected kind match")
	}
}
