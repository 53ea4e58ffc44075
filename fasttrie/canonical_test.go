package fasttrie

import (
	"errors"
	"testing"
)

func TestToIntAccepted(t *testing.T) {
	cases := []struct {
		name  string
		value any
		width int
		want  uint64
	}{
		{"int", int(42), 8, 42},
		{"uint64", uint64(200), 8, 200},
		{"byte max width", []byte{0xff}, 8, 255},
		{"short byte slice left-padded", []byte{0x01}, 16, 1},
		{"2^40 at width 64", uint64(1) << 40, 64, uint64(1) << 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToInt(c.value, c.width)
			if err != nil {
				t.Fatalf("ToInt(%v, %d): %v", c.value, c.width, err)
			}
			if got != c.want {
				t.Fatalf("ToInt(%v, %d) = %d, want %d", c.value, c.width, got, c.want)
			}
		})
	}
}

func TestToIntRejected(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		width   int
		wantErr error
	}{
		{"negative int", int(-1), 8, ErrOutOfRange},
		{"too large for width", uint64(256), 8, ErrOutOfRange},
		{"byte slice too long", []byte{1, 2, 3}, 8, ErrOverLong},
		{"unsupported type", "not an int", 8, ErrInvalidInput},
		{"float unsupported", 3.14, 8, ErrInvalidInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ToInt(c.value, c.width)
			if err == nil {
				t.Fatalf("ToInt(%v, %d) = nil error, want %v", c.value, c.width, c.wantErr)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("ToInt error is not *ArgumentError: %v", err)
			}
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ToInt error = %v, want wrapping %v", err, c.wantErr)
			}
		})
	}
}
