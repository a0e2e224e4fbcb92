package polish_go

import (
	"errors"
	"testing"
)

func TestConvertStandardToInverse(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1+2*3", "1 2 3 * +"},
		{"(1+2)*3", "1 2 + 3 *"},
		{"1-2-3", "1 2 - 3 -"},
		{"8/2/2", "8 2 / 2 /"},
		{"a * (b + c)", "a b c + *"},
		{"((7))", "7"},
		{"", ""},
		{"99999999999999999999+1", "99999999999999999999 1 +"},
	}
	for _, tt := range tests {
		res := ConvertStandardToInverse(Tokenize(tt.in, nil), nil)
		if !res.IsSuccess() {
			t.Errorf("convert %q failed: %v", tt.in, res.Err())
			continue
		}
		if got := res.Value().Join(); got != tt.want {
			t.Errorf("convert %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertStandardToDirect(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1+2*3", "+ * 3 2 1"},
		{"(1+2)*3", "* 3 + 2 1"},
		{"1-2", "- 2 1"},
		{"99999999999999999999+1", "+ 1 99999999999999999999"},
	}
	for _, tt := range tests {
		res := ConvertStandardToDirect(Tokenize(tt.in, nil), nil)
		if !res.IsSuccess() {
			t.Errorf("convert %q failed: %v", tt.in, res.Err())
			continue
		}
		if got := res.Value().Join(); got != tt.want {
			t.Errorf("convert %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertUnmatchedBrackets(t *testing.T) {
	for _, in := range []string{"(1+2", "1+2)", ")", "((1)"} {
		for _, to := range []Notation{DIRECT, INVERSE} {
			res := ConvertExpression(to, in, nil)
			if res.IsSuccess() {
				t.Errorf("convert %q to %s succeeded: %q", in, to, res.Value().Join())
				continue
			}
			if !errors.Is(res.Err(), ErrOpeningBracketNotFound) {
				t.Errorf("convert %q to %s err = %v", in, to, res.Err())
			}
		}
	}
}

func TestParseNotation(t *testing.T) {
	for name, want := range map[string]Notation{"direct": DIRECT, "prefix": DIRECT, "inverse": INVERSE, "postfix": INVERSE} {
		if got, ok := ParseNotation(name); !ok || got != want {
			t.Errorf("ParseNotation(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseNotation("infix"); ok {
		t.Error("ParseNotation(infix) succeeded")
	}
}
