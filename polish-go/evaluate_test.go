package polish_go

import (
	"errors"
	"testing"
)

func TestCalculateInverse(t *testing.T) {
	tests := []struct {
		in   []string
		want int
		err  error
	}{
		{[]string{"3", "4", "+"}, 7, nil},
		{[]string{"1", "2", "3", "*", "+"}, 7, nil},
		{[]string{"1", "2", "-"}, -1, nil},
		{[]string{"5", "0", "/"}, 0, ErrDivisionByZero},
		{[]string{"+"}, 0, ErrNotEnoughOperands},
		{[]string{"3", "+"}, 0, ErrNotEnoughOperands},
		{[]string{}, 0, ErrNotEnoughOperands},
		{[]string{"3", "4"}, 0, ErrNotEnoughOperators},
		{[]string{"99999999999999999999", "1", "+"}, 0, ErrNumberOutOfRange},
	}
	for _, tt := range tests {
		res := CalculateInverse(TokensOf(tt.in...), EvalOptions{}, nil)
		if tt.err != nil {
			if res.IsSuccess() || !errors.Is(res.Err(), tt.err) || len(res.Errors()) != 1 {
				t.Errorf("CalculateInverse(%q) = %v, %v; want %v", tt.in, res.Value(), res.Err(), tt.err)
			}
			continue
		}
		if !res.IsSuccess() || res.Value() != tt.want {
			t.Errorf("CalculateInverse(%q) = %v, %v; want %d", tt.in, res.Value(), res.Err(), tt.want)
		}
	}
}

func TestCalculateDirect(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+ * 3 2 1", 7},
		{"- 2 1", -1},
		{"/ 2 / 2 8", 2},
		{"* 3 + 2 1", 9},
	}
	for _, tt := range tests {
		res := CalculateDirect(Tokenize(tt.in, nil), EvalOptions{}, nil)
		if !res.IsSuccess() || res.Value() != tt.want {
			t.Errorf("CalculateDirect(%q) = %v, %v; want %d", tt.in, res.Value(), res.Err(), tt.want)
		}
	}
}

func TestCalculateUnexpectedToken(t *testing.T) {
	res := CalculateInverse(Tokenize("3 x +", nil), EvalOptions{}, nil)
	var unexpected *UnexpectedTokenError
	if !errors.As(res.Err(), &unexpected) || unexpected.Token != "x" {
		t.Fatalf("err = %v", res.Err())
	}
	if got := res.Messages()[0]; got != "Received unexpected token: x" {
		t.Fatalf("message = %q", got)
	}

	res = CalculateInverse(Tokenize("3 x 4 +", nil), EvalOptions{IgnoreUnknown: true}, nil)
	if !res.IsSuccess() || res.Value() != 7 {
		t.Fatalf("ignoring unknown tokens: %v, %v", res.Value(), res.Err())
	}

	res = CalculateInverse(Tokenize("1 é +", nil), EvalOptions{}, nil)
	if res.IsSuccess() || res.Messages()[0] != "Received unexpected token: é" {
		t.Fatalf("non-ASCII token: %q", res.Messages())
	}

	res = CalculateDirect(Tokenize("+ 1 99999999999999999999", nil), EvalOptions{IgnoreUnknown: true}, nil)
	if res.IsSuccess() || res.Messages()[0] != "Number out of range: 99999999999999999999" {
		t.Fatalf("out of range literal: %q", res.Messages())
	}
}

func TestConvertThenCalculate(t *testing.T) {
	exprs := map[string]int{
		"1+2*3":       7,
		"(1+2)*3":     9,
		"10-4-3":      3,
		"100/10/5":    2,
		"2*(3+4)-5/2": 12,
		"42":          42,
	}
	for expr, want := range exprs {
		for _, notation := range []Notation{DIRECT, INVERSE} {
			conv := ConvertExpression(notation, expr, nil)
			if !conv.IsSuccess() {
				t.Fatalf("convert %q: %v", expr, conv.Err())
			}
			res := Calculate(notation, conv.Value(), EvalOptions{}, nil)
			if !res.IsSuccess() || res.Value() != want {
				t.Errorf("%s of %q (%s) = %v, %v; want %d", notation, expr, conv.Value().Join(), res.Value(), res.Err(), want)
			}
		}
	}
}

func TestCalculateExpression(t *testing.T) {
	res := CalculateExpression(INVERSE, "x x * y -", MapPrompter{"x": "5", "y": "2"}, EvalOptions{}, nil)
	if !res.IsSuccess() || res.Value() != 23 {
		t.Fatalf("result = %v, %v", res.Value(), res.Err())
	}

	res = CalculateExpression(DIRECT, "+ x 1", MapPrompter{}, EvalOptions{}, nil)
	if res.IsSuccess() || !errors.Is(res.Err(), ErrUnboundVariable) {
		t.Fatalf("unbound variable err = %v", res.Err())
	}

	res = CalculateExpression(INVERSE, "3 x 4 + y *", MapPrompter{"y": "2"}, EvalOptions{IgnoreUnknown: true}, nil)
	if !res.IsSuccess() || res.Value() != 14 {
		t.Fatalf("check with unbound variable = %v, %v", res.Value(), res.Err())
	}

	res = CalculateExpression(INVERSE, "3 x +", MapPrompter{"x": "seven"}, EvalOptions{IgnoreUnknown: true}, nil)
	if res.IsSuccess() || !errors.Is(res.Err(), ErrInvalidVariableValue) {
		t.Fatalf("check with invalid value err = %v", res.Err())
	}
}
