package polish_go

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

type countingPrompter struct {
	answers map[string][]string
	asked   map[string]int
}

func (this *countingPrompter) Prompt(name string) (string, error) {
	n := this.asked[name]
	this.asked[name] = n + 1
	answers, ok := this.answers[name]
	if !ok || n >= len(answers) {
		return "", io.EOF
	}
	return answers[n], nil
}

func newCountingPrompter(answers map[string][]string) *countingPrompter {
	return &countingPrompter{answers: answers, asked: map[string]int{}}
}

func TestResolveEachVariableOnce(t *testing.T) {
	p := newCountingPrompter(map[string][]string{"x": {"5"}, "y": {"2"}})
	tokens := Tokenize("x*y+x", nil)
	got, err := NewResolver(p, nil).Resolve(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"5", "*", "2", "+", "5"}; !reflect.DeepEqual(got.Texts(), want) {
		t.Fatalf("Resolve() = %q, want %q", got.Texts(), want)
	}
	if want := map[string]int{"x": 1, "y": 1}; !reflect.DeepEqual(p.asked, want) {
		t.Fatalf("prompts = %v, want %v", p.asked, want)
	}
	for _, token := range got {
		if token.Text == "5" && token.Kind != NUMBER {
			t.Fatalf("substituted token has kind %v", token.Kind)
		}
	}
	if tokens[0].Text != "x" {
		t.Fatal("input tokens were modified")
	}
}

func TestResolveRetriesInvalidValue(t *testing.T) {
	p := newCountingPrompter(map[string][]string{"a": {"five", " 4 "}})
	got, err := NewResolver(p, nil).Resolve(Tokenize("a 1 -", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got.Join() != "4 1 -" {
		t.Fatalf("Resolve() = %q", got.Join())
	}
	if p.asked["a"] != 2 {
		t.Fatalf("asked %d times", p.asked["a"])
	}
}

func TestResolveGivesUp(t *testing.T) {
	p := newCountingPrompter(map[string][]string{"a": {"x", "y", "z", "1"}})
	_, err := NewResolver(p, nil).Resolve(Tokenize("a", nil))
	if !errors.Is(err, ErrInvalidVariableValue) {
		t.Fatalf("err = %v", err)
	}
	if p.asked["a"] != kMaxAttempts {
		t.Fatalf("asked %d times", p.asked["a"])
	}

	_, err = NewResolver(newCountingPrompter(nil), nil).Resolve(Tokenize("b", nil))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("prompter error not propagated: %v", err)
	}
}

func TestMapPrompter(t *testing.T) {
	p := MapPrompter{"x": "3"}
	if v, err := p.Prompt("x"); err != nil || v != "3" {
		t.Fatalf("Prompt(x) = %q, %v", v, err)
	}
	if _, err := p.Prompt("y"); !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("Prompt(y) err = %v", err)
	}
}

func TestVariables(t *testing.T) {
	got := Variables(Tokenize("b+a*b-12/c", nil))
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Variables() = %q", got)
	}
}

func TestResolveKeepUnbound(t *testing.T) {
	resolver := NewResolver(MapPrompter{"b": "4"}, nil)
	resolver.KeepUnbound = true
	got, err := resolver.Resolve(Tokenize("a b a", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got.Join() != "a 4 a" {
		t.Fatalf("Resolve() = %q", got.Join())
	}
}
