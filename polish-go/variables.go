package polish_go

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahrtr/gocontainer/set"
)

// Prompter supplies the value of a variable, keyed by its exact name.
type Prompter interface {
	Prompt(name string) (string, error)
}

var ErrUnboundVariable = errors.New("no value bound for variable")

// MapPrompter answers from a fixed set of bindings.
type MapPrompter map[string]string

func (this MapPrompter) Prompt(name string) (string, error) {
	value, ok := this[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnboundVariable, name)
	}
	return value, nil
}

const kMaxAttempts = 3

// Resolver substitutes variable tokens with integer literals.
type Resolver struct {
	prompter_   Prompter
	log_        Logger
	MaxAttempts int

	/// Leave names the prompter has no binding for (ErrUnboundVariable)
	/// in place instead of failing.
	KeepUnbound bool
}

func NewResolver(prompter Prompter, logger Logger) *Resolver {
	ret := Resolver{}
	ret.prompter_ = prompter
	ret.log_ = orNop(logger)
	ret.MaxAttempts = kMaxAttempts
	return &ret
}

// / Variables lists the distinct variable names in order of first occurrence.
func Variables(tokens Tokens) []string {
	seen := set.New()
	var ret []string
	for _, token := range tokens {
		if !token.StartsWithLetter() || seen.Contains(token.Text) {
			continue
		}
		seen.Add(token.Text)
		ret = append(ret, token.Text)
	}
	return ret
}

// / Ask for one variable, re-asking while the answer is not an integer.
func (this *Resolver) ask(name string) (int, error) {
	attempts := this.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		answer, err := this.prompter_.Prompt(name)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return value, nil
		}
		this.log_.Warning("Value (%s) of variable (%s) is not an integer", answer, name)
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidVariableValue, name)
}

// Resolve returns a copy of tokens where every token starting with a letter
// is replaced by the integer literal the prompter gives for it. Each
// distinct name is asked for once, however often it occurs.
func (this *Resolver) Resolve(tokens Tokens) (Tokens, error) {
	this.log_.Verbose("Variable replacement started. Received tokens: %s", tokens)
	ret := make(Tokens, len(tokens))
	copy(ret, tokens)
	resolved := set.New()
	for i := range ret {
		token := ret[i]
		if !token.StartsWithLetter() || resolved.Contains(token.Text) {
			continue
		}
		this.log_.Info("Found variable (%s)", token.Text)
		value, err := this.ask(token.Text)
		if err != nil {
			if this.KeepUnbound && errors.Is(err, ErrUnboundVariable) {
				this.log_.Info("Variable (%s) has no value. Leaving it in place", token.Text)
				resolved.Add(token.Text)
				continue
			}
			return nil, err
		}
		resolved.Add(token.Text)

		literal := NumberToken(value)
		occurrences := 0
		for j := i; j < len(ret); j++ {
			if ret[j].Text == token.Text {
				ret[j] = literal
				occurrences++
			}
		}
		this.log_.Info("Replaced %d occurrences of variable (%s) with value %d",
			occurrences, token.Text, value)
	}
	this.log_.Verbose("Variable replacement completed. Returned tokens: %s", ret)
	return ret, nil
}
