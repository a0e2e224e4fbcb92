package polish_go

import "fmt"

// EvalOptions tunes evaluation.
type EvalOptions struct {
	// Skip tokens that are neither integers nor operators instead of
	// failing. Used to check the structure of an expression.
	IgnoreUnknown bool
}

type evaluator struct {
	stack_ *Stack[int]
	opts_  EvalOptions
	log_   Logger
}

// / Process one token against the operand stack.
func (this *evaluator) step(token Token) error {
	if token.Kind == SPACE {
		return nil
	}
	if token.Kind == NUMBER {
		value, err := token.Value()
		if err != nil {
			return err
		}
		this.log_.Info("Processing number: %d", value)
		this.stack_.Push(value)
	} else if op, ok := ParseOperator(token.Text); ok {
		val2, err := this.stack_.Pop()
		if err != nil {
			return ErrNotEnoughOperands
		}
		val1, err := this.stack_.Pop()
		if err != nil {
			return ErrNotEnoughOperands
		}
		res, err := op.Apply(val1, val2)
		if err != nil {
			return err
		}
		this.log_.Info("Calculation: %d %s %d = %d", val1, op, val2, res)
		this.stack_.Push(res)
	} else if !this.opts_.IgnoreUnknown {
		return &UnexpectedTokenError{Token: token.Text}
	}
	this.log_.Debug("Token: %s", token.Text)
	this.log_.Debug("Stack: %s", this.stack_)
	return nil
}

// / Exactly one value must be left once every token has been consumed.
func (this *evaluator) finish() (int, error) {
	res, err := this.stack_.Pop()
	if err != nil {
		return 0, ErrNotEnoughOperands
	}
	if !this.stack_.Empty() {
		return 0, ErrNotEnoughOperators
	}
	return res, nil
}

func evaluate(tokens Tokens, reverse bool, opts EvalOptions, logger Logger) Result[int] {
	e := evaluator{stack_: NewStack[int](), opts_: opts, log_: orNop(logger)}
	for i := range tokens {
		token := tokens[i]
		if reverse {
			token = tokens[len(tokens)-1-i]
		}
		if err := e.step(token); err != nil {
			e.log_.Error("%s", err)
			return Failure[int](err)
		}
	}
	res, err := e.finish()
	if err != nil {
		e.log_.Error("%s", err)
		return Failure[int](err)
	}
	return Success(res)
}

// CalculateInverse evaluates a postfix expression, scanning left to right.
func CalculateInverse(tokens Tokens, opts EvalOptions, logger Logger) Result[int] {
	return evaluate(tokens, false, opts, logger)
}

// CalculateDirect evaluates a prefix expression. Tokens are scanned right
// to left so the same pop/compute/push step applies.
func CalculateDirect(tokens Tokens, opts EvalOptions, logger Logger) Result[int] {
	return evaluate(tokens, true, opts, logger)
}

func Calculate(notation Notation, tokens Tokens, opts EvalOptions, logger Logger) Result[int] {
	if notation == DIRECT {
		return CalculateDirect(tokens, opts, logger)
	}
	return CalculateInverse(tokens, opts, logger)
}

// CalculateExpression tokenizes expr, substitutes its variables with the
// values prompter gives and evaluates the result in notation. With
// IgnoreUnknown, variables prompter has no binding for are skipped like any
// other unknown token.
func CalculateExpression(notation Notation, expr string, prompter Prompter, opts EvalOptions, logger Logger) Result[int] {
	tokens := Tokenize(expr, logger)
	resolver := NewResolver(prompter, logger)
	resolver.KeepUnbound = opts.IgnoreUnknown
	tokens, err := resolver.Resolve(tokens)
	if err != nil {
		return Failure[int](fmt.Errorf("Could not read variable value: %w", err))
	}
	return Calculate(notation, tokens, opts, logger)
}
