package polish_go

// Notation names a Polish notation form.
type Notation uint8

const (
	DIRECT  Notation = iota // prefix
	INVERSE                 // postfix
)

func (this Notation) String() string {
	if this == DIRECT {
		return "direct polish notation"
	}
	return "inverse polish notation"
}

// / ParseNotation accepts "direct"/"prefix" and "inverse"/"postfix".
func ParseNotation(name string) (Notation, bool) {
	switch name {
	case "direct", "dir", "prefix":
		return DIRECT, true
	case "inverse", "inv", "postfix":
		return INVERSE, true
	}
	return INVERSE, false
}

// converter runs the shunting-yard pass shared by both target notations.
// Operands and reduced operators go to emit; the two variants differ only
// in what emit does with them.
type converter struct {
	ops_  *Stack[Token]
	emit  func(Token)
	dump  func() string
	log_  Logger
	what_ string
}

func (this *converter) run(tokens Tokens) error {
	this.log_.Verbose("Conversion [standard notation -> %s] started", this.what_)
	for _, token := range tokens {
		switch {
		case token.Kind == LPAREN:
			this.log_.Info("Found opening bracket. Pushing to operation stack")
			this.ops_.Push(token)
		case token.IsOperand():
			this.log_.Info("Found number/variable(%s). Pushing to resulting expression", token.Text)
			this.emit(token)
		case token.Kind == RPAREN:
			this.log_.Info("Found closing bracket. Pushing operation stack to resulting expression until opening bracket is found")
			if err := this.closeBracket(); err != nil {
				this.log_.Error("%s", err)
				return err
			}
		case token.Kind == OPERATOR:
			this.pushOperator(token)
		default:
			continue
		}
		this.log_.Debug("Operation stack: %s", this.ops_)
		this.log_.Debug("Resulting expression: %s", this.dump())
	}
	this.log_.Info("Pushing everything from stack into resulting expression")
	for !this.ops_.Empty() {
		top, _ := this.ops_.Pop()
		if top.Kind == LPAREN {
			this.log_.Error("%s", ErrOpeningBracketNotFound)
			return ErrOpeningBracketNotFound
		}
		this.emit(top)
	}
	this.log_.Debug("Operation stack: %s", this.ops_)
	this.log_.Debug("Resulting expression: %s", this.dump())
	this.log_.Verbose("Conversion [standard notation -> %s] is completed", this.what_)
	return nil
}

func (this *converter) closeBracket() error {
	for {
		top, err := this.ops_.Pop()
		if err != nil {
			return ErrOpeningBracketNotFound
		}
		if top.Kind == LPAREN {
			return nil
		}
		this.emit(top)
	}
}

func (this *converter) pushOperator(token Token) {
	op_weight, _ := Weight(token.Text)
	this.log_.Info("Found operator %s with weight %d", token.Text, op_weight)
	for {
		top, err := this.ops_.Top()
		if err != nil {
			break
		}
		top_weight, _ := Weight(top.Text)
		if top_weight < op_weight || top.Kind != OPERATOR {
			break
		}
		this.log_.Info("Stack operator[%s] weight(%d) >= found operator[%s] weight(%d). Pushing %s to resulting expression.",
			top.Text, top_weight, token.Text, op_weight, top.Text)
		this.ops_.Pop()
		this.emit(top)
	}
	this.log_.Info("Pushing operator %s with weight %d into operation stack", token.Text, op_weight)
	this.ops_.Push(token)
}

// ConvertStandardToInverse converts an infix token sequence to postfix.
// Equal weights reduce left to right.
func ConvertStandardToInverse(tokens Tokens, logger Logger) Result[Tokens] {
	output := Tokens{}
	c := converter{
		ops_:  NewStack[Token](),
		emit:  func(t Token) { output = append(output, t) },
		dump:  func() string { return output.Join() },
		log_:  orNop(logger),
		what_: INVERSE.String(),
	}
	if err := c.run(tokens); err != nil {
		return Failure[Tokens](err)
	}
	return Success(output)
}

// ConvertStandardToDirect converts an infix token sequence to prefix form.
// Operands and reduced operators are pushed onto a resulting stack, which
// is read top-to-bottom once the operation stack has been drained into it.
func ConvertStandardToDirect(tokens Tokens, logger Logger) Result[Tokens] {
	res_stack := NewStack[Token]()
	c := converter{
		ops_:  NewStack[Token](),
		emit:  res_stack.Push,
		dump:  res_stack.String,
		log_:  orNop(logger),
		what_: DIRECT.String(),
	}
	if err := c.run(tokens); err != nil {
		return Failure[Tokens](err)
	}
	return Success(Tokens(res_stack.Items()))
}

// / Convert dispatches on the target notation.
func Convert(to Notation, tokens Tokens, logger Logger) Result[Tokens] {
	if to == DIRECT {
		return ConvertStandardToDirect(tokens, logger)
	}
	return ConvertStandardToInverse(tokens, logger)
}

// / ConvertExpression tokenizes a standard expression and converts it.
func ConvertExpression(to Notation, expr string, logger Logger) Result[Tokens] {
	return Convert(to, Tokenize(expr, logger), logger)
}
