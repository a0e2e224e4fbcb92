package polish_go

// Operator weights. Brackets carry weight 0: they delimit scopes and are
// never compared as operators.
var weight = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"(": 0,
	")": 0,
}

// / Weight returns the precedence of op, or false when op is not in the table.
func Weight(op string) (int, bool) {
	w, ok := weight[op]
	return w, ok
}

// / IsOperator is the single-character membership test of the weight table.
func IsOperator(ch byte) bool {
	_, ok := weight[string(ch)]
	return ok
}

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	ADD Operator = iota + 1
	SUB
	MUL
	DIV
)

var kOperators = map[string]Operator{
	"+": ADD,
	"-": SUB,
	"*": MUL,
	"/": DIV,
}

// / ParseOperator maps an operator symbol to its variant. Brackets are not
// / operators here.
func ParseOperator(symbol string) (Operator, bool) {
	op, ok := kOperators[symbol]
	return op, ok
}

func (this Operator) Symbol() string {
	switch this {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	}
	return "?"
}

func (this Operator) String() string { return this.Symbol() }

func (this Operator) Weight() int {
	return weight[this.Symbol()]
}

// / Apply computes val1 op val2. Division truncates toward zero.
func (this Operator) Apply(val1, val2 int) (int, error) {
	switch this {
	case ADD:
		return val1 + val2, nil
	case SUB:
		return val1 - val2, nil
	case MUL:
		return val1 * val2, nil
	case DIV:
		if val2 == 0 {
			return 0, ErrDivisionByZero
		}
		return val1 / val2, nil
	}
	return 0, &UnexpectedTokenError{Token: this.Symbol()}
}
