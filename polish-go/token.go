package polish_go

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind classifies a token by the shape of its text.
type TokenKind uint8

const (
	FOREIGN TokenKind = iota
	NUMBER
	VARIABLE
	WORD
	OPERATOR
	LPAREN
	RPAREN
	SPACE
)

// / Return a human-readable form of a token kind, used in diagnostics.
func (this TokenKind) String() string {
	switch this {
	case NUMBER:
		return "number"
	case VARIABLE:
		return "variable"
	case WORD:
		return "word"
	case OPERATOR:
		return "operator"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case SPACE:
		return "space"
	}
	return "foreign symbol"
}

// Token is one lexical unit of an expression. Tokens are never modified
// after creation; the resolver builds new NUMBER tokens instead.
type Token struct {
	Text string
	Kind TokenKind
}

func NewToken(text string) Token {
	return Token{Text: text, Kind: classify(text)}
}

func NumberToken(value int) Token {
	return Token{Text: strconv.Itoa(value), Kind: NUMBER}
}

func (this Token) String() string { return this.Text }

// / True when the token starts with a letter, i.e. it may name a variable.
func (this Token) StartsWithLetter() bool {
	return this.Text != "" && isAlpha(this.Text[0])
}

// / Operand tokens are pushed straight to the output during conversion.
func (this Token) IsOperand() bool {
	return this.Kind == NUMBER || this.StartsWithLetter()
}

// / Value parses a NUMBER token. A literal too large for int is reported
// / as ErrNumberOutOfRange.
func (this Token) Value() (int, error) {
	if this.Kind != NUMBER {
		return 0, &UnexpectedTokenError{Token: this.Text}
	}
	v, err := strconv.Atoi(this.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNumberOutOfRange, this.Text)
	}
	return v, nil
}

func classify(text string) TokenKind {
	if text == "" {
		return FOREIGN
	}
	if len(text) == 1 {
		switch ch := text[0]; {
		case ch == '(':
			return LPAREN
		case ch == ')':
			return RPAREN
		case IsOperator(ch):
			return OPERATOR
		case isSpace(ch):
			return SPACE
		}
	}
	if isInteger(text) {
		return NUMBER
	}
	if isAlpha(text[0]) {
		return VARIABLE
	}
	if isWordForming(text[0]) {
		return WORD
	}
	return FOREIGN
}

// Tokens is an ordered token sequence; the order is the expression.
type Tokens []Token

func (this Tokens) Texts() []string {
	ret := make([]string, len(this))
	for i, token := range this {
		ret[i] = token.Text
	}
	return ret
}

// / Join renders the tokens separated by single spaces, dropping layout.
func (this Tokens) Join() string {
	var parts []string
	for _, token := range this {
		if token.Kind == SPACE {
			continue
		}
		parts = append(parts, token.Text)
	}
	return strings.Join(parts, " ")
}

// / String renders the raw sequence as [|a|b|] for log output.
func (this Tokens) String() string {
	var sb strings.Builder
	sb.WriteString("[|")
	for _, token := range this {
		sb.WriteString(token.Text)
		sb.WriteByte('|')
	}
	sb.WriteString("]")
	return sb.String()
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isWordForming(ch byte) bool { return isDigit(ch) || isAlpha(ch) }

// / isInteger looks at the characters only; range is checked by Value.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// / TokensOf builds a sequence from already-split texts.
func TokensOf(texts ...string) Tokens {
	ret := make(Tokens, len(texts))
	for i, text := range texts {
		ret[i] = NewToken(text)
	}
	return ret
}
