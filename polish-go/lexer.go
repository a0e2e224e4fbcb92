package polish_go

import "unicode/utf8"

// Lexer splits a raw expression string into tokens.
type Lexer struct {
	input_ string
	ofs_   int
	log_   Logger
}

func NewLexer(input string, logger Logger) *Lexer {
	ret := Lexer{}
	ret.input_ = input
	ret.log_ = orNop(logger)
	return &ret
}

// / Read the next token. Returns false once the input is exhausted.
func (this *Lexer) ReadToken() (Token, bool) {
	if this.ofs_ >= len(this.input_) {
		return Token{}, false
	}
	start := this.ofs_
	if !isWordForming(this.input_[start]) {
		_, size := utf8.DecodeRuneInString(this.input_[start:])
		this.ofs_ += size
		return NewToken(this.input_[start:this.ofs_]), true
	}
	for this.ofs_ < len(this.input_) && isWordForming(this.input_[this.ofs_]) {
		this.ofs_++
	}
	return NewToken(this.input_[start:this.ofs_]), true
}

// / Consume the whole input.
func (this *Lexer) Scan() Tokens {
	this.log_.Verbose("Tokenization started. Received string: %s", this.input_)
	ret := Tokens{}
	for {
		token, ok := this.ReadToken()
		if !ok {
			break
		}
		ret = append(ret, token)
	}
	this.log_.Verbose("Tokenization completed. Returned tokens: %s", ret)
	return ret
}

// Tokenize splits input into digit/letter words and single-character tokens
// for everything else. It never fails.
func Tokenize(input string, logger Logger) Tokens {
	return NewLexer(input, logger).Scan()
}
