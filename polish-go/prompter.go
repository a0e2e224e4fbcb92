package polish_go

import (
	"bufio"
	"io"

	"github.com/peterh/liner"
)

// LineReader reads one line of user input after showing prompt.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// ScannerReader reads lines from a plain stream, e.g. a pipe.
type ScannerReader struct {
	scanner_ *bufio.Scanner
	printer_ *LinePrinter
}

func NewScannerReader(in io.Reader, printer *LinePrinter) *ScannerReader {
	ret := ScannerReader{}
	ret.scanner_ = bufio.NewScanner(in)
	ret.printer_ = printer
	return &ret
}

func (this *ScannerReader) Prompt(prompt string) (string, error) {
	this.printer_.PrintOnNewLine(prompt)
	if !this.scanner_.Scan() {
		if err := this.scanner_.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return this.scanner_.Text(), nil
}

// LinerReader reads from an interactive terminal with line editing and an
// in-session history.
type LinerReader struct {
	state_   *liner.State
	printer_ *LinePrinter
}

func NewLinerReader(printer *LinePrinter) *LinerReader {
	ret := LinerReader{}
	ret.state_ = liner.NewLiner()
	ret.state_.SetCtrlCAborts(true)
	ret.printer_ = printer
	return &ret
}

func (this *LinerReader) Prompt(prompt string) (string, error) {
	this.printer_.PrintOnNewLine("")
	line, err := this.state_.Prompt(prompt)
	this.printer_.MarkBlankLine()
	if err != nil {
		return "", err
	}
	if line != "" {
		this.state_.AppendHistory(line)
	}
	return line, nil
}

func (this *LinerReader) Close() error {
	return this.state_.Close()
}

// variablePrompter asks for variable values on the shell's input.
type variablePrompter struct {
	in_ LineReader
}

func (this variablePrompter) Prompt(name string) (string, error) {
	return this.in_.Prompt(name + " : ")
}
