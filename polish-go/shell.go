package polish_go

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	CHECK_INVERSE       = "chkinv"
	CHECK_DIRECT        = "chkdir"
	CALCULATE_INVERSE   = "calcinv"
	CALCULATE_DIRECT    = "calcdir"
	STANDARD_TO_INVERSE = "stdtoinv"
	STANDARD_TO_DIRECT  = "stdtodir"
	HISTORY             = "history"
	ABOUT               = "about"
	HELP                = "help"
	EXIT                = "exit"
)

// An EndpointFunc runs one command. It returns true when the shell should
// stop reading commands.
type EndpointFunc func(shell *Shell) bool

type Endpoint struct {
	/// Name typed at the command prompt.
	Name string

	/// Description (shown by "help").
	Desc string

	/// Implementation of the command.
	Func1 EndpointFunc
}

// / The command table, in the order "help" lists it.
func Endpoints() []Endpoint {
	return []Endpoint{
		{STANDARD_TO_DIRECT, "Convert standard math expression into direct polish notation [1+2] -> [+12]",
			func(s *Shell) bool { return s.convertEndpoint(DIRECT) }},
		{CHECK_DIRECT, "Check validity of math expression in direct polish notation [+12]",
			func(s *Shell) bool { return s.calculateEndpoint(DIRECT, true) }},
		{CALCULATE_DIRECT, "Calculate math expression in direct polish notation [+12]",
			func(s *Shell) bool { return s.calculateEndpoint(DIRECT, false) }},
		{STANDARD_TO_INVERSE, "Convert standard math expression into inverse polish notation [1+2] -> [12+]",
			func(s *Shell) bool { return s.convertEndpoint(INVERSE) }},
		{CHECK_INVERSE, "Check validity of math expression in inverse polish notation [12+]",
			func(s *Shell) bool { return s.calculateEndpoint(INVERSE, true) }},
		{CALCULATE_INVERSE, "Calculate math expression in inverse polish notation [12+]",
			func(s *Shell) bool { return s.calculateEndpoint(INVERSE, false) }},
		{HISTORY, "List the commands executed in this session",
			(*Shell).historyEndpoint},
		{ABOUT, "View info about this program",
			(*Shell).infoEndpoint},
		{HELP, "View this list of commands",
			(*Shell).helpEndpoint},
		{EXIT, "Stop program execution",
			(*Shell).exitEndpoint},
	}
}

// / ChooseEndpoint finds the command named name, or nil.
func ChooseEndpoint(name string) *Endpoint {
	for _, endpoint := range Endpoints() {
		if endpoint.Name == name {
			return &endpoint
		}
	}
	return nil
}

func endpointNames() []string {
	var ret []string
	for _, endpoint := range Endpoints() {
		ret = append(ret, endpoint.Name)
	}
	return ret
}

// Shell is the interactive command loop around the calculator.
type Shell struct {
	config_   *Config
	in_       LineReader
	printer_  *LinePrinter
	log_      Logger
	journal_  *Journal
	metrics_  *Metrics
	headline_ *color.Color
}

// / NewShell wires a shell to its input and output. journal and metrics may
// / be nil.
func NewShell(config *Config, in LineReader, printer *LinePrinter, logger Logger,
	journal *Journal, metrics *Metrics) *Shell {
	ret := Shell{}
	ret.config_ = config
	ret.in_ = in
	ret.printer_ = printer
	ret.log_ = orNop(logger)
	ret.journal_ = journal
	ret.metrics_ = metrics
	ret.headline_ = color.New(color.FgRed, color.Bold)
	if printer.supports_color() {
		ret.headline_.EnableColor()
	} else {
		ret.headline_.DisableColor()
	}
	return &ret
}

// / Run prints the about text, then executes commands until exit or the end
// / of input.
func (this *Shell) Run() {
	this.infoEndpoint()
	for {
		line, err := this.in_.Prompt("Your Command : ")
		if err != nil {
			if !errors.Is(err, io.EOF) {
				this.log_.Error("reading command: %s", err)
			}
			this.exitEndpoint()
			return
		}
		if this.Execute(line) {
			return
		}
	}
}

// / Execute dispatches one command line. Blank lines are not commands.
func (this *Shell) Execute(line string) bool {
	name := strings.TrimSpace(line)
	if name == "" {
		return false
	}
	if endpoint := ChooseEndpoint(name); endpoint != nil {
		return endpoint.Func1(this)
	}
	this.printer_.PrintLine("Command not found")
	if suggestion := SpellcheckString(name, endpointNames()...); suggestion != "" {
		this.printer_.PrintLine(fmt.Sprintf("Did you mean '%s'?", suggestion))
	}
	this.printer_.PrintLine("Print " + HELP + " to view list of all commands")
	return false
}

func (this *Shell) infoEndpoint() bool {
	this.printer_.PrintLine("This lab is about direct and inverse polish notations")
	this.printer_.PrintLine("This is an example use case of stacks")
	this.printer_.PrintLine("User should be able to check validity of math expressions in polish notations")
	this.printer_.PrintLine("User should be able to calculate math expressions in polish notations")
	this.printer_.PrintLine("User should be able to convert standard math expressions to direct and inverse polish notations")
	this.printer_.PrintLine("To view all available operations, print " + HELP)
	return false
}

func (this *Shell) helpEndpoint() bool {
	this.printer_.PrintLine("Commands:")
	for _, endpoint := range Endpoints() {
		this.printer_.PrintLine(endpoint.Name + " - " + endpoint.Desc)
	}
	return false
}

func (this *Shell) exitEndpoint() bool {
	this.printer_.PrintLine("Program execution stopped")
	return true
}

func (this *Shell) historyEndpoint() bool {
	if this.journal_ == nil {
		this.printer_.PrintLine("Journal is disabled")
		return false
	}
	entries, err := this.journal_.Entries()
	if err != nil {
		this.log_.Error("reading journal: %s", err)
		return false
	}
	if len(entries) == 0 {
		this.printer_.PrintLine("No commands executed yet")
		return false
	}
	this.PrintJournal(entries)
	return false
}

func (this *Shell) PrintJournal(entries []*JournalEntry) {
	for _, entry := range entries {
		status := "ok"
		if !entry.Success {
			status = "failed"
		}
		this.printer_.PrintLine(fmt.Sprintf("%3d  %-8s  %-6s  %s  =>  %s",
			entry.ID, entry.Command, status, entry.Expression, entry.Outcome))
	}
}

// / Ask for the expression a command works on. Returns false at end of
// / input.
func (this *Shell) readExpression(what string) (string, bool) {
	expr, err := this.in_.Prompt(what + " : ")
	if err != nil {
		if !errors.Is(err, io.EOF) {
			this.log_.Error("reading expression: %s", err)
		}
		return "", false
	}
	return strings.TrimSpace(expr), true
}

func (this *Shell) printErrorMessage(headline string, messages []string) {
	this.printer_.PrintLine("")
	this.printer_.PrintLine(this.headline_.Sprint(headline))
	this.printer_.PrintLine("Errors: ")
	for i, message := range messages {
		this.printer_.PrintLine(strconv.Itoa(i+1) + ") " + message)
	}
}

func (this *Shell) record(command, expr, outcome string, success bool, watch *Stopwatch) {
	if this.journal_ == nil {
		return
	}
	if seen, err := this.journal_.SeenBefore(command, expr); err == nil && seen > 0 {
		this.log_.Debug("Expression (%s) was already run with %s %d time(s)", expr, command, seen)
	}
	entry := JournalEntry{Command: command, Expression: expr, Outcome: outcome,
		Success: success, Elapsed: watch.Elapsed()}
	if err := this.journal_.Record(&entry); err != nil {
		this.log_.Warning("recording journal entry: %s", err)
	}
}

func commandName(notation Notation, check bool) string {
	switch {
	case notation == DIRECT && check:
		return CHECK_DIRECT
	case notation == DIRECT:
		return CALCULATE_DIRECT
	case check:
		return CHECK_INVERSE
	}
	return CALCULATE_INVERSE
}

// / Evaluate an expression in notation, substituting variables first. A
// / check skips tokens that are neither numbers nor operators.
func (this *Shell) calculateEndpoint(notation Notation, check bool) bool {
	what := "to calculate"
	if check {
		what = "to validate"
	}
	expr, ok := this.readExpression(notation.String() + " expression " + what)
	if !ok {
		return this.exitEndpoint()
	}

	command := commandName(notation, check)
	done := this.metrics_.Record(command)
	watch := NewStopwatch()
	res := this.Calculate(notation, expr, check)
	done()

	if !res.IsSuccess() {
		verb := "calculate"
		if check {
			verb = "validate"
		}
		this.printErrorMessage("Could not "+verb+" "+notation.String()+".", res.Messages())
		this.record(command, expr, strings.Join(res.Messages(), "; "), false, watch)
		return false
	}
	this.printer_.PrintLine("")
	if check {
		this.printer_.PrintLine(fmt.Sprintf("Operation valid (result: %d)", res.Value()))
	} else {
		this.printer_.PrintLine(fmt.Sprintf("Result: %d", res.Value()))
	}
	this.record(command, expr, strconv.Itoa(res.Value()), true, watch)
	return false
}

// / Calculate tokenizes expr, asks for its variables on the shell's input
// / and evaluates it.
func (this *Shell) Calculate(notation Notation, expr string, check bool) Result[int] {
	return CalculateExpression(notation, expr, variablePrompter{in_: this.in_},
		EvalOptions{IgnoreUnknown: check}, this.log_)
}

func (this *Shell) convertEndpoint(to Notation) bool {
	expr, ok := this.readExpression("standard expression to convert to " + to.String())
	if !ok {
		return this.exitEndpoint()
	}

	command := STANDARD_TO_INVERSE
	if to == DIRECT {
		command = STANDARD_TO_DIRECT
	}
	done := this.metrics_.Record(command)
	watch := NewStopwatch()
	res := ConvertExpression(to, expr, this.log_)
	done()

	if !res.IsSuccess() {
		this.printErrorMessage("Could not convert expression to "+to.String()+".", res.Messages())
		this.record(command, expr, strings.Join(res.Messages(), "; "), false, watch)
		return false
	}
	out := res.Value().Join()
	this.printer_.PrintLine("")
	this.printer_.PrintLine("Resulting expression: " + out)
	this.record(command, expr, out, true, watch)
	return false
}

// / Finish prints the reports requested with -d once the loop has ended.
func (this *Shell) Finish() {
	if this.config_.ShowStats && this.metrics_ != nil {
		this.printer_.PrintOnNewLine("")
		this.metrics_.Report(this.printer_.Writer())
	}
	if this.config_.DumpJournal && this.journal_ != nil {
		entries, err := this.journal_.Entries()
		if err != nil {
			this.log_.Error("reading journal: %s", err)
			return
		}
		this.PrintJournal(entries)
	}
}
