package polish_go

import (
	"bytes"
	"strings"
	"testing"
)

func runShell(t *testing.T, input string, config *Config, journal *Journal, metrics *Metrics) string {
	t.Helper()
	var out bytes.Buffer
	printer := NewLinePrinter(&out)
	in := NewScannerReader(strings.NewReader(input), printer)
	shell := NewShell(config, in, printer, nil, journal, metrics)
	shell.Run()
	shell.Finish()
	return out.String()
}

func expectLines(t *testing.T, out string, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("missing line %q in output:\n%s", line, out)
		}
	}
}

func TestShellSession(t *testing.T) {
	input := strings.Join([]string{
		"",
		"stdtoinv", "1+2*3",
		"stdtodir", "(1+2)*3",
		"calcinv", "x 2 *", "4",
		"calcdir", "+ a a", "3",
		"chkinv", "3 4 # +",
		"exit",
		"help",
	}, "\n") + "\n"
	out := runShell(t, input, NewConfig(), nil, nil)
	expectLines(t, out,
		"This lab is about direct and inverse polish notations",
		"Resulting expression: 1 2 3 * +",
		"Resulting expression: * 3 + 2 1",
		"Result: 8",
		"Result: 6",
		"Operation valid (result: 7)",
		"Program execution stopped",
	)
	if strings.Contains(out, "Commands:") {
		t.Error("commands after exit were executed")
	}
	if !strings.Contains(out, "inverse polish notation expression to calculate : \nx : ") {
		t.Errorf("variable prompt missing:\n%s", out)
	}
	if strings.Count(out, "a : ") != 1 {
		t.Errorf("variable asked more than once:\n%s", out)
	}
}

func TestShellErrors(t *testing.T) {
	input := "calcinv\n5 0 /\nstdtodir\n(1+2\nchkdir\n+ 1\nhepl\n"
	out := runShell(t, input, NewConfig(), nil, nil)
	expectLines(t, out,
		"Could not calculate inverse polish notation.",
		"Errors: ",
		"1) Encountered division by zero",
		"Could not convert expression to direct polish notation.",
		"1) Opening bracket not found",
		"Could not validate direct polish notation.",
		"1) Not enough operands in expression",
		"Command not found",
		"Did you mean 'help'?",
		"Print help to view list of all commands",
		"Program execution stopped",
	)
}

func TestShellHelp(t *testing.T) {
	out := runShell(t, "help\n", NewConfig(), nil, nil)
	expectLines(t, out, "Commands:")
	for _, endpoint := range Endpoints() {
		expectLines(t, out, endpoint.Name+" - "+endpoint.Desc)
	}
}

func TestShellEndOfInputInsideCommand(t *testing.T) {
	out := runShell(t, "calcdir\n", NewConfig(), nil, nil)
	if strings.Count(out, "Program execution stopped") != 1 {
		t.Fatalf("output:\n%s", out)
	}
}

func TestShellHistory(t *testing.T) {
	journal, err := OpenJournal()
	if err != nil {
		t.Fatal(err)
	}
	defer journal.Close()

	out := runShell(t, "history\ncalcinv\n1 2 +\nstdtoinv\n(1\nhistory\n", NewConfig(), journal, nil)
	expectLines(t, out,
		"No commands executed yet",
		"  1  calcinv   ok      1 2 +  =>  3",
		"  2  stdtoinv  failed  (1  =>  Opening bracket not found",
	)

	out = runShell(t, "history\n", NewConfig(), nil, nil)
	expectLines(t, out, "Journal is disabled")
}

func TestShellFinishReports(t *testing.T) {
	journal, err := OpenJournal()
	if err != nil {
		t.Fatal(err)
	}
	defer journal.Close()

	config := NewConfig()
	config.ShowStats = true
	config.DumpJournal = true
	out := runShell(t, "calcinv\n2 3 *\n", config, journal, NewMetrics())
	if !strings.Contains(out, "metric") || !strings.Contains(out, "calcinv ") {
		t.Errorf("stats report missing:\n%s", out)
	}
	expectLines(t, out, "  1  calcinv   ok      2 3 *  =>  6")
}
