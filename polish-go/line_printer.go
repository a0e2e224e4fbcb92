package polish_go

import (
	"fmt"
	"io"
	"os"
	"syscall"
)

// LinePrinter writes whole lines to the console, making sure a message
// never starts in the middle of a partially written line.
type LinePrinter struct {
	/// Whether we can use ISO 6429 (ANSI) color sequences.
	supports_color_ bool

	/// Whether the caret is at the beginning of a blank line.
	have_blank_line_ bool

	out_ io.Writer
}

// / IsTerminal reports whether fd refers to a character device.
func IsTerminal(fd int) bool {
	stat, err := os.Stat(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		return false
	}
	return stat.Mode()&syscall.S_IFMT == syscall.S_IFCHR
}

// / NewConsolePrinter prints to stdout, with color when stdout is a smart
// / terminal or CLICOLOR_FORCE is set.
func NewConsolePrinter() *LinePrinter {
	ret := NewLinePrinter(os.Stdout)
	term := os.Getenv("TERM")
	ret.supports_color_ = IsTerminal(1) && term != "" && term != "dumb"
	if !ret.supports_color_ {
		clicolor_force := os.Getenv("CLICOLOR_FORCE")
		ret.supports_color_ = clicolor_force != "" && clicolor_force != "0"
	}
	return ret
}

func NewLinePrinter(out io.Writer) *LinePrinter {
	ret := LinePrinter{}
	ret.have_blank_line_ = true
	ret.out_ = out
	return &ret
}

func (this *LinePrinter) supports_color() bool { return this.supports_color_ }

func (this *LinePrinter) set_supports_color(enabled bool) { this.supports_color_ = enabled }

func (this *LinePrinter) Writer() io.Writer { return this.out_ }

// / Print writes to_print as-is; it may leave the caret mid-line.
func (this *LinePrinter) Print(to_print string) {
	if to_print == "" {
		return
	}
	io.WriteString(this.out_, to_print)
	this.have_blank_line_ = to_print[len(to_print)-1] == '\n'
}

// / Prints a string on a new line, not overprinting previous output.
func (this *LinePrinter) PrintOnNewLine(to_print string) {
	if !this.have_blank_line_ {
		io.WriteString(this.out_, "\n")
		this.have_blank_line_ = true
	}
	this.Print(to_print)
}

// / PrintLine prints to_print on its own line.
func (this *LinePrinter) PrintLine(to_print string) {
	this.PrintOnNewLine(to_print + "\n")
}

// / The caret is known to be at the start of a line again, e.g. after the
// / user pressed return at a prompt.
func (this *LinePrinter) MarkBlankLine() { this.have_blank_line_ = true }
