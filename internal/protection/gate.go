package protection

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// ExitCode is the status a failed gate exits with, matching SIGABRT.
const ExitCode = 134

// Policy lists argument patterns that must not appear on the command line.
type Policy struct {
	Deny []string
}

// DefaultPolicy rejects switches that attach inspectors or debuggers.
func DefaultPolicy() Policy {
	return Policy{Deny: []string{
		"--inspect*",
		"--remote-debugging*",
		"--open-devtools*",
		"--debug*",
		"-X*",
	}}
}

// Allows reports whether no argument matches a deny pattern. A malformed
// pattern denies everything.
func (p Policy) Allows(args []string) bool {
	for _, pattern := range p.Deny {
		if !doublestar.ValidatePattern(pattern) {
			return false
		}
		for _, arg := range args {
			if ok, _ := doublestar.Match(pattern, arg); ok {
				return false
			}
		}
	}
	return true
}

// Gate is a fail-closed startup check. Any failing step calls Terminate and
// nothing else; there is no error to handle.
type Gate struct {
	Policy    Policy
	Args      []string
	Silence   func() error
	Debugger  func() bool
	Terminate func()
}

// NewGate returns a gate over the process arguments with the platform probes.
func NewGate(policy Policy) *Gate {
	return &Gate{
		Policy:    policy,
		Args:      os.Args[1:],
		Silence:   silenceStdio,
		Debugger:  debuggerAttached,
		Terminate: terminate,
	}
}

// Enforce runs every check in order. Returning means the gate passed.
func (g *Gate) Enforce() {
	if err := g.Silence(); err != nil {
		g.Terminate()
		return
	}
	if !g.Policy.Allows(g.Args) {
		g.Terminate()
		return
	}
	if g.Debugger() {
		g.Terminate()
		return
	}
}

// Init runs the default gate and returns 0 when it passes.
func Init() int {
	NewGate(DefaultPolicy()).Enforce()
	return 0
}

var terminate = func() {
	os.Exit(ExitCode)
}

// openDevNull opens the null device for writing.
func openDevNull() (*os.File, error) {
	return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
}
