package commands

import "github.com/teranos/xmatrix/errors"

// Process exit codes. Not-found is a successful lookup, so it exits 0;
// setup failures get a distinct code so callers can tell a broken import
// from a failed query.
const (
	ExitOK         = 0
	ExitQueryError = 1
	ExitSetupError = 2
)

// ErrSetupFailed marks errors from the setup path for distinct exit signaling
var ErrSetupFailed = errors.New("setup failed")

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrSetupFailed) {
		return ExitSetupError
	}
	return ExitQueryError
}
