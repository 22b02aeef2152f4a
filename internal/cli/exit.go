package cli

import (
	"errors"

	"github.com/yildizm/casechart/internal/cases"
	"github.com/yildizm/casechart/internal/fileio"
)

// Process exit statuses
const (
	ExitOK               = 0
	ExitInputNotFound    = 1
	ExitOutputNotCreated = 2
	ExitInvalidRecord    = 3
	ExitFailure          = 4
)

// ExitCode maps an error returned by a command to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, fileio.ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, fileio.ErrOutputNotCreated):
		return ExitOutputNotCreated
	case errors.Is(err, cases.ErrInvalidCount), errors.Is(err, cases.ErrMalformedRecord):
		return ExitInvalidRecord
	default:
		return ExitFailure
	}
}
