package help

import (
	"io"

	"github.com/spf13/pflag"
	"github.com/thirukguru/gocat/model"
)

// ProgramName is the name shown in the usage message.
const ProgramName = "gocat"

type service struct {
	flags   *pflag.FlagSet
	version model.VersionInfo
}

// Service is the interface for the help printer.
type Service interface {
	// Print writes the usage message to w, styled when w is a terminal.
	Print(w io.Writer) error
	// Render builds the usage message. Long option descriptions are wrapped
	// to fit width columns.
	Render(styled bool, width int) string
}
