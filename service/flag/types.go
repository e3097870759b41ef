package flag

import (
	"github.com/spf13/pflag"
	"github.com/thirukguru/gocat/model"
)

// Long names of the recognized flags.
const (
	FlagLineNumbers = "line_numbers"
	FlagHelp        = "help"
)

type service struct {
	fs *pflag.FlagSet
	// hidden long spellings kept for compatibility, keyed by spelling
	aliases map[string]string
}

// Service is the interface for the CLI argument parser.
type Service interface {
	// GetParsedOptions classifies args (program name excluded). It never fails.
	GetParsedOptions(args []string) model.Options
	// FlagSet exposes the flag declarations for usage rendering.
	FlagSet() *pflag.FlagSet
}
