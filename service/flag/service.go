package flag

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/gocat/model"
)

// NewService creates a new flag service.
func NewService() Service {
	fs := pflag.NewFlagSet("gocat", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.BoolP(FlagLineNumbers, "n", false, "Show line numbers")
	fs.BoolP(FlagHelp, "h", false, "Show this help message")

	aliases := map[string]string{
		"n": FlagLineNumbers,
		"h": FlagHelp,
	}
	for alias, target := range aliases {
		fs.Bool(alias, false, fs.Lookup(target).Usage)
		// MarkHidden only fails for undeclared names; alias was declared above.
		_ = fs.MarkHidden(alias)
	}

	return &service{fs: fs, aliases: aliases}
}

func (s *service) FlagSet() *pflag.FlagSet {
	return s.fs
}

// GetParsedOptions walks args once. A token is a flag only when it spells a
// declared flag exactly; everything else, including unknown flags, clustered
// shorthands and --name=value forms, is a file path.
func (s *service) GetParsedOptions(args []string) model.Options {
	opts := model.Options{FilePaths: []string{}}

	for _, arg := range args {
		f := s.lookup(arg)
		if f == nil {
			opts.FilePaths = append(opts.FilePaths, arg)
			continue
		}

		switch s.canonical(f.Name) {
		case FlagLineNumbers:
			opts.ShowLineNumbers = true
		case FlagHelp:
			opts.ShowHelp = true
		default:
			opts.FilePaths = append(opts.FilePaths, arg)
		}
	}

	return opts
}

func (s *service) lookup(token string) *pflag.Flag {
	switch {
	case strings.HasPrefix(token, "--") && len(token) > 2:
		return s.fs.Lookup(token[2:])
	case strings.HasPrefix(token, "-") && len(token) == 2:
		return s.fs.ShorthandLookup(token[1:])
	}
	return nil
}

func (s *service) canonical(name string) string {
	if target, ok := s.aliases[name]; ok {
		return target
	}
	return name
}
