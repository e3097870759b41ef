// Package help renders gocat's usage message.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/pflag"
	"github.com/thirukguru/gocat/model"
	"github.com/thirukguru/gocat/shared/console"
)

const (
	indent = "    "
	// narrowest description column before wrapping stops making sense
	minDescriptionWidth = 20
)

const description = `Concatenate FILE(s), or standard input when no FILE is given, to standard
output one line at a time. Every FILE is opened as given, including "-".
With line numbers enabled, numbering restarts at 1 for each FILE.`

var examples = []string{
	ProgramName + " file.txt",
	ProgramName + " -n file1.txt file2.txt",
	"printf 'a\\nb\\n' | " + ProgramName + " --line_numbers",
}

// NewService creates a help printer describing the flags in fs.
func NewService(fs *pflag.FlagSet, version model.VersionInfo) Service {
	return &service{flags: fs, version: version}
}

func (s *service) Print(w io.Writer) error {
	styled := console.IsTerminal(w) && console.EnableANSI(w)
	if _, err := io.WriteString(w, s.Render(styled, console.Width(w))); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return nil
}

func (s *service) Render(styled bool, width int) string {
	heading := func(h string) string {
		if styled {
			return text.Bold.Sprint(h)
		}
		return h
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", heading(ProgramName), s.version)
	b.WriteString("A minimal clone of the Unix `cat` command\n\n")

	b.WriteString(heading("USAGE:") + "\n")
	fmt.Fprintf(&b, "%s%s [OPTIONS] [FILE]...\n\n", indent, ProgramName)

	b.WriteString(heading("OPTIONS:") + "\n")
	b.WriteString(s.optionsTable(width))
	b.WriteString("\n")

	b.WriteString(heading("DESCRIPTION:") + "\n")
	for _, line := range strings.Split(description, "\n") {
		b.WriteString(indent + line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(heading("EXAMPLES:") + "\n")
	for _, ex := range examples {
		b.WriteString(indent + ex + "\n")
	}

	return b.String()
}

func (s *service) optionsTable(width int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Options = table.OptionsNoBordersAndSeparators

	nameWidth := 0
	s.flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := flagName(f)
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
		t.AppendRow(table.Row{name, f.Usage})
	})

	// name column plus two cells of padding on each side
	descWidth := width - len(indent) - nameWidth - 4
	if descWidth < minDescriptionWidth {
		descWidth = minDescriptionWidth
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: descWidth},
	})

	var b strings.Builder
	for _, line := range strings.Split(t.Render(), "\n") {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		// the style pads each cell by one space; the indent replaces it
		b.WriteString(indent + strings.TrimPrefix(line, " ") + "\n")
	}
	return b.String()
}

func flagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}
