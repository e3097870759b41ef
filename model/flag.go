package model

// Options is the parsed form of the command line. It is built once and is
// not modified afterwards.
type Options struct {
	ShowLineNumbers bool
	ShowHelp        bool
	FilePaths       []string
}

// ReadsStdin reports whether standard input is the only source.
func (o Options) ReadsStdin() bool {
	return len(o.FilePaths) == 0
}
