// Package main is the entry point for the gocat application.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thirukguru/gocat/model"
	"github.com/thirukguru/gocat/service/emitter"
	"github.com/thirukguru/gocat/service/flag"
	"github.com/thirukguru/gocat/service/help"
	"github.com/thirukguru/gocat/shared/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log := logger.New("warn", os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and either prints help or emits the requested sources.
// Help wins over everything else and performs no I/O besides writing itself.
func run(args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	flagService := flag.NewService()
	opts := flagService.GetParsedOptions(args)
	log.Debug("arguments parsed",
		"line_numbers", opts.ShowLineNumbers,
		"help", opts.ShowHelp,
		"files", len(opts.FilePaths),
	)

	if opts.ShowHelp {
		versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
		return help.NewService(flagService.FlagSet(), versionInfo).Print(stdout)
	}

	return emitter.NewService(stdin, stdout, log).Emit(opts)
}
