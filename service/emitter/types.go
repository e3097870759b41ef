package emitter

import (
	"io"
	"log/slog"

	"github.com/thirukguru/gocat/model"
)

type service struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

// Service is the interface for the line emitter.
type Service interface {
	// Emit copies every source named by opts to stdout, line by line, and
	// stops at the first error.
	Emit(opts model.Options) error
}
