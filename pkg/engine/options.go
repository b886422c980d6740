package engine

import (
	"runtime"

	"github.com/rs/zerolog"
)

type Options struct {
	Pruning   bool
	Threading bool
	Threads   int
	Logger    zerolog.Logger
}

func NewOptions() Options {
	return Options{
		Pruning:   false,
		Threading: true,
		Threads:   runtime.NumCPU(),
		Logger:    zerolog.Nop(),
	}
}
