package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

func RunCli(ctx context.Context, logger zerolog.Logger, r io.Reader, handler CommandHandler) {
	var ctx2, cancel = context.WithCancel(ctx)
	defer cancel()
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		var err = handler.Handle(ctx2, commandLine)
		if err != nil {
			logger.Error().Err(err).Str("command", commandLine).Msg("command failed")
		}
	}
}
