package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/TwoPly/pkg/cli"
	"github.com/ChizhovVadim/TwoPly/pkg/common"
	"github.com/ChizhovVadim/TwoPly/pkg/engine"
)

/*
TwoPly Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const name = "TwoPly"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgDepth       int
	flgLayout      string
	flgFen         string
	flgEngineBlack bool
	flgCastling    bool
	flgPruning     bool
	flgThreading   bool
	flgThreads     int
	flgRandom      float64
	flgSeed        int64
	flgVerbose     bool
)

func main() {
	flag.IntVar(&flgDepth, "depth", 2, "number of engine moves to look ahead")
	flag.StringVar(&flgLayout, "layout", "", "path to a board layout file")
	flag.StringVar(&flgFen, "fen", "", "start from a FEN position")
	flag.BoolVar(&flgEngineBlack, "engineblack", false, "engine pieces start at the top of the printed board")
	flag.BoolVar(&flgCastling, "castling", true, "allow castling")
	flag.BoolVar(&flgPruning, "pruning", false, "cut branches that cannot change the result")
	flag.BoolVar(&flgThreading, "threading", true, "search root replies in parallel")
	flag.IntVar(&flgThreads, "threads", runtime.NumCPU(), "parallel root searches")
	flag.Float64Var(&flgRandom, "random", 0.35, "share of randomness when choosing between equal moves")
	flag.Int64Var(&flgSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.BoolVar(&flgVerbose, "v", false, "log search progress")
	flag.Parse()

	var level = zerolog.InfoLevel
	if flgVerbose {
		level = zerolog.DebugLevel
	}
	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()

	logger.Info().
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Int("numCPU", runtime.NumCPU()).
		Msg(name)

	var options = engine.NewOptions()
	options.Pruning = flgPruning
	options.Threading = flgThreading
	options.Threads = flgThreads
	options.Logger = logger
	var eng = engine.NewEngine(options)

	var config = cli.Config{
		Depth:        flgDepth,
		Orientation:  common.Normal,
		Castling:     flgCastling,
		RandomFactor: flgRandom,
		Seed:         flgSeed,
	}
	if flgEngineBlack {
		config.Orientation = common.Flipped
	}

	var game = cli.NewGame(config, eng, os.Stdout)
	var initCommand = "start"
	if flgFen != "" {
		initCommand = "fen " + flgFen
	} else if flgLayout != "" {
		initCommand = "layout " + flgLayout
	}
	if err := game.Handle(context.Background(), initCommand); err != nil {
		logger.Fatal().Err(err).Msg("init position failed")
	}

	cli.RunCli(context.Background(), logger, os.Stdin, game)
}
