// Command bridgebid suggests natural bridge calls for a hand and auction,
// explains the meaning behind calls already made, and can deal random
// boards for trying the engine out.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/bridgebid/internal/cliconfig"
)

// CLI is the root command; LogLevel/LogFile/Config apply to every
// subcommand.
type CLI struct {
	LogLevel string `help:"Set the log level" enum:"debug,info,warn,error" default:"info"`
	LogFile  string `help:"File to write logs to; stderr if empty"`
	Config   string `help:"Path to an HCL config file" default:"bridgebid.hcl"`

	Suggest   SuggestCmd   `cmd:"" help:"Suggest the next call for a hand, given the auction so far"`
	Trace     TraceCmd     `cmd:"" help:"Show the candidate calls and tie-breaks behind a suggestion"`
	Interpret InterpretCmd `cmd:"" help:"Show the inferred meaning of every call already made"`
	Deal      DealCmd      `cmd:"" help:"Deal a random board and print its four hands"`
	Board     BoardCmd     `cmd:"" help:"Suggest the next call for a board identifier"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bridgebid"),
		kong.Description("A natural-system bridge bidding engine."),
	)

	logger, closer, err := createLogger(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bridgebid: setting up logger:", err)
		ctx.Exit(1)
	}
	defer closer()

	cfg, err := cliconfig.Load(cli.Config)
	if err != nil {
		logger.Fatal("loading config", "error", err)
	}

	if err := ctx.Run(logger, cfg); err != nil {
		logger.Error("command failed", "error", err)
		ctx.Exit(1)
	}
}

func createLogger(cli *CLI) (*log.Logger, func() error, error) {
	nilCloser := func() error { return nil }

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		return nil, nilCloser, fmt.Errorf("parsing level %q: %w", cli.LogLevel, err)
	}

	if cli.LogFile == "" {
		return log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           level,
		}), nilCloser, nil
	}

	f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nilCloser, fmt.Errorf("opening log file %q: %w", cli.LogFile, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	return logger, f.Close, nil
}
