package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Verbose  bool             `short:"v" help:"Verbose logging"`
	Simulate SimulateCmd      `cmd:"" help:"Run a simulation between bundled strategies"`
	Bots     BotsCmd          `cmd:"" help:"List the bundled strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("liarspoker"),
		kong.Description("Liar's Poker engine for bot-vs-bot simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
