package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `help:"Path to HCL config file" default:"pokergrid.hcl"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a game in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Auto-play many games and report score statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokergrid"),
		kong.Description("Poker-hand grid puzzle for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
