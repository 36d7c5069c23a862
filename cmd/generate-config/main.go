package main

import (
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v2"

	"github.com/ebbitten/bluepoker-sub001/internal/config"
)

// CLI is the command line of the config generator
type CLI struct {
	Output string `short:"o" type:"path" help:"Write the config to a file instead of stdout"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli, kong.Description("Prints the default bluepoker configuration as YAML"))

	out := os.Stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		kctx.FatalIfErrorf(err)
		defer f.Close()

		out = f
	}

	kctx.FatalIfErrorf(yaml.NewEncoder(out).Encode(config.DefaultConfig()))
}
