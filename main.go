package main

import (
	"flag"
	"fmt"
	"os"

	"dashd/internal/di"
	"dashd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "echo logs to stderr")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "dashd: %s\n", err)
		os.Exit(1)
	}
}
