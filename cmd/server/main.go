// Entry point: wires the configuration, registry, and transport
// server together. Grounded on go-kgp's main.go: load (and optionally
// dump) the configuration, register every subsystem manager, then
// hand control to conf.Start.
package main

import (
	"flag"
	"fmt"
	"os"

	"go-tafl/conf"
	"go-tafl/registry"
	"go-tafl/transport"
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := conf.Load()
	config.Debug.Println("debug logging enabled")

	reg := registry.New()
	config.Register(reg)
	transport.Prepare(config, reg)

	config.Start()
}
