// Configuration Specification and Management
//
// Grounded on go-kgp's conf/conf.go: an internal toml-tagged struct
// decoded from a configuration file, resolved into a public Conf used
// by the rest of the program, with flags bound directly against the
// defaults at init time.
package conf

import (
	"context"
	"flag"
	"io"
	"log"
)

// Internal representation, decoded directly from tafl.toml.
type conf struct {
	Debug bool `toml:"debug"`
	Web   struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
	Match struct {
		MaxSubscribers uint `toml:"max_subscribers"`
	} `toml:"match"`
}

// Conf is the resolved configuration object passed to every Manager.
type Conf struct {
	Log   *log.Logger
	Debug *log.Logger
	Ctx   context.Context
	Kill  context.CancelFunc

	// Web server configuration
	Addr string // Address the HTTP+websocket server listens on

	// Match configuration
	RingCapacity uint // per-subscriber broadcast ring buffer capacity

	man []Manager // registered system managers
	run bool      // set once Start has been called
}

// Configuration object used by default, and bound to by the flags
// registered below.
var defaultConfig = Conf{
	Log:   log.Default(),
	Debug: log.New(io.Discard, "[debug] ", log.Ltime|log.Lshortfile|log.Lmicroseconds),

	Addr:         ":8080",
	RingCapacity: 100,
}

var (
	debug bool   = false
	dump  bool   = false
	cfile string = defconf
)

func init() {
	flag.StringVar(&defaultConfig.Addr, "addr", defaultConfig.Addr,
		"Address to listen on for the HTTP and websocket server")
	flag.UintVar(&defaultConfig.RingCapacity, "ring-capacity", defaultConfig.RingCapacity,
		"Per-subscriber broadcast buffer capacity before oldest updates are dropped")
	flag.BoolVar(&debug, "debug", debug, "Enable debug output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}
