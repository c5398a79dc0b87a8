// Configuration loading and dumping, grounded on go-kgp's conf/io.go:
// decode the toml file into the internal conf struct, resolve it into
// a Conf, and reverse that for -dump-config.
package conf

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

const defconf = "tafl.toml"

// load parses a configuration from r into a fresh Conf, starting from
// defaultConfig.
func load(r io.Reader) (*Conf, error) {
	var data conf
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}

	c := defaultConfig
	if data.Web.Addr != "" {
		c.Addr = data.Web.Addr
	}
	if data.Match.MaxSubscribers > 0 {
		c.RingCapacity = data.Match.MaxSubscribers
	}
	if data.Debug {
		c.Debug.SetOutput(os.Stderr)
	}

	return &c, nil
}

// Load opens the configuration file named by -conf, if any, and
// returns the resolved Conf. A missing default file is not an error;
// an explicitly named missing file is fatal, matching go-kgp's
// behaviour.
func Load() (c *Conf) {
	file, err := os.Open(cfile)
	switch {
	case err != nil && os.IsNotExist(err) && cfile == defconf:
		c = &defaultConfig
	case err != nil:
		log.Fatal(err)
	default:
		defer file.Close()
		c, err = load(file)
		if err != nil {
			log.Print(err)
			c = &defaultConfig
		}
	}

	if debug {
		c.Log.SetOutput(os.Stderr)
		c.Debug.SetOutput(os.Stderr)
	}
	c.Ctx, c.Kill = context.WithCancel(context.Background())

	if dump {
		if err := c.Dump(os.Stdout); err != nil {
			log.Fatalln("Failed to dump default configuration:", err)
		}
		os.Exit(0)
	}

	return c
}

// Dump serialises c back out as toml, in the shape Load expects to
// read it back in.
func (c *Conf) Dump(w io.Writer) error {
	var data conf
	data.Web.Addr = c.Addr
	data.Match.MaxSubscribers = c.RingCapacity
	data.Debug = c.Debug.Writer() != io.Discard

	return toml.NewEncoder(w).Encode(data)
}
