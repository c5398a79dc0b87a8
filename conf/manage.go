// Configuration Management: the Manager lifecycle, grounded on
// go-kgp's conf/manage.go. Subsystems (the match registry, the
// transport server) register themselves once at init time, and
// main.go drives all of them through a single Start call instead of
// wiring each one up by hand.
package conf

import (
	"fmt"
	"os"
	"os/signal"
)

// Manager is implemented by every long-running subsystem of the
// server: the match registry and the HTTP/websocket transport.
type Manager interface {
	fmt.Stringer
	Start(*Conf)
	Shutdown()
}

// Register adds m to the set of managers started by Start. Intended
// to be called once per subsystem, before Start runs.
func (c *Conf) Register(m Manager) {
	if c.run {
		panic(fmt.Sprintf("conf: late register: %s", m))
	}
	c.man = append(c.man, m)
}

// Start starts every registered manager, then blocks until either an
// interrupt signal arrives or c.Kill is called, at which point every
// manager is asked to shut down in turn.
func (c *Conf) Start() {
	for _, m := range c.man {
		c.Debug.Printf("starting %s", m)
		go m.Start(c)
	}
	c.run = true

	intr := make(chan os.Signal, 1)
	signal.Notify(intr, os.Interrupt)
	select {
	case <-intr:
		c.Debug.Println("caught interrupt")
	case <-c.Ctx.Done():
		c.Debug.Println("requested shutdown")
	}

	c.Debug.Println("waiting for managers to shut down...")
	for _, m := range c.man {
		c.Debug.Printf("shutting %s down", m)
		m.Shutdown()
	}
	c.Debug.Println("shutting down")
}
