// Transport manager: the HTTP + websocket server, grounded on
// go-kgp's web/manage.go (a small struct wrapping *conf.Conf and a
// *http.ServeMux, registered with the configuration manager rather
// than started by hand from main).
package transport

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go-tafl/conf"
	"go-tafl/registry"
)

//go:embed static
var static embed.FS

//go:embed *.tmpl
var htmlFS embed.FS

var tmpl *template.Template

type server struct {
	conf *conf.Conf
	reg  *registry.Registry
	mux  *http.ServeMux
}

// Prepare registers the transport manager with c. Call once during
// startup, before c.Start().
func Prepare(c *conf.Conf, reg *registry.Registry) {
	c.Register(&server{conf: c, reg: reg})
}

func (s *server) String() string { return "Transport Server" }

func (s *server) Start(c *conf.Conf) {
	tmpl = template.Must(template.New("").Funcs(templateFuncs).ParseFS(htmlFS, "*.tmpl"))

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/match/create", s.handleCreateMatch)
	s.mux.HandleFunc("/match/open", s.handleOpenMatch)
	s.mux.HandleFunc("/match/click", s.handleClick)
	s.mux.HandleFunc("/match/socket", s.handleSocket)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.Handle("/static/", http.FileServer(http.FS(static)))

	c.Debug.Printf("listening on %s", c.Addr)
	if err := http.ListenAndServe(c.Addr, s.mux); err != nil {
		c.Log.Print(err)
	}
}

func (s *server) Shutdown() {}

var templateFuncs = template.FuncMap{
	"statusLine": statusLine,
	"upper": func(s fmt.Stringer) string { return s.String() },
}
