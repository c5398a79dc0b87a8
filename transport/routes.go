// HTTP request handlers for the transport surface, grounded on
// go-kgp's web/routes.go (thin handlers that parse the request, call
// into the owned subsystem, and execute a template or write a
// response).
package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-tafl"
	"go-tafl/state"
)

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	player, known := s.reg.Player(session)

	w.Header().Add("Content-Type", "text/html")
	if err := tmpl.ExecuteTemplate(w, "index.tmpl", struct {
		LoggedIn bool
		Username string
	}{known, player.Username}); err != nil {
		s.conf.Log.Print(err)
	}
}

// handleLogin logs a player in, reusing their existing session if any.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	session := loginOrReuse(s.reg, w, r, username)
	s.reg.RegisterPlayer(session, username, "local")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCreateMatch creates a new match for the logged-in session.
func (s *server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	if _, ok := s.reg.Player(session); !ok {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}

	variant, ok := tafl.ParseVariant(r.PostFormValue("variant"))
	if !ok {
		http.Error(w, "unknown variant", http.StatusBadRequest)
		return
	}

	var mode tafl.Mode
	var role tafl.Role
	switch r.PostFormValue("mode") {
	case "online":
		mode = tafl.Online
		switch r.PostFormValue("role") {
		case "defender":
			role = tafl.Defender
		default:
			role = tafl.Attacker
		}
	default:
		mode = tafl.Local
	}

	id := s.reg.CreateMatch(session, variant, mode, role, int(s.conf.RingCapacity))
	writeJSON(w, map[string]uint32{"matchId": id})
}

// handleOpenMatch opens an existing match for the session, joining it
// as a participant in Online mode if a seat is free.
func (s *server) handleOpenMatch(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	id, err := parseMatchID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := s.reg.OpenMatch(session, id)
	if err != nil {
		writeRuleError(w, err)
		return
	}

	snap := m.Snapshot(session)
	boardHTML, message, status := RenderBoard(snap)
	writeJSON(w, map[string]string{
		"board_html": string(boardHTML),
		"message":    message,
		"status":     status,
	})
}

// handleClick applies one board click from the session to its match.
func (s *server) handleClick(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	id, err := parseMatchID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	row, col, err := parseCoords(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, ok := s.reg.Match(id)
	if !ok {
		writeRuleError(w, state.NewRuleError(state.UnknownMatch))
		return
	}

	clickErr := m.Click(session, row, col)
	if clickErr != nil {
		writeRuleError(w, clickErr)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	s.reg.DeregisterPlayer(session)
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseMatchID(r *http.Request) (uint32, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		raw = r.PostFormValue("id")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func parseCoords(r *http.Request) (row, col int, err error) {
	rowRaw := r.URL.Query().Get("row")
	if rowRaw == "" {
		rowRaw = r.PostFormValue("row")
	}
	colRaw := r.URL.Query().Get("col")
	if colRaw == "" {
		colRaw = r.PostFormValue("col")
	}
	row, err = strconv.Atoi(rowRaw)
	if err != nil {
		return 0, 0, err
	}
	col, err = strconv.Atoi(colRaw)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeRuleError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if re, ok := err.(*state.RuleError); ok {
		switch re.Code {
		case state.UnknownMatch:
			status = http.StatusNotFound
		case state.MatchFull:
			status = http.StatusConflict
		case state.NotYourTurn:
			status = http.StatusForbidden
		}
	}
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": err.Error()})
}
