// Websocket interface: the Subscribe stream, pushing rendered updates
// to a single subscriber. Grounded on go-kgp's web/ws.go, which
// upgrades the HTTP connection and then just pumps whatever the rest
// of the program produces onto the socket: here that source is a
// match's per-subscriber Snapshot channel instead of a client's
// outgoing protocol messages.
package transport

import (
	"context"
	"encoding/json"
	"net/http"

	ws "nhooyr.io/websocket"

	"go-tafl/match"
	"go-tafl/state"
)

// handleSocket upgrades the request and pumps snapshots for one
// match to one session until the connection drops or the stream is
// closed. Ending a match does not close its subscriber streams.
// A dropped connection simply aborts this goroutine, with no effect
// on the authoritative state.
func (s *server) handleSocket(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	id, err := parseMatchID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stream, err := s.reg.Subscribe(session, id)
	if err != nil {
		if re, ok := err.(*state.RuleError); ok {
			http.Error(w, re.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := ws.Accept(w, r, nil)
	if err != nil {
		s.conf.Debug.Printf("unable to upgrade connection: %s", err)
		return
	}
	defer conn.Close(ws.StatusNormalClosure, "match stream closed")

	ctx := r.Context()
	for {
		select {
		case snap, ok := <-stream:
			if !ok {
				return
			}
			if err := writeSnapshot(ctx, conn, snap); err != nil {
				s.conf.Debug.Printf("session %s: write failed, ending stream: %s", session, err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func writeSnapshot(ctx context.Context, conn *ws.Conn, snap match.Snapshot) error {
	boardHTML, message, status := RenderBoard(snap)
	payload, err := json.Marshal(map[string]string{
		"board_html": string(boardHTML),
		"message":    message,
		"status":     status,
	})
	if err != nil {
		return err
	}
	return conn.Write(ctx, ws.MessageText, payload)
}
