// Match Coordinator: owns one match's authoritative state,
// distinguishes Local from Online mode, and fans rendered
// updates out to subscribers. Grounded on go-kgp's game/game.go for
// shape (a small coordinator type wrapping the pure state and holding
// only the bookkeeping the rules engine itself has no business
// knowing about) and on go-kgp's conf.Manager-adjacent structuring for
// lock discipline.
package match

import (
	"sync"

	"go-tafl"
	"go-tafl/rules"
	"go-tafl/state"
)

// Match owns a single game's authoritative state plus its
// subscribers. All methods are safe for concurrent use; mu is held
// for the duration of a click's processing, rendering, and broadcast
// attempt, which keeps all three serialized per match.
type Match struct {
	Id    uint32
	Mode  tafl.Mode
	Title string

	mu sync.RWMutex

	// local is the single authoritative Game in Local mode.
	local *state.Game

	// views holds one mirror Game per role in Online mode. Both
	// views are kept in lockstep except during a live selection,
	// when only the active view's rendering may carry the overlay.
	views map[tafl.Role]*state.Game

	// roles maps session id to the role it plays in this match.
	// Local-mode sessions are recorded with role Attacker as a
	// nominal value; Local mode never consults it for turn policing.
	roles map[string]tafl.Role

	subs map[string]*subscriber

	ringCapacity int
}

// New constructs a Match for a freshly created id. firstSession is
// bound to firstRole immediately; in Online mode a second session may
// join later via Join, taking the complementary role.
func New(id uint32, title string, v rules.Variant, mode tafl.Mode, ringCapacity int, firstSession string, firstRole tafl.Role) *Match {
	m := &Match{
		Id:           id,
		Mode:         mode,
		Title:        title,
		roles:        make(map[string]tafl.Role),
		subs:         make(map[string]*subscriber),
		ringCapacity: ringCapacity,
	}

	switch mode {
	case tafl.Local:
		m.local = state.NewGame(id, title, v)
	case tafl.Online:
		m.views = map[tafl.Role]*state.Game{
			tafl.Attacker: state.NewGame(id, title, v),
			tafl.Defender: state.NewGame(id, title, v),
		}
	}
	m.roles[firstSession] = firstRole
	return m
}

// Join binds a second session to the role complementary to whichever
// role is already taken. Returns MatchFull if two sessions are
// already bound, unless session is already a participant.
func (m *Match) Join(session string) (tafl.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[session]; ok {
		return m.roles[session], nil
	}
	if len(m.roles) >= 2 {
		return 0, state.NewRuleError(state.MatchFull)
	}

	var taken tafl.Role
	for _, r := range m.roles {
		taken = r
	}
	role := taken.Opponent()
	m.roles[session] = role
	return role, nil
}

// Subscribe registers session for updates and returns the stream it
// should drain. Calling Subscribe again for a session already
// subscribed replaces its channel (e.g. after a reconnect).
func (m *Match) Subscribe(session string) <-chan Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := newSubscriber(m.ringCapacity)
	m.subs[session] = sub
	return sub.ch
}

// Unsubscribe removes session's subscription. Safe to call on a
// session that was never subscribed.
func (m *Match) Unsubscribe(session string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, session)
}

// Click applies one (row, col) click from session and fans the
// resulting rendering(s) out to subscribers. The returned error, if
// any, is the RuleError the caller's synchronous response should
// carry; it is never also the cause of a missing broadcast except for
// NotYourTurn and, in Online mode, UnknownMatch for a session that is
// not a participant: neither mutates or broadcasts at all.
func (m *Match) Click(session string, row, col int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.Mode {
	case tafl.Local:
		return m.clickLocal(row, col)
	default:
		return m.clickOnline(session, row, col)
	}
}

func (m *Match) clickLocal(row, col int) error {
	err := m.local.ProcessClick(row, col)
	m.broadcastAll(render(m.local))
	return err
}

func (m *Match) clickOnline(session string, row, col int) error {
	role, ok := m.roles[session]
	if !ok {
		return state.NewRuleError(state.UnknownMatch)
	}

	active := m.views[role]
	if role != active.CurrentTurn {
		return state.NewRuleError(state.NotYourTurn)
	}

	inactive := m.views[role.Opponent()]
	preClickInactive := render(inactive)

	err := active.ProcessClick(row, col)
	// The inactive mirror replays the identical click so both views'
	// authoritative state stays in lockstep; its outcome is discarded
	// since it is fed the same coordinates and therefore reaches the
	// same verdict.
	_ = inactive.ProcessClick(row, col)

	if active.MoveDone {
		m.broadcastRole(role, render(active))
		m.broadcastRole(role.Opponent(), render(inactive))
	} else {
		m.broadcastRole(role, render(active))
		m.broadcastRole(role.Opponent(), preClickInactive)
	}

	return err
}

func render(g *state.Game) Snapshot {
	return Snapshot{
		Title:       g.Title,
		Board:       g.Board.Clone(),
		Message:     g.Message,
		GameOver:    g.GameOver,
		Winner:      g.Winner,
		CurrentTurn: g.CurrentTurn,
		MoveCount:   g.MoveCount,
	}
}

func (m *Match) broadcastAll(snap Snapshot) {
	for _, sub := range m.subs {
		sub.send(snap)
	}
}

func (m *Match) broadcastRole(role tafl.Role, snap Snapshot) {
	for session, r := range m.roles {
		if r != role {
			continue
		}
		if sub, ok := m.subs[session]; ok {
			sub.send(snap)
		}
	}
}

// Snapshot renders the current state for session without mutating
// anything, for use by OpenMatch's initial render.
func (m *Match) Snapshot(session string) Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Mode == tafl.Local {
		return render(m.local)
	}
	role := m.roles[session]
	return render(m.views[role])
}
