// Registry: the process-wide directory of matches, players, and the
// session→match mapping. Grounded on go-kgp's pairing of a User
// directory with a Game directory (common.go, organizer.go), collapsed
// into a single explicitly-passed structure rather than package-level
// globals; no hidden singletons.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"go-tafl"
	"go-tafl/conf"
	"go-tafl/match"
	"go-tafl/rules"
	"go-tafl/state"
)

// PlayerRecord is keyed by session identifier.
type PlayerRecord struct {
	Username string
	Role     string // "local", "attacker", or "defender"
}

// Registry is the process-wide directory of live matches and players.
// A single instance is constructed once and passed explicitly to
// every transport handler; there is no package-level state.
type Registry struct {
	mu sync.RWMutex

	matches     map[uint32]*match.Match
	players     map[string]PlayerRecord
	sessionToID map[string]uint32
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{
		matches:     make(map[uint32]*match.Match),
		players:     make(map[string]PlayerRecord),
		sessionToID: make(map[string]uint32),
	}
}

// NewSession mints a fresh opaque UUID-v4 session identifier.
func NewSession() string {
	return uuid.NewString()
}

// RegisterPlayer binds a session to a username and role.
func (reg *Registry) RegisterPlayer(session, username, role string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.players[session] = PlayerRecord{Username: username, Role: role}
}

// DeregisterPlayer removes a session's player record and its
// session→match binding, as on logout.
func (reg *Registry) DeregisterPlayer(session string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.players, session)
	delete(reg.sessionToID, session)
}

// Player looks up a session's player record.
func (reg *Registry) Player(session string) (PlayerRecord, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	p, ok := reg.players[session]
	return p, ok
}

// CreateMatch constructs a new Match of the given variant and mode,
// generating a uniformly random 8-digit id with retry on collision,
// and records session as its first participant. role is ignored (and
// recorded as Attacker) in Local mode.
func (reg *Registry) CreateMatch(session string, variant tafl.VariantName, mode tafl.Mode, role tafl.Role, ringCapacity int) uint32 {
	v := rules.ByName(variant)
	if mode == tafl.Local {
		role = tafl.Attacker
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	var id uint32
	for {
		id = state.RandomMatchID()
		if _, taken := reg.matches[id]; !taken {
			break
		}
	}

	m := match.New(id, variant.String(), v, mode, ringCapacity, session, role)
	reg.matches[id] = m
	reg.sessionToID[session] = id
	return id
}

// OpenMatch records session→match and, for Online matches with one
// seat free, binds session to the complementary role. Returns
// UnknownMatch or MatchFull as appropriate.
func (reg *Registry) OpenMatch(session string, id uint32) (*match.Match, error) {
	reg.mu.Lock()
	m, ok := reg.matches[id]
	if !ok {
		reg.mu.Unlock()
		return nil, state.NewRuleError(state.UnknownMatch)
	}
	reg.sessionToID[session] = id
	reg.mu.Unlock()

	if m.Mode == tafl.Online {
		if _, err := m.Join(session); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Match looks up an already-opened match by id.
func (reg *Registry) Match(id uint32) (*match.Match, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	m, ok := reg.matches[id]
	return m, ok
}

// CurrentMatch returns the match session most recently opened.
func (reg *Registry) CurrentMatch(session string) (*match.Match, bool) {
	reg.mu.RLock()
	id, ok := reg.sessionToID[session]
	reg.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return reg.Match(id)
}

// Subscribe returns the per-session rendered-update stream for a
// match.
func (reg *Registry) Subscribe(session string, id uint32) (<-chan match.Snapshot, error) {
	m, ok := reg.Match(id)
	if !ok {
		return nil, state.NewRuleError(state.UnknownMatch)
	}
	return m.Subscribe(session), nil
}

// EndMatch marks a match's slot vacant; subscribers still holding a
// reference to its channel simply stop receiving further updates.
func (reg *Registry) EndMatch(id uint32) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.matches, id)
}

// String satisfies conf.Manager, so a Registry can be registered and
// logged by name alongside the transport server.
func (reg *Registry) String() string { return "Registry" }

// Start satisfies conf.Manager. The Registry itself has nothing to
// run in the background; it exists purely as request-driven state
// guarded by its own mutex, so Start blocks until shutdown.
func (reg *Registry) Start(c *conf.Conf) {
	<-c.Ctx.Done()
}

// Shutdown satisfies conf.Manager.
func (reg *Registry) Shutdown() {}
