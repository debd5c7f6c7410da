package realm

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/arcwamp/wampproto-go/broker"
	"github.com/arcwamp/wampproto-go/dealer"
	"github.com/arcwamp/wampproto-go/logging"
	"github.com/arcwamp/wampproto-go/messages"
)

// Realm bundles one realm's Dealer and Broker behind a single mutex,
// matching the router's recommended "shard by realm, not by message"
// synchronization discipline.
type Realm struct {
	Name string

	mu     sync.Mutex
	Dealer *dealer.Dealer
	Broker *broker.Broker
}

// Join adds details to both the dealer and broker under the realm's lock.
func (r *Realm) Join(details *messages.SessionDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Dealer.AddSession(details); err != nil {
		return err
	}
	if err := r.Broker.AddSession(details); err != nil {
		return err
	}
	return nil
}

// Leave removes a session from both the dealer and broker under the
// realm's lock.
func (r *Realm) Leave(sessionID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Dealer.RemoveSession(sessionID)
	r.Broker.RemoveSession(sessionID)
}

// Lock exposes the realm's mutex to the embedder for the duration of a
// multi-step routing operation (e.g. Call then inspecting the reply),
// since Dealer/Broker themselves never take it.
func (r *Realm) Lock()   { r.mu.Lock() }
func (r *Realm) Unlock() { r.mu.Unlock() }

// Router holds every realm touched so far, creating one lazily (and only
// once, even under concurrent first joins) on first reference.
type Router struct {
	realms sync.Map // string -> *Realm
	group  singleflight.Group
	logger logging.Logger
}

// NewRouter returns an empty Router. logger may be nil; if so, realm
// lifecycle events are discarded.
func NewRouter(logger logging.Logger) *Router {
	return &Router{logger: logger}
}

// Realm returns the named realm, creating its Dealer+Broker pair the first
// time it is referenced. Concurrent calls for the same never-seen name
// observe exactly one creation.
func (rt *Router) Realm(name string) *Realm {
	if v, ok := rt.realms.Load(name); ok {
		return v.(*Realm)
	}

	v, _, _ := rt.group.Do(name, func() (any, error) {
		if v, ok := rt.realms.Load(name); ok {
			return v.(*Realm), nil
		}
		r := &Realm{Name: name, Dealer: dealer.New(), Broker: broker.New()}
		rt.realms.Store(name, r)
		if rt.logger != nil {
			rt.logger.Info("realm created", "realm", name)
		}
		return r, nil
	})
	return v.(*Realm)
}

// Evict drops a realm entirely. Any session still joined to it is the
// embedder's responsibility to have already removed.
func (rt *Router) Evict(name string) {
	if _, existed := rt.realms.LoadAndDelete(name); existed && rt.logger != nil {
		rt.logger.Info("realm evicted", "realm", name)
	}
}
