package peer

import (
	"sort"
	"sync"
)

// Registry is the set of peers a node gossips with. It never contains the
// node's own address; the bootstrap address is remembered separately and is
// only a member when something registers it explicitly. Entries are never
// evicted during a run.
type Registry struct {
	self      Address
	bootstrap Address

	mu    sync.RWMutex
	peers map[Address]struct{}
}

// NewRegistry returns an empty registry for a node reachable at self.
func NewRegistry(self, bootstrap Address) *Registry {
	return &Registry{
		self:      self,
		bootstrap: bootstrap,
		peers:     make(map[Address]struct{}),
	}
}

// Self returns the node's own advertised address.
func (r *Registry) Self() Address {
	return r.self
}

// Bootstrap returns the bootstrap directory address.
func (r *Registry) Bootstrap() Address {
	return r.bootstrap
}

// Register adds addr and reports whether it was not known before.
func (r *Registry) Register(addr Address) bool {
	if addr == "" || addr == r.self {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.peers[addr]; ok {
		return false
	}
	r.peers[addr] = struct{}{}
	return true
}

// Merge registers every address and returns the ones that were new, in the
// order they were given.
func (r *Registry) Merge(addrs []Address) []Address {
	var learned []Address
	for _, a := range addrs {
		if r.Register(a) {
			learned = append(learned, a)
		}
	}
	return learned
}

// All returns a sorted snapshot of the known peers.
func (r *Registry) All() []Address {
	r.mu.RLock()
	out := make([]Address, 0, len(r.peers))
	for a := range r.peers {
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Except returns All without the given address.
func (r *Registry) Except(addr Address) []Address {
	all := r.All()
	out := all[:0]
	for _, a := range all {
		if a != addr {
			out = append(out, a)
		}
	}
	return out
}

// Contains reports whether addr is registered.
func (r *Registry) Contains(addr Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.peers[addr]
	return ok
}

// Len returns the number of registered peers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}
