package network

import (
	"sync"
)

// Dispatcher is implemented by anything that can answer rpcs in-process.
// svcMeth has the form "Service.Method", as in net/rpc.
type Dispatcher interface {
	Dispatch(svcMeth string, args interface{}, reply interface{}) bool
}

// Wiretap observes every call that passes through a LocalConnectionProvider.
// An interceptor role is a Wiretap: it sees exactly what crosses the wire
// (args and reply), never the callee's internal state.
type Wiretap interface {
	Observe(server int, svcMeth string, args interface{}, reply interface{})
}

// LocalConnectionProvider implements the ConnectionProvider interface by
// routing calls to in-process Dispatchers.
type LocalConnectionProvider struct {
	mu    sync.Mutex
	peers []Dispatcher
	taps  []Wiretap
}

func NewLocal(peers ...Dispatcher) *LocalConnectionProvider {
	return &LocalConnectionProvider{peers: peers}
}

// AddWiretap registers a tap that observes all subsequent calls.
func (cp *LocalConnectionProvider) AddWiretap(t Wiretap) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.taps = append(cp.taps, t)
}

func (cp *LocalConnectionProvider) Call(server int, svcMeth string, args interface{}, reply interface{}) bool {
	cp.mu.Lock()
	if server < 0 || server >= len(cp.peers) {
		cp.mu.Unlock()
		return false
	}
	peer := cp.peers[server]
	taps := make([]Wiretap, len(cp.taps))
	copy(taps, cp.taps)
	cp.mu.Unlock()

	ok := peer.Dispatch(svcMeth, args, reply)
	if ok {
		for _, t := range taps {
			t.Observe(server, svcMeth, args, reply)
		}
	}
	return ok
}

func (cp *LocalConnectionProvider) NumPeers() int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return len(cp.peers)
}
